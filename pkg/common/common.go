package common

import (
	"errors"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network represents the chain environment a wallet operates against.
// It is a closed two-valued enumeration so that an invalid network is
// unrepresentable anywhere downstream.
type Network int

const (
	// Mainnet is the production Bitcoin/Stacks network
	Mainnet Network = iota
	// Testnet is the Bitcoin testnet3 / Stacks testnet network
	Testnet
)

// ErrUnknownNetwork is returned when parsing a network name that is neither
// "mainnet" nor "testnet"
var ErrUnknownNetwork = errors.New("unknown network: must be mainnet or testnet")

// String returns the canonical lowercase name of the network
func (n Network) String() string {
	if n == Testnet {
		return "testnet"
	}
	return "mainnet"
}

// ParseNetwork converts a network name (case-insensitive) to a Network value
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mainnet":
		return Mainnet, nil
	case "testnet":
		return Testnet, nil
	default:
		return Mainnet, ErrUnknownNetwork
	}
}

// ChainParams returns the btcd chain parameters for the network
func (n Network) ChainParams() *chaincfg.Params {
	if n == Testnet {
		return &chaincfg.TestNet3Params
	}
	return &chaincfg.MainNetParams
}

// BtcCoinType returns the BIP-44 coin type segment used in Bitcoin
// derivation paths for the network
func (n Network) BtcCoinType() uint32 {
	if n == Testnet {
		return 1
	}
	return 0
}

// IsHex returns true if the string is non-empty and contains only
// hexadecimal characters
func IsHex(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
