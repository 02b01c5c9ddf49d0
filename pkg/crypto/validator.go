// Package crypto validates addresses for the chains the wallet derives
// keys for. Validators are pure boolean predicates: any decode failure,
// checksum mismatch or wrong-network version maps to false, and they
// never panic on untrusted input.
package crypto

import (
	"github.com/btcsuite/btcd/btcutil"

	"github.com/grendel/hdvault/pkg/common"
	"github.com/grendel/hdvault/pkg/stacks"
)

// ValidateBtcAddress checks that a Bitcoin address parses under the
// network's chain parameters and belongs to that network. All address
// formats btcutil understands are accepted (P2PKH, P2SH, bech32 segwit,
// taproot).
func ValidateBtcAddress(address string, network common.Network) bool {
	params := network.ChainParams()
	addr, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return false
	}
	return addr.IsForNet(params)
}

// ValidateStxAddress checks that a Stacks address c32-decodes with a valid
// checksum and that its embedded version byte is one of the two valid
// versions (single-sig or multi-sig) for the network.
func ValidateStxAddress(address string, network common.Network) bool {
	version, _, err := stacks.DecodeAddress(address)
	if err != nil {
		return false
	}
	if network == common.Testnet {
		return version == stacks.VersionTestnetP2PKH ||
			version == stacks.VersionTestnetP2SH
	}
	return version == stacks.VersionMainnetP2PKH ||
		version == stacks.VersionMainnetP2SH
}
