package wallet

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/grendel/hdvault/pkg/common"
	"github.com/grendel/hdvault/pkg/stacks"
)

// masterKeyFromSeed derives the root HD node for the chain parameters.
func masterKeyFromSeed(seed []byte, params *chaincfg.Params) (*hdkeychain.ExtendedKey, error) {
	master, err := hdkeychain.NewMaster(seed, params)
	if err != nil {
		return nil, fmt.Errorf("derive master key: %w", err)
	}
	return master, nil
}

// deriveKeyFromPath walks the derivation path from a fresh root node down
// to the child it selects.
func deriveKeyFromPath(
	seed []byte, strPath PathString, params *chaincfg.Params,
) (*hdkeychain.ExtendedKey, error) {
	path, err := ParseDerivationPath(strPath)
	if err != nil {
		return nil, err
	}

	node, err := masterKeyFromSeed(seed, params)
	if err != nil {
		return nil, err
	}
	for _, step := range path {
		node, err = node.Derive(step)
		if err != nil {
			return nil, fmt.Errorf("derive path %s: %w", strPath, err)
		}
	}
	return node, nil
}

// PrivateKeyOpts is the struct given to the BtcPrivateKey and
// BtcTaprootPrivateKey methods
type PrivateKeyOpts struct {
	SeedPhrase string
	Index      uint32
	Network    common.Network
}

func (o PrivateKeyOpts) validate() error {
	if len(o.SeedPhrase) <= 0 {
		return ErrNullMnemonic
	}
	if !IsMnemonicValid(o.SeedPhrase) {
		return ErrInvalidMnemonic
	}
	if o.Index > MaxHardenedValue {
		return ErrOutOfRangeIndex
	}
	return nil
}

// BtcPrivateKey re-derives the wrapped-segwit private key for the given
// seed phrase, index and network and returns it in hex. Repeated calls
// recompute from scratch; nothing is cached.
func BtcPrivateKey(opts PrivateKeyOpts) (string, error) {
	path, err := BitcoinDerivationPath(PathOpts{
		Index: opts.Index, Network: opts.Network,
	})
	if err != nil {
		return "", err
	}
	return privateKeyAtPath(opts, path)
}

// BtcTaprootPrivateKey re-derives the taproot private key for the given
// seed phrase, index and network and returns it in hex.
func BtcTaprootPrivateKey(opts PrivateKeyOpts) (string, error) {
	path, err := TaprootDerivationPath(PathOpts{
		Index: opts.Index, Network: opts.Network,
	})
	if err != nil {
		return "", err
	}
	return privateKeyAtPath(opts, path)
}

func privateKeyAtPath(opts PrivateKeyOpts, path PathString) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	seed, err := seedFromMnemonic(opts.SeedPhrase)
	if err != nil {
		return "", err
	}
	child, err := deriveKeyFromPath(seed, path, opts.Network.ChainParams())
	if err != nil {
		return "", err
	}
	privKey, err := child.ECPrivKey()
	if err != nil {
		return "", fmt.Errorf("derive private key: %w", err)
	}
	return hex.EncodeToString(privKey.Serialize()), nil
}

// StxKeyChain holds the child key material and address derived for one
// Stacks account.
type StxKeyChain struct {
	ChildKey   *hdkeychain.ExtendedKey
	Address    string
	PublicKey  string
	PrivateKey string
}

// StxAddressKeyChain re-derives the Stacks child key, address and private
// key for the given mnemonic, network and account index.
func StxAddressKeyChain(
	mnemonic string, network common.Network, accountIndex uint32,
) (*StxKeyChain, error) {
	if len(mnemonic) <= 0 {
		return nil, ErrNullMnemonic
	}
	if !IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	if accountIndex > MaxHardenedValue {
		return nil, ErrOutOfRangeAccount
	}

	seed, err := seedFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	return stxKeyChainFromSeed(seed, network, accountIndex)
}

func stxKeyChainFromSeed(
	seed []byte, network common.Network, index uint32,
) (*StxKeyChain, error) {
	path := stxDerivationPath(network, index)
	child, err := deriveKeyFromPath(seed, path, network.ChainParams())
	if err != nil {
		return nil, err
	}
	privKey, err := child.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("derive stacks private key: %w", err)
	}
	pubKey := privKey.PubKey()
	address, err := stacks.AddressFromPublicKey(stxVersion(network), pubKey)
	if err != nil {
		return nil, err
	}

	// Stacks private keys carry a trailing 01 marking the compressed
	// public key encoding.
	return &StxKeyChain{
		ChildKey:   child,
		Address:    address,
		PublicKey:  hex.EncodeToString(pubKey.SerializeCompressed()),
		PrivateKey: hex.EncodeToString(privKey.Serialize()) + "01",
	}, nil
}
