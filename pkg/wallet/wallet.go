// Package wallet derives hierarchical-deterministic key material and
// addresses for the Stacks and Bitcoin chains from a single BIP-39
// mnemonic. All derivations are pure functions of (mnemonic, index,
// network); nothing is cached or persisted.
package wallet

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/grendel/hdvault/pkg/common"
	"github.com/grendel/hdvault/pkg/stacks"
)

var (
	// ErrNullMnemonic is returned when a seed phrase argument is empty.
	ErrNullMnemonic = errors.New("mnemonic must not be null")
	// ErrInvalidMnemonic is returned when a seed phrase fails BIP-39
	// word or checksum validation.
	ErrInvalidMnemonic = errors.New("mnemonic is invalid")
	// ErrNullPassword is returned when an encryption password is empty.
	ErrNullPassword = errors.New("password must not be null")
	// ErrNullSeed is returned when there is no seed phrase to encrypt.
	ErrNullSeed = errors.New("seed must not be null")
	// ErrNullCypherText is returned when there is no cypher text to
	// decrypt.
	ErrNullCypherText = errors.New("cypher text must not be null")
	// ErrInvalidCypherText is returned when a cypher text is not valid
	// hex.
	ErrInvalidCypherText = errors.New("cypher text must be in hex format")
	// ErrNullHasher is returned when no password-hashing capability was
	// injected.
	ErrNullHasher = errors.New("password hasher must not be null")
	// ErrNullCipher is returned when no cipher capability was injected.
	ErrNullCipher = errors.New("cipher must not be null")
	// ErrNullDerivationPath is returned when parsing an empty path.
	ErrNullDerivationPath = errors.New("derivation path must not be null")
	// ErrMalformedDerivationPath is returned when a path has empty
	// segments.
	ErrMalformedDerivationPath = errors.New(
		"path must not start or end with a '/' and " +
			"can optionally start with 'm/' for absolute paths",
	)
	// ErrOutOfRangeAccount is returned for accounts outside the
	// hardened-index range.
	ErrOutOfRangeAccount = fmt.Errorf(
		"account must be in range [0, %d]", MaxHardenedValue,
	)
	// ErrOutOfRangeIndex is returned for indexes outside the
	// hardened-index range.
	ErrOutOfRangeIndex = fmt.Errorf(
		"index must be in range [0, %d]", MaxHardenedValue,
	)
)

// Wallet is the aggregate record produced by a full derivation run.
// Immutable once constructed; ownership passes entirely to the caller.
// The JSON field names are part of the exchange format and must not change.
type Wallet struct {
	StxAddress        string `json:"stxAddress"`
	BtcAddress        string `json:"btcAddress"`
	OrdinalsAddress   string `json:"ordinalsAddress"`
	MasterPubKey      string `json:"masterPubKey"`
	StxPublicKey      string `json:"stxPublicKey"`
	BtcPublicKey      string `json:"btcPublicKey"`
	OrdinalsPublicKey string `json:"ordinalsPublicKey"`
	SeedPhrase        string `json:"seedPhrase"`
}

// FromSeedPhraseOpts is the struct given to the FromSeedPhrase method.
// Account selects the BIP-44 account segment of the Bitcoin paths and
// defaults to 0; the Stacks path has no account segment.
type FromSeedPhraseOpts struct {
	Mnemonic string
	Account  uint32
	Index    uint32
	Network  common.Network
}

func (o FromSeedPhraseOpts) validate() error {
	if len(o.Mnemonic) <= 0 {
		return ErrNullMnemonic
	}
	if !IsMnemonicValid(o.Mnemonic) {
		return ErrInvalidMnemonic
	}
	if o.Account > MaxHardenedValue {
		return ErrOutOfRangeAccount
	}
	if o.Index > MaxHardenedValue {
		return ErrOutOfRangeIndex
	}
	return nil
}

// New generates a fresh mnemonic and builds the wallet record for account
// index 0 on Mainnet. It is the convenience entry point; use FromSeedPhrase
// for other indexes or networks.
func New() (*Wallet, error) {
	mnemonic, err := GenerateMnemonic()
	if err != nil {
		return nil, err
	}
	return FromSeedPhrase(FromSeedPhraseOpts{
		Mnemonic: mnemonic,
		Index:    0,
		Network:  common.Mainnet,
	})
}

// FromSeedPhrase derives one complete wallet record for the given account
// index and network. Assembly is all-or-nothing: any failure in a
// sub-derivation aborts the whole call.
func FromSeedPhrase(opts FromSeedPhraseOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	seed, err := seedFromMnemonic(opts.Mnemonic)
	if err != nil {
		return nil, err
	}
	params := opts.Network.ChainParams()

	master, err := masterKeyFromSeed(seed, params)
	if err != nil {
		return nil, err
	}
	masterPub, err := master.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("derive master public key: %w", err)
	}

	stx, err := stxKeyChainFromSeed(seed, opts.Network, opts.Index)
	if err != nil {
		return nil, err
	}

	btcPath, err := BitcoinDerivationPath(PathOpts{
		Account: opts.Account, Index: opts.Index, Network: opts.Network,
	})
	if err != nil {
		return nil, err
	}
	btcChild, err := deriveKeyFromPath(seed, btcPath, params)
	if err != nil {
		return nil, err
	}
	btcPub, err := btcChild.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("derive bitcoin public key: %w", err)
	}
	btcAddress, err := wrappedSegwitAddress(btcPub, params)
	if err != nil {
		return nil, err
	}

	trPath, err := TaprootDerivationPath(PathOpts{
		Account: opts.Account, Index: opts.Index, Network: opts.Network,
	})
	if err != nil {
		return nil, err
	}
	trChild, err := deriveKeyFromPath(seed, trPath, params)
	if err != nil {
		return nil, err
	}
	trPub, err := trChild.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("derive taproot internal key: %w", err)
	}
	ordinalsAddress, err := taprootAddress(trPub, params)
	if err != nil {
		return nil, err
	}

	return &Wallet{
		StxAddress:        stx.Address,
		BtcAddress:        btcAddress,
		OrdinalsAddress:   ordinalsAddress,
		MasterPubKey:      hex.EncodeToString(masterPub.SerializeCompressed()),
		StxPublicKey:      stx.PublicKey,
		BtcPublicKey:      hex.EncodeToString(btcPub.SerializeCompressed()),
		OrdinalsPublicKey: hex.EncodeToString(xOnlyPublicKey(trPub)),
		SeedPhrase:        opts.Mnemonic,
	}, nil
}

// stxVersion maps a network to its single-sig Stacks address version byte.
func stxVersion(network common.Network) byte {
	if network == common.Testnet {
		return stacks.VersionTestnetP2PKH
	}
	return stacks.VersionMainnetP2PKH
}
