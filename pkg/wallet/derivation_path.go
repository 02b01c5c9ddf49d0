package wallet

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"

	"github.com/grendel/hdvault/pkg/common"
)

// BIP-43 purpose constants selecting the Bitcoin address format.
const (
	purposeWrappedSegwit = 49 // BIP-49, P2SH-P2WPKH
	purposeNativeSegwit  = 84 // BIP-84, P2WPKH
	purposeTaproot       = 86 // BIP-86, P2TR
)

// stxCoinType is the SLIP-44 coin type registered for Stacks.
const stxCoinType = 5757

// MaxHardenedValue is the max value for hardened indexes of BIP32
// derivation paths
const MaxHardenedValue = math.MaxUint32 - hdkeychain.HardenedKeyStart

// PathString is the textual encoding of a derivation path, e.g.
// "m/49'/0'/0'/0/0". It is produced only by the path builders in this
// package; treat it as opaque.
type PathString string

// DerivationPath is the internal representation of a hierarchical
// deterministic wallet account
type DerivationPath []uint32

// PathOpts is the struct given to the path builder methods. Account is
// optional and defaults to 0.
type PathOpts struct {
	Account uint32
	Index   uint32
	Network common.Network
}

func (o PathOpts) validate() error {
	if o.Account > MaxHardenedValue {
		return ErrOutOfRangeAccount
	}
	if o.Index > MaxHardenedValue {
		return ErrOutOfRangeIndex
	}
	return nil
}

// BitcoinDerivationPath builds the wrapped-segwit (BIP-49) path
// m/49'/coin'/account'/0/index for the given network.
func BitcoinDerivationPath(opts PathOpts) (PathString, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	return btcPath(purposeWrappedSegwit, opts), nil
}

// SegwitDerivationPath builds the native-segwit (BIP-84) path
// m/84'/coin'/account'/0/index for the given network.
func SegwitDerivationPath(opts PathOpts) (PathString, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	return btcPath(purposeNativeSegwit, opts), nil
}

// TaprootDerivationPath builds the taproot (BIP-86) path
// m/86'/coin'/account'/0/index for the given network.
func TaprootDerivationPath(opts PathOpts) (PathString, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	return btcPath(purposeTaproot, opts), nil
}

func btcPath(purpose uint32, opts PathOpts) PathString {
	return PathString(fmt.Sprintf("m/%d'/%d'/%d'/0/%d",
		purpose, opts.Network.BtcCoinType(), opts.Account, opts.Index))
}

// stxDerivationPath builds the Stacks path for the given network and
// index. There is no account segment; the chain selects the coin type
// (5757 on Mainnet, the shared testnet coin type 1 otherwise).
func stxDerivationPath(network common.Network, index uint32) PathString {
	coinType := uint32(stxCoinType)
	if network == common.Testnet {
		coinType = 1
	}
	return PathString(fmt.Sprintf("m/44'/%d'/0'/0/%d", coinType, index))
}

// ParseDerivationPath converts a derivation path string to the
// internal binary representation
func ParseDerivationPath(strPath PathString) (DerivationPath, error) {
	var path DerivationPath

	elems := strings.Split(string(strPath), "/")
	switch {
	case strPath == "":
		return nil, ErrNullDerivationPath
	case containsEmptyString(elems):
		return nil, ErrMalformedDerivationPath
	case len(elems) < 2:
		return nil, ErrMalformedDerivationPath
	default:
		if strings.TrimSpace(elems[0]) == "m" {
			elems = elems[1:]
		}
	}

	for _, elem := range elems {
		elem = strings.TrimSpace(elem)
		var value uint32

		if strings.HasSuffix(elem, "'") {
			value = hdkeychain.HardenedKeyStart
			elem = strings.TrimSpace(strings.TrimSuffix(elem, "'"))
		}

		// use big int for conversion
		bigval, ok := new(big.Int).SetString(elem, 0)
		if !ok {
			return nil, fmt.Errorf("invalid elem '%s' in path", elem)
		}

		max := math.MaxUint32 - value
		if bigval.Sign() < 0 || bigval.Cmp(big.NewInt(int64(max))) > 0 {
			if value == 0 {
				return nil, fmt.Errorf("elem %v must be in range [0, %d]", bigval, max)
			}
			return nil, fmt.Errorf("elem %v must be in hardened range [0, %d]", bigval, max)
		}
		value += uint32(bigval.Uint64())

		path = append(path, value)
	}

	return path, nil
}

// String converts a binary derivation path to its canonical representation
func (path DerivationPath) String() string {
	if len(path) <= 0 {
		return ""
	}

	result := "m"
	for _, component := range path {
		var hardened bool
		if component >= hdkeychain.HardenedKeyStart {
			component -= hdkeychain.HardenedKeyStart
			hardened = true
		}
		result = fmt.Sprintf("%s/%d", result, component)
		if hardened {
			result += "'"
		}
	}
	return result
}

func containsEmptyString(composedPath []string) bool {
	for _, s := range composedPath {
		if s == "" {
			return true
		}
	}
	return false
}
