package wallet

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grendel/hdvault/pkg/common"
)

func TestBitcoinDerivationPath(t *testing.T) {
	path, err := BitcoinDerivationPath(PathOpts{Index: 0, Network: common.Mainnet})
	require.NoError(t, err)
	assert.Equal(t, PathString("m/49'/0'/0'/0/0"), path)

	// Switching network flips the coin-type segment only.
	path, err = BitcoinDerivationPath(PathOpts{Index: 0, Network: common.Testnet})
	require.NoError(t, err)
	assert.Equal(t, PathString("m/49'/1'/0'/0/0"), path)
}

func TestPathBuilders(t *testing.T) {
	tests := []struct {
		name  string
		build func(PathOpts) (PathString, error)
		opts  PathOpts
		want  PathString
	}{
		{
			"segwit mainnet",
			SegwitDerivationPath,
			PathOpts{Index: 2, Network: common.Mainnet},
			"m/84'/0'/0'/0/2",
		},
		{
			"segwit testnet with account",
			SegwitDerivationPath,
			PathOpts{Account: 1, Index: 2, Network: common.Testnet},
			"m/84'/1'/1'/0/2",
		},
		{
			"taproot mainnet",
			TaprootDerivationPath,
			PathOpts{Index: 7, Network: common.Mainnet},
			"m/86'/0'/0'/0/7",
		},
		{
			"wrapped segwit account 3",
			BitcoinDerivationPath,
			PathOpts{Account: 3, Index: 9, Network: common.Mainnet},
			"m/49'/0'/3'/0/9",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.build(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStxDerivationPath(t *testing.T) {
	assert.Equal(t, PathString("m/44'/5757'/0'/0/0"),
		stxDerivationPath(common.Mainnet, 0))
	assert.Equal(t, PathString("m/44'/5757'/0'/0/4"),
		stxDerivationPath(common.Mainnet, 4))
	assert.Equal(t, PathString("m/44'/1'/0'/0/0"),
		stxDerivationPath(common.Testnet, 0))
}

func TestPathBuildersRejectOutOfRange(t *testing.T) {
	_, err := BitcoinDerivationPath(PathOpts{Index: MaxHardenedValue + 1})
	assert.ErrorIs(t, err, ErrOutOfRangeIndex)

	_, err = TaprootDerivationPath(PathOpts{Account: MaxHardenedValue + 1})
	assert.ErrorIs(t, err, ErrOutOfRangeAccount)
}

func TestParseDerivationPath(t *testing.T) {
	path, err := ParseDerivationPath("m/49'/0'/0'/0/5")
	require.NoError(t, err)
	assert.Equal(t, DerivationPath{
		hdkeychain.HardenedKeyStart + 49,
		hdkeychain.HardenedKeyStart + 0,
		hdkeychain.HardenedKeyStart + 0,
		0,
		5,
	}, path)

	// String round trip.
	assert.Equal(t, "m/49'/0'/0'/0/5", path.String())
}

func TestParseDerivationPathErrors(t *testing.T) {
	tests := []struct {
		name string
		in   PathString
	}{
		{"empty", ""},
		{"trailing slash", "m/49'/0'/"},
		{"leading slash", "/49'/0'"},
		{"single elem", "m"},
		{"not a number", "m/49'/x"},
		{"hardened overflow", "m/2147483648'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDerivationPath(tt.in)
			assert.Error(t, err)
		})
	}
}

func TestParseBuilderOutputs(t *testing.T) {
	// Every builder output must be parseable.
	builders := []func(PathOpts) (PathString, error){
		BitcoinDerivationPath, SegwitDerivationPath, TaprootDerivationPath,
	}
	for _, build := range builders {
		path, err := build(PathOpts{Account: 1, Index: 12, Network: common.Testnet})
		require.NoError(t, err)
		parsed, err := ParseDerivationPath(path)
		require.NoError(t, err)
		assert.Len(t, parsed, 5)
	}
}
