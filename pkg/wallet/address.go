package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// wrappedSegwitAddress builds the P2SH-P2WPKH address of a public key:
// the witness program of the key hash wrapped in a script hash.
func wrappedSegwitAddress(pubKey *btcec.PublicKey, params *chaincfg.Params) (string, error) {
	pubKeyHash := btcutil.Hash160(pubKey.SerializeCompressed())
	witnessAddr, err := btcutil.NewAddressWitnessPubKeyHash(pubKeyHash, params)
	if err != nil {
		return "", fmt.Errorf("build witness address: %w", err)
	}
	witnessProgram, err := txscript.PayToAddrScript(witnessAddr)
	if err != nil {
		return "", fmt.Errorf("build witness program: %w", err)
	}
	addr, err := btcutil.NewAddressScriptHash(witnessProgram, params)
	if err != nil {
		return "", fmt.Errorf("build script hash address: %w", err)
	}
	return addr.EncodeAddress(), nil
}

// taprootAddress builds the BIP-86 P2TR address for a taproot internal
// key, tweaking it with an empty script tree.
func taprootAddress(internalKey *btcec.PublicKey, params *chaincfg.Params) (string, error) {
	outputKey := txscript.ComputeTaprootOutputKey(internalKey, nil)
	addr, err := btcutil.NewAddressTaproot(schnorr.SerializePubKey(outputKey), params)
	if err != nil {
		return "", fmt.Errorf("build taproot address: %w", err)
	}
	return addr.EncodeAddress(), nil
}

// xOnlyPublicKey returns the 32-byte schnorr serialization of a public
// key, i.e. the taproot internal key encoding.
func xOnlyPublicKey(pubKey *btcec.PublicKey) []byte {
	return schnorr.SerializePubKey(pubKey)
}
