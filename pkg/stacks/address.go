package stacks

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
)

// Stacks address version bytes. Each network has exactly two valid
// versions: one for single-sig (P2PKH) and one for multi-sig (P2SH)
// accounts.
const (
	VersionMainnetP2PKH byte = 22 // addresses starting "SP"
	VersionMainnetP2SH  byte = 20 // addresses starting "SM"
	VersionTestnetP2PKH byte = 26 // addresses starting "ST"
	VersionTestnetP2SH  byte = 21 // addresses starting "SN"
)

// AddressPrefix is the single fixed character every Stacks address
// starts with.
const AddressPrefix = "S"

const hash160Size = 20

var (
	// ErrNotStacksAddress is returned when decoding a string that does not
	// carry the Stacks address prefix
	ErrNotStacksAddress = errors.New("not a Stacks address")
	// ErrBadHashLength is returned when an address payload is not a
	// 20-byte hash160
	ErrBadHashLength = errors.New("address payload must be a 20 byte hash160")
)

// Address assembles a Stacks address from a version byte and a 20-byte
// public key hash.
func Address(version byte, hash160 []byte) (string, error) {
	if len(hash160) != hash160Size {
		return "", ErrBadHashLength
	}
	encoded, err := C32CheckEncode(version, hash160)
	if err != nil {
		return "", err
	}
	return AddressPrefix + encoded, nil
}

// AddressFromPublicKey computes the single-sig Stacks address of a
// compressed secp256k1 public key under the given version byte.
func AddressFromPublicKey(version byte, pubKey *btcec.PublicKey) (string, error) {
	return Address(version, btcutil.Hash160(pubKey.SerializeCompressed()))
}

// DecodeAddress splits a Stacks address into its version byte and hash160,
// verifying prefix and checksum.
func DecodeAddress(addr string) (byte, []byte, error) {
	if len(addr) < 2 || addr[0] != AddressPrefix[0] {
		return 0, nil, ErrNotStacksAddress
	}
	version, hash, err := C32CheckDecode(addr[1:])
	if err != nil {
		return 0, nil, err
	}
	if len(hash) != hash160Size {
		return 0, nil, ErrBadHashLength
	}
	return version, hash, nil
}
