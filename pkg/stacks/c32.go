// Package stacks implements the Stacks chain address encoding (c32check)
// and the SIP-018 structured message hash. The c32 alphabet is the
// Crockford base32 variant used by the Stacks blockchain: it drops the
// easily-confused letters I, L, O and U.
package stacks

import (
	"errors"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const c32Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const checksumSize = 4

var (
	// ErrInvalidC32Character is returned when decoding input that contains
	// a character outside the c32 alphabet
	ErrInvalidC32Character = errors.New("invalid c32 character")
	// ErrInvalidVersion is returned for version bytes outside [0, 31]
	ErrInvalidVersion = errors.New("c32 version must be in range [0, 31]")
	// ErrBadChecksum is returned when a c32check payload fails checksum
	// verification
	ErrBadChecksum = errors.New("c32check checksum mismatch")
	// ErrPayloadTooShort is returned when a c32check payload is shorter
	// than its own checksum
	ErrPayloadTooShort = errors.New("c32check payload too short")
)

var c32Value = func() map[rune]int64 {
	m := make(map[rune]int64, len(c32Alphabet))
	for i, c := range c32Alphabet {
		m[c] = int64(i)
	}
	return m
}()

// C32Encode encodes data into the c32 alphabet. Each leading zero byte is
// preserved as a single leading '0' character, matching the reference
// Stacks encoding.
func C32Encode(data []byte) string {
	zeros := 0
	for _, b := range data {
		if b != 0 {
			break
		}
		zeros++
	}

	var sb strings.Builder
	for i := 0; i < zeros; i++ {
		sb.WriteByte(c32Alphabet[0])
	}

	v := new(big.Int).SetBytes(data)
	if v.Sign() == 0 {
		return sb.String()
	}

	base := big.NewInt(32)
	mod := new(big.Int)
	var digits []byte
	for v.Sign() > 0 {
		v.DivMod(v, base, mod)
		digits = append(digits, c32Alphabet[mod.Int64()])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
	return sb.String()
}

// C32Decode decodes a c32 string back into bytes. Input is normalized
// first: lowercase letters are uppercased and the homoglyphs O, L and I
// are mapped to 0 and 1.
func C32Decode(s string) ([]byte, error) {
	s = c32Normalize(s)

	zeros := 0
	for _, c := range s {
		if c != '0' {
			break
		}
		zeros++
	}

	v := new(big.Int)
	base := big.NewInt(32)
	for _, c := range s[zeros:] {
		d, ok := c32Value[c]
		if !ok {
			return nil, ErrInvalidC32Character
		}
		v.Mul(v, base)
		v.Add(v, big.NewInt(d))
	}

	out := make([]byte, zeros)
	if v.Sign() > 0 {
		out = append(out, v.Bytes()...)
	}
	return out, nil
}

// C32CheckEncode encodes data with a version character and a 4-byte
// double-SHA256 checksum, the Stacks equivalent of base58check.
func C32CheckEncode(version byte, data []byte) (string, error) {
	if int(version) >= len(c32Alphabet) {
		return "", ErrInvalidVersion
	}
	check := c32Checksum(version, data)
	payload := make([]byte, 0, len(data)+checksumSize)
	payload = append(payload, data...)
	payload = append(payload, check...)
	return string(c32Alphabet[version]) + C32Encode(payload), nil
}

// C32CheckDecode decodes a c32check string, verifying its checksum, and
// returns the version byte and payload.
func C32CheckDecode(s string) (byte, []byte, error) {
	if len(s) < 2 {
		return 0, nil, ErrPayloadTooShort
	}
	s = c32Normalize(s)

	version, ok := c32Value[rune(s[0])]
	if !ok {
		return 0, nil, ErrInvalidC32Character
	}
	payload, err := C32Decode(s[1:])
	if err != nil {
		return 0, nil, err
	}
	if len(payload) < checksumSize {
		return 0, nil, ErrPayloadTooShort
	}

	data := payload[:len(payload)-checksumSize]
	check := payload[len(payload)-checksumSize:]
	want := c32Checksum(byte(version), data)
	for i := range check {
		if check[i] != want[i] {
			return 0, nil, ErrBadChecksum
		}
	}
	return byte(version), data, nil
}

// c32Checksum is the first four bytes of dSHA256(version || data).
func c32Checksum(version byte, data []byte) []byte {
	buf := make([]byte, 0, len(data)+1)
	buf = append(buf, version)
	buf = append(buf, data...)
	return chainhash.DoubleHashB(buf)[:checksumSize]
}

func c32Normalize(s string) string {
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "O", "0")
	s = strings.ReplaceAll(s, "L", "1")
	s = strings.ReplaceAll(s, "I", "1")
	return s
}
