package stacks

import (
	"crypto/sha256"
	"encoding/binary"
)

// messagePrefix is the domain separator mandated by SIP-018 for signed
// structured messages.
const messagePrefix = "Stacks Signed Message:\n"

// HashMessage computes the SIP-018 hash of an arbitrary message: the
// length-prefixed domain separator, a Bitcoin-style varuint of the message
// length, then the message itself, all run through a single SHA-256.
func HashMessage(message []byte) []byte {
	buf := make([]byte, 0, 1+len(messagePrefix)+9+len(message))
	buf = append(buf, byte(len(messagePrefix)))
	buf = append(buf, messagePrefix...)
	buf = appendVaruint(buf, uint64(len(message)))
	buf = append(buf, message...)
	sum := sha256.Sum256(buf)
	return sum[:]
}

func appendVaruint(buf []byte, n uint64) []byte {
	switch {
	case n < 0xfd:
		return append(buf, byte(n))
	case n <= 0xffff:
		buf = append(buf, 0xfd)
		return binary.LittleEndian.AppendUint16(buf, uint16(n))
	case n <= 0xffffffff:
		buf = append(buf, 0xfe)
		return binary.LittleEndian.AppendUint32(buf, uint32(n))
	default:
		buf = append(buf, 0xff)
		return binary.LittleEndian.AppendUint64(buf, n)
	}
}
