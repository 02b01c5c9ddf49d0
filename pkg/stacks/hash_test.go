package stacks

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			"hello world",
			"Hello World",
			"953a54a2525205a2272ec27770ede65f6687a1e20725203f3198674c10b28f73",
		},
		{
			"empty message",
			"",
			"89da565bd5b575c8d3b4370ce0b5965eb43e51d4434680cfe72c9420f8e790b4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HashMessage([]byte(tt.message))
			assert.Equal(t, tt.want, hex.EncodeToString(got))
		})
	}
}

func TestHashMessageDeterminism(t *testing.T) {
	msg := []byte("the same input hashes the same way")
	assert.Equal(t, HashMessage(msg), HashMessage(msg))
}

func TestAppendVaruint(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "00"},
		{252, "fc"},
		{253, "fdfd00"},
		{65535, "fdffff"},
		{65536, "fe00000100"},
		{4294967296, "ff0000000001000000"},
	}
	for _, tt := range tests {
		got := appendVaruint(nil, tt.n)
		assert.Equal(t, tt.want, hex.EncodeToString(got), "n=%d", tt.n)
	}
}
