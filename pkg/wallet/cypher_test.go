package wallet

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubHasher hashes deterministically so encrypt/decrypt can share a key.
type stubHasher struct{}

func (stubHasher) Hash(_ context.Context, password string) (PasswordHash, error) {
	sum := sha256.Sum256([]byte(password))
	return PasswordHash{Salt: []byte("salt"), Hash: sum[:]}, nil
}

// xorCipher is a trivially reversible transform keyed by the hash.
type xorCipher struct{}

func (xorCipher) Encrypt(_ context.Context, plaintext, key []byte) ([]byte, error) {
	out := make([]byte, len(plaintext))
	for i := range plaintext {
		out[i] = plaintext[i] ^ key[i%len(key)]
	}
	return out, nil
}

func (c xorCipher) Decrypt(ctx context.Context, ciphertext, key []byte) ([]byte, error) {
	return c.Encrypt(ctx, ciphertext, key)
}

type failingHasher struct{ err error }

func (h failingHasher) Hash(context.Context, string) (PasswordHash, error) {
	return PasswordHash{}, h.err
}

func TestEncryptDecryptMnemonicRoundTrip(t *testing.T) {
	ctx := context.Background()
	encrypted, err := EncryptMnemonicWithCallback(ctx, EncryptMnemonicOpts{
		Password: "hunter2",
		Seed:     testMnemonic,
		Hasher:   stubHasher{},
		Cipher:   xorCipher{},
	})
	require.NoError(t, err)

	// Output is hex and not the plaintext.
	_, err = hex.DecodeString(encrypted)
	require.NoError(t, err)
	assert.NotEqual(t, testMnemonic, encrypted)

	decrypted, err := DecryptMnemonicWithCallback(ctx, DecryptMnemonicOpts{
		Password:      "hunter2",
		EncryptedSeed: encrypted,
		Hasher:        stubHasher{},
		Cipher:        xorCipher{},
	})
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, decrypted)
}

func TestEncryptMnemonicCallbackErrorPropagates(t *testing.T) {
	wantErr := errors.New("hash backend down")
	_, err := EncryptMnemonicWithCallback(context.Background(), EncryptMnemonicOpts{
		Password: "pw",
		Seed:     testMnemonic,
		Hasher:   failingHasher{err: wantErr},
		Cipher:   xorCipher{},
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestEncryptMnemonicOptsValidation(t *testing.T) {
	ctx := context.Background()

	_, err := EncryptMnemonicWithCallback(ctx, EncryptMnemonicOpts{
		Seed: testMnemonic, Hasher: stubHasher{}, Cipher: xorCipher{},
	})
	assert.ErrorIs(t, err, ErrNullPassword)

	_, err = EncryptMnemonicWithCallback(ctx, EncryptMnemonicOpts{
		Password: "pw", Hasher: stubHasher{}, Cipher: xorCipher{},
	})
	assert.ErrorIs(t, err, ErrNullSeed)

	_, err = EncryptMnemonicWithCallback(ctx, EncryptMnemonicOpts{
		Password: "pw", Seed: testMnemonic, Cipher: xorCipher{},
	})
	assert.ErrorIs(t, err, ErrNullHasher)

	_, err = DecryptMnemonicWithCallback(ctx, DecryptMnemonicOpts{
		Password: "pw", EncryptedSeed: "00", Hasher: stubHasher{},
	})
	assert.ErrorIs(t, err, ErrNullCipher)
}

func TestDecryptMnemonicRejectsNonHex(t *testing.T) {
	for _, seed := range []string{"not-hex!", "0xdead", "zz", "abc"} {
		_, err := DecryptMnemonicWithCallback(context.Background(), DecryptMnemonicOpts{
			Password:      "pw",
			EncryptedSeed: seed,
			Hasher:        stubHasher{},
			Cipher:        xorCipher{},
		})
		assert.ErrorIs(t, err, ErrInvalidCypherText, "seed %q", seed)
	}
}

func TestScryptAESGCMRoundTrip(t *testing.T) {
	ctx := context.Background()

	// Hash once to fix a salt, then reuse it for both directions.
	hasher := &ScryptHasher{}
	first, err := hasher.Hash(ctx, "correct horse")
	require.NoError(t, err)
	require.Len(t, first.Hash, 32)
	require.Len(t, first.Salt, 32)

	fixed := &ScryptHasher{Salt: first.Salt}
	encrypted, err := EncryptMnemonicWithCallback(ctx, EncryptMnemonicOpts{
		Password: "correct horse",
		Seed:     testMnemonic,
		Hasher:   fixed,
		Cipher:   AESGCMCipher{},
	})
	require.NoError(t, err)

	decrypted, err := DecryptMnemonicWithCallback(ctx, DecryptMnemonicOpts{
		Password:      "correct horse",
		EncryptedSeed: encrypted,
		Hasher:        fixed,
		Cipher:        AESGCMCipher{},
	})
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, decrypted)

	// Wrong password fails authentication.
	_, err = DecryptMnemonicWithCallback(ctx, DecryptMnemonicOpts{
		Password:      "incorrect horse",
		EncryptedSeed: encrypted,
		Hasher:        fixed,
		Cipher:        AESGCMCipher{},
	})
	assert.Error(t, err)
}

func TestScryptHasherSaltBehaviour(t *testing.T) {
	ctx := context.Background()
	hasher := &ScryptHasher{}

	a, err := hasher.Hash(ctx, "pw")
	require.NoError(t, err)
	b, err := hasher.Hash(ctx, "pw")
	require.NoError(t, err)
	// Random salts make repeated hashes differ.
	assert.NotEqual(t, a.Hash, b.Hash)

	fixed := &ScryptHasher{Salt: a.Salt}
	c, err := fixed.Hash(ctx, "pw")
	require.NoError(t, err)
	assert.Equal(t, a.Hash, c.Hash)
}

func TestCallbacksHonourContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&ScryptHasher{}).Hash(ctx, "pw")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = AESGCMCipher{}.Encrypt(ctx, []byte("x"), make([]byte, 32))
	assert.ErrorIs(t, err, context.Canceled)
}
