package wallet

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/scrypt"

	"github.com/grendel/hdvault/pkg/common"
)

// PasswordHash is the output of a password-hashing capability: the salt
// that was used and the resulting key material.
type PasswordHash struct {
	Salt []byte
	Hash []byte
}

// Hasher is the password-hashing capability injected by the caller.
// Implementations may block (key stretching is intentionally slow) and
// must honour the context.
type Hasher interface {
	Hash(ctx context.Context, password string) (PasswordHash, error)
}

// Cipher is the symmetric-cipher capability injected by the caller.
type Cipher interface {
	Encrypt(ctx context.Context, plaintext, key []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext, key []byte) ([]byte, error)
}

// EncryptMnemonicOpts is the struct given to the
// EncryptMnemonicWithCallback method
type EncryptMnemonicOpts struct {
	Password string
	Seed     string
	Hasher   Hasher
	Cipher   Cipher
}

func (o EncryptMnemonicOpts) validate() error {
	if len(o.Password) <= 0 {
		return ErrNullPassword
	}
	if len(o.Seed) <= 0 {
		return ErrNullSeed
	}
	if o.Hasher == nil {
		return ErrNullHasher
	}
	if o.Cipher == nil {
		return ErrNullCipher
	}
	return nil
}

// EncryptMnemonicWithCallback hashes the password through the injected
// Hasher, encrypts the seed phrase with the resulting key through the
// injected Cipher and returns the ciphertext hex-encoded. This function
// performs no cryptography itself; callback errors propagate unmodified.
func EncryptMnemonicWithCallback(ctx context.Context, opts EncryptMnemonicOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	hash, err := opts.Hasher.Hash(ctx, opts.Password)
	if err != nil {
		return "", err
	}
	cypherText, err := opts.Cipher.Encrypt(ctx, []byte(opts.Seed), hash.Hash)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(cypherText), nil
}

// DecryptMnemonicOpts is the struct given to the
// DecryptMnemonicWithCallback method
type DecryptMnemonicOpts struct {
	Password      string
	EncryptedSeed string
	Hasher        Hasher
	Cipher        Cipher
}

func (o DecryptMnemonicOpts) validate() error {
	if len(o.Password) <= 0 {
		return ErrNullPassword
	}
	if len(o.EncryptedSeed) <= 0 {
		return ErrNullCypherText
	}
	if !common.IsHex(o.EncryptedSeed) {
		return ErrInvalidCypherText
	}
	if o.Hasher == nil {
		return ErrNullHasher
	}
	if o.Cipher == nil {
		return ErrNullCipher
	}
	return nil
}

// DecryptMnemonicWithCallback is the inverse of
// EncryptMnemonicWithCallback: it hashes the password, decodes the hex
// ciphertext and hands both to the injected Cipher.
func DecryptMnemonicWithCallback(ctx context.Context, opts DecryptMnemonicOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	cypherText, err := hex.DecodeString(opts.EncryptedSeed)
	if err != nil {
		return "", ErrInvalidCypherText
	}
	hash, err := opts.Hasher.Hash(ctx, opts.Password)
	if err != nil {
		return "", err
	}
	plainText, err := opts.Cipher.Decrypt(ctx, cypherText, hash.Hash)
	if err != nil {
		return "", err
	}
	return string(plainText), nil
}

// scrypt parameters: 2^15 keeps interactive logins under ~100ms while
// still being memory-hard.
const (
	scryptN       = 32768
	scryptR       = 8
	scryptP       = 1
	scryptKeyLen  = 32
	scryptSaltLen = 32
)

// ScryptHasher is a ready-made Hasher built on scrypt. When Salt is nil a
// random salt is drawn per call; callers wanting a reproducible hash (e.g.
// to decrypt later) must set Salt to the one returned on encryption.
type ScryptHasher struct {
	Salt []byte
}

// Hash derives 32 bytes of key material from the password.
func (h *ScryptHasher) Hash(ctx context.Context, password string) (PasswordHash, error) {
	if err := ctx.Err(); err != nil {
		return PasswordHash{}, err
	}
	salt := h.Salt
	if salt == nil {
		salt = make([]byte, scryptSaltLen)
		if _, err := rand.Read(salt); err != nil {
			return PasswordHash{}, fmt.Errorf("generate salt: %w", err)
		}
	}
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return PasswordHash{}, err
	}
	return PasswordHash{Salt: salt, Hash: key}, nil
}

// AESGCMCipher is a ready-made Cipher using AES-256-GCM with the nonce
// prepended to the ciphertext.
type AESGCMCipher struct{}

// Encrypt seals plaintext under the key with a fresh random nonce.
func (AESGCMCipher) Encrypt(ctx context.Context, plaintext, key []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a ciphertext produced by Encrypt.
func (AESGCMCipher) Decrypt(ctx context.Context, ciphertext, key []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, ErrInvalidCypherText
	}
	nonce, text := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, text, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	blockCipher, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(blockCipher)
}
