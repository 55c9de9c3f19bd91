// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/scrypt"
)

// saltAlphabet is the fixed alphabet salts are drawn from. Salts end up in
// JSON files, so they stay printable.
const saltAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// saltLength is the fixed length of every generated salt.
const saltLength = 8

// tokenVersion identifies the token layout produced by Encrypt. Bump it
// when the layout or the scrypt parameters below change, so that old tokens
// are rejected instead of misread.
const tokenVersion = 0x01

// tokenHeaderSize is version byte + big-endian unix timestamp.
const tokenHeaderSize = 1 + 8

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	// scrypt cost parameters. Fixed per tokenVersion; changing them changes
	// every derived key, which is why they live here and not in config.
	scryptN      int
	scryptR      int
	scryptP      int
	scryptKeyLen int
}

// NewKeyChain constructs a [KeyChain] with scrypt parameters
// N=2^14, r=8, p=1 and a 32-byte (256-bit) key. The work factor is sized for
// interactive logins while remaining expensive enough to resist offline
// brute force of the stored salts.
func NewKeyChain() KeyChain {
	return &keyChain{
		scryptN:      1 << 14,
		scryptR:      8,
		scryptP:      1,
		scryptKeyLen: 32,
	}
}

// GenerateSalt implements [KeyChain]. Each character is selected from
// saltAlphabet using rejection-free modulo over bytes read from the OS
// CSPRNG. The alphabet length (62) keeps the modulo bias negligible for
// salt purposes, but the randomness source itself must be crypto/rand.
func (k *keyChain) GenerateSalt() (string, error) {
	raw := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("read random salt bytes: %w", err)
	}

	salt := make([]byte, saltLength)
	for i, b := range raw {
		salt[i] = saltAlphabet[int(b)%len(saltAlphabet)]
	}
	return string(salt), nil
}

// SaltedHash implements [KeyChain]. It returns the hex-encoded SHA-256
// digest of password+salt. Independent from DeriveKey: the hash never sees
// the master salt and the key derivation never sees the password salt.
func (k *keyChain) SaltedHash(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// DeriveKey implements [KeyChain]. It runs scrypt over the password and
// salt with the parameters stored in the receiver. Returns an error only if
// the parameters are invalid, which would indicate a programming mistake.
func (k *keyChain) DeriveKey(password, salt string) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), k.scryptN, k.scryptR, k.scryptP, k.scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}

// Encrypt implements [KeyChain]. Token layout, base64url-encoded:
//
//	version (1) ‖ unix timestamp (8, big-endian) ‖ nonce (12) ‖ AES-256-GCM ciphertext
//
// The header (version ‖ timestamp) is bound into the GCM authentication tag
// as additional data, so tampering with either fails decryption.
func (k *keyChain) Encrypt(plaintext string, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	header := make([]byte, tokenHeaderSize)
	header[0] = tokenVersion
	binary.BigEndian.PutUint64(header[1:], uint64(time.Now().Unix()))

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), header)

	token := make([]byte, 0, tokenHeaderSize+len(nonce)+len(ciphertext))
	token = append(token, header...)
	token = append(token, nonce...)
	token = append(token, ciphertext...)

	return base64.URLEncoding.EncodeToString(token), nil
}

// Decrypt implements [KeyChain]. Every failure mode — undecodable base64,
// short input, unknown version, authentication-tag mismatch — collapses to
// [ErrCipher] so callers cannot accidentally treat a tampered token
// differently from a wrong-key one.
func (k *keyChain) Decrypt(token string, key []byte) (string, error) {
	blob, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: decode token: %v", ErrCipher, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	if len(blob) < tokenHeaderSize+gcm.NonceSize() {
		return "", fmt.Errorf("%w: token too short", ErrCipher)
	}

	header := blob[:tokenHeaderSize]
	if header[0] != tokenVersion {
		return "", fmt.Errorf("%w: unsupported token version %d", ErrCipher, header[0])
	}

	nonce := blob[tokenHeaderSize : tokenHeaderSize+gcm.NonceSize()]
	ciphertext := blob[tokenHeaderSize+gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, header)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCipher, err)
	}

	return string(plaintext), nil
}
