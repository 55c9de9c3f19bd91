package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestGenerateSalt_LengthAlphabetRandomness(t *testing.T) {
	kc := NewKeyChain()

	s1, err := kc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := kc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != saltLength {
		t.Fatalf("salt length = %d, want %d", len(s1), saltLength)
	}
	for _, c := range s1 {
		if !strings.ContainsRune(saltAlphabet, c) {
			t.Fatalf("salt char %q not in alphabet", c)
		}
	}
	if s1 == s2 {
		t.Fatalf("expected salts to differ, both are %q", s1)
	}
}

func TestSaltedHash_Deterministic(t *testing.T) {
	kc := NewKeyChain()

	h1 := kc.SaltedHash("hunter2", "abc12345")
	h2 := kc.SaltedHash("hunter2", "abc12345")
	if h1 != h2 {
		t.Fatalf("same inputs produced different hashes: %q vs %q", h1, h2)
	}
	if len(h1) != 64 {
		t.Fatalf("hash length = %d, want 64 hex chars", len(h1))
	}
}

func TestSaltedHash_DifferentSaltsDiffer(t *testing.T) {
	kc := NewKeyChain()

	if kc.SaltedHash("hunter2", "salt0001") == kc.SaltedHash("hunter2", "salt0002") {
		t.Fatalf("expected different hashes for different salts")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	kc := NewKeyChain()

	k1, err := kc.DeriveKey("correct horse battery staple", "m4st3rs4")
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := kc.DeriveKey("correct horse battery staple", "m4st3rs4")
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same password+salt")
	}
}

func TestDeriveKey_DifferentInputsProduceDifferentKeys(t *testing.T) {
	kc := NewKeyChain()

	base, err := kc.DeriveKey("password", "saltsalt")
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	otherPassword, err := kc.DeriveKey("Password", "saltsalt")
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	otherSalt, err := kc.DeriveKey("password", "saltsalz")
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if bytes.Equal(base, otherPassword) {
		t.Fatalf("expected different keys for different passwords")
	}
	if bytes.Equal(base, otherSalt) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	kc := NewKeyChain()
	key, err := kc.DeriveKey("pw", "roundtr1")
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	plaintexts := []string{"", "p@ss1", "пароль", strings.Repeat("x", 4096)}
	for _, p := range plaintexts {
		token, err := kc.Encrypt(p, key)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", p, err)
		}
		if token == p && p != "" {
			t.Fatalf("token equals plaintext %q", p)
		}

		got, err := kc.Decrypt(token, key)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if got != p {
			t.Fatalf("round trip = %q, want %q", got, p)
		}
	}
}

func TestEncrypt_TokensDifferPerCall(t *testing.T) {
	kc := NewKeyChain()
	key, _ := kc.DeriveKey("pw", "nonces00")

	t1, err := kc.Encrypt("same", key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	t2, err := kc.Encrypt("same", key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if t1 == t2 {
		t.Fatalf("expected distinct tokens for repeated encryption")
	}
}

func TestDecrypt_WrongKeyFails(t *testing.T) {
	kc := NewKeyChain()
	k1, _ := kc.DeriveKey("password one", "saltsame")
	k2, _ := kc.DeriveKey("password two", "saltsame")

	token, err := kc.Encrypt("secret", k1)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := kc.Decrypt(token, k2); !errors.Is(err, ErrCipher) {
		t.Fatalf("Decrypt with wrong key: err = %v, want ErrCipher", err)
	}
}

func TestDecrypt_CorruptedTokenFails(t *testing.T) {
	kc := NewKeyChain()
	key, _ := kc.DeriveKey("pw", "corrupt0")

	token, err := kc.Encrypt("secret", key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	blob, _ := base64.URLEncoding.DecodeString(token)

	flipped := append([]byte(nil), blob...)
	flipped[len(flipped)-1] ^= 0xFF

	cases := map[string]string{
		"not base64":      "%%%not-base64%%%",
		"truncated":       base64.URLEncoding.EncodeToString(blob[:5]),
		"flipped tail":    base64.URLEncoding.EncodeToString(flipped),
		"version changed": base64.URLEncoding.EncodeToString(append([]byte{0x7F}, blob[1:]...)),
	}

	for name, bad := range cases {
		if _, err := kc.Decrypt(bad, key); !errors.Is(err, ErrCipher) {
			t.Fatalf("%s: err = %v, want ErrCipher", name, err)
		}
	}
}
