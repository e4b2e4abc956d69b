package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
)

const sealedPrefix = "xc1:"

// ErrMalformedSecret is returned when a sealed value cannot be decoded.
var ErrMalformedSecret = errors.New("malformed sealed secret")

// SecretBox seals short secrets with XChaCha20-Poly1305. A box without a key
// stores values as-is.
type SecretBox struct {
	key []byte
}

// NewSecretBox returns a SecretBox for a 32-byte key. A nil key disables sealing.
func NewSecretBox(key []byte) (*SecretBox, error) {
	if key != nil && len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("secret key must be %d bytes", chacha20poly1305.KeySize)
	}
	return &SecretBox{key: key}, nil
}

// Seal encrypts plaintext and returns a printable token.
func (b *SecretBox) Seal(plaintext string) (string, error) {
	if b.key == nil {
		return plaintext, nil
	}
	aead, err := chacha20poly1305.NewX(b.key)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return sealedPrefix + base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal. Values that were stored without a key are returned unchanged.
func (b *SecretBox) Open(token string) (string, error) {
	if !strings.HasPrefix(token, sealedPrefix) {
		return token, nil
	}
	if b.key == nil {
		return "", errors.New("sealed secret found but no key configured")
	}
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(token, sealedPrefix))
	if err != nil {
		return "", ErrMalformedSecret
	}
	aead, err := chacha20poly1305.NewX(b.key)
	if err != nil {
		return "", err
	}
	if len(raw) < aead.NonceSize() {
		return "", ErrMalformedSecret
	}
	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("open sealed secret: %w", err)
	}
	return string(plain), nil
}
