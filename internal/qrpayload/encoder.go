package qrpayload

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
)

// Encoder turns an issued ticket id into the opaque string printed in its
// QR code, and back.
type Encoder interface {
	Encode(ticketID string) (string, error)
	Decode(payload string) (string, error)
}

const prefix = "tkt1."

var ErrInvalidPayload = errors.New("invalid ticket payload")

// SealedEncoder seals ticket ids with XChaCha20-Poly1305 so payloads can't
// be forged or edited without the secret.
type SealedEncoder struct {
	aead cipher.AEAD
}

func NewSealedEncoder(secret string) (*SealedEncoder, error) {
	if secret == "" {
		return nil, errors.New("qr secret is empty")
	}
	key := sha256.Sum256([]byte(secret))
	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, fmt.Errorf("init qr cipher: %w", err)
	}
	return &SealedEncoder{aead: aead}, nil
}

func (e *SealedEncoder) Encode(ticketID string) (string, error) {
	nonce := make([]byte, e.aead.NonceSize(), e.aead.NonceSize()+len(ticketID)+e.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("qr nonce: %w", err)
	}
	sealed := e.aead.Seal(nonce, nonce, []byte(ticketID), []byte(prefix))
	return prefix + base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (e *SealedEncoder) Decode(payload string) (string, error) {
	body, ok := strings.CutPrefix(payload, prefix)
	if !ok {
		return "", ErrInvalidPayload
	}
	data, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return "", ErrInvalidPayload
	}
	n := e.aead.NonceSize()
	if len(data) < n+e.aead.Overhead() {
		return "", ErrInvalidPayload
	}
	plain, err := e.aead.Open(nil, data[:n], data[n:], []byte(prefix))
	if err != nil {
		return "", ErrInvalidPayload
	}
	return string(plain), nil
}
