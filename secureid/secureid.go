// Package secureid encodes internal row ids into opaque tokens so raw
// auto-increment values never reach clients.
package secureid

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"errors"
)

// ErrInvalidID covers every decode failure: malformed encoding, tokens
// produced under a different key, and tampered ciphertext.
var ErrInvalidID = errors.New("secureid: invalid id token")

// Codec is an AES-256-GCM codec for positive integer ids. The nonce is
// derived from the plaintext with HMAC-SHA256, so encoding the same id
// always yields the same token under a given key.
type Codec struct {
	aead     cipher.AEAD
	nonceMAC []byte
}

func New(key []byte) (*Codec, error) {
	if len(key) != 32 {
		return nil, errors.New("secureid: key must be 32 bytes")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	mac := sha256.Sum256(append([]byte("secureid-nonce:"), key...))
	return &Codec{aead: aead, nonceMAC: mac[:]}, nil
}

func (c *Codec) Encode(id uint) string {
	var plain [8]byte
	binary.BigEndian.PutUint64(plain[:], uint64(id))
	nonce := c.nonce(plain[:])
	sealed := c.aead.Seal(nil, nonce, plain[:], nil)
	return base64.RawURLEncoding.EncodeToString(append(nonce, sealed...))
}

func (c *Codec) Decode(token string) (uint, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, ErrInvalidID
	}
	ns := c.aead.NonceSize()
	if len(raw) < ns+8 {
		return 0, ErrInvalidID
	}
	plain, err := c.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil || len(plain) != 8 {
		return 0, ErrInvalidID
	}
	id := binary.BigEndian.Uint64(plain)
	if id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}

func (c *Codec) nonce(plain []byte) []byte {
	h := hmac.New(sha256.New, c.nonceMAC)
	h.Write(plain)
	return h.Sum(nil)[:c.aead.NonceSize()]
}
