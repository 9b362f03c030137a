package secret

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24
	// prefixo que distingue valores selados de valores legados em texto puro
	sealedPrefix = "sb1:"
)

var (
	ErrInvalidKey    = errors.New("secret: a chave deve ter 32 bytes em hexadecimal")
	ErrCorrupted     = errors.New("secret: valor selado corrompido")
	ErrDecryptFailed = errors.New("secret: falha ao abrir valor selado")
)

// Sealer protege credenciais persistidas
type Sealer interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

type box struct {
	key [keySize]byte
}

// NewSealer cria um Sealer com nacl/secretbox. Com hexKey vazio retorna um
// Sealer que não criptografa (apenas para desenvolvimento local).
func NewSealer(hexKey string) (Sealer, error) {
	if hexKey == "" {
		return plain{}, nil
	}

	raw, err := hex.DecodeString(hexKey)
	if err != nil || len(raw) != keySize {
		return nil, ErrInvalidKey
	}

	b := &box{}
	copy(b.key[:], raw)
	return b, nil
}

func (b *box) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("secret: erro ao gerar nonce: %w", err)
	}

	out := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &b.key)
	return sealedPrefix + base64.StdEncoding.EncodeToString(out), nil
}

func (b *box) Open(sealed string) (string, error) {
	if sealed == "" {
		return "", nil
	}

	if !strings.HasPrefix(sealed, sealedPrefix) {
		// Valor gravado antes da criptografia ser habilitada
		return sealed, nil
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(sealed, sealedPrefix))
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrCorrupted
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	opened, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &b.key)
	if !ok {
		return "", ErrDecryptFailed
	}

	return string(opened), nil
}

type plain struct{}

func (plain) Seal(plaintext string) (string, error) { return plaintext, nil }

func (plain) Open(sealed string) (string, error) {
	if strings.HasPrefix(sealed, sealedPrefix) {
		return "", ErrDecryptFailed
	}
	return sealed, nil
}
