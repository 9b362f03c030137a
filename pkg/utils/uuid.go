package utils

import (
	"strings"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para correlacionar logs
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// NewEntityID gera o ID das entidades persistidas (uuid v4 sem hífens, 32 caracteres)
func NewEntityID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
