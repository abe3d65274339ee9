package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 10
)

// GenerateID gera identificadores curtos para execuções de sincronização
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
