package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const batchIDSize = 12

// GenerateBatchID gera o identificador de um lote de pedidos salvo
func GenerateBatchID() (string, error) {
	return gonanoid.Generate(characters, batchIDSize)
}
