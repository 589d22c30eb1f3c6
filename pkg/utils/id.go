package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const reportIDLength = 16

func GenerateID(size int) (string, error) {
	return gonanoid.Generate(characters, size)
}

// GenerateReportID gera o identificador público de um relatório
func GenerateReportID() (string, error) {
	return GenerateID(reportIDLength)
}
