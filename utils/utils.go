package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Fingerprint is a short, non-reversible identifier for sensitive material
// such as a share token, suitable for logs.
func Fingerprint(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:6])
}
