package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentDigest returns the hex SHA-256 of data, used to correlate identical uploads in logs.
func ContentDigest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
