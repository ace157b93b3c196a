package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"
)

// GenerateObjectKey returns a random, unguessable storage object key:
// 32 random bytes, hex encoded.
func GenerateObjectKey() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// Fall back to a timestamped key if the entropy source fails.
		return GenerateID("obj")
	}
	return hex.EncodeToString(buf)
}

// GenerateID builds a prefixed timestamp-plus-random identifier, e.g.
// evt_1724990000_042137.
func GenerateID(prefix string) string {
	timestamp := time.Now().Unix()
	randomNum, _ := rand.Int(rand.Reader, big.NewInt(999999))
	return fmt.Sprintf("%s_%d_%06d", prefix, timestamp, randomNum.Int64())
}
