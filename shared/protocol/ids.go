package protocol

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns a random 128-bit id, hex encoded.
func NewID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("protocol: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(b[:])
}
