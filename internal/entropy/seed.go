// Package entropy provides seeds for procedural generation when the caller
// does not fix one. Seeds come from crypto/rand.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"
)

// Seed returns a non-zero random seed. Zero is reserved by callers to mean
// "pick one for me".
func Seed() int64 {
	for {
		s := cryptoSeed()
		if s != 0 {
			return s
		}
	}
}

// cryptoSeed reads 63 random bits. Falls back to the wall clock if the
// system source fails.
func cryptoSeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		slog.Debug("crypto/rand read failed, seeding from clock", "error", err)
		return time.Now().UnixNano() & (1<<63 - 1)
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
}

// Resolve returns seed unchanged unless it is zero, in which case a fresh
// random seed is drawn.
func Resolve(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return Seed()
}
