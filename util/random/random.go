package random

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	"time"

	"github.com/brickchain/brickd/util/binaryserializer"
	"github.com/pkg/errors"
)

// Uint64 returns a cryptographically random uint64 value.
func Uint64() (uint64, error) {
	return binaryserializer.Uint64(rand.Reader, binary.LittleEndian)
}

// Uint64n returns a cryptographically random value uniformly distributed in
// [0, n). n must be positive.
func Uint64n(n uint64) (uint64, error) {
	if n == 0 {
		return 0, errors.New("random: upper bound must be positive")
	}

	// Values at or above limit would bias the modulo towards small results.
	limit := math.MaxUint64 - math.MaxUint64%n
	for {
		v, err := Uint64()
		if err != nil {
			return 0, err
		}
		if v < limit {
			return v % n, nil
		}
	}
}

// Duration returns a random duration in [0, max) with one second
// granularity. max must be at least one second.
func Duration(max time.Duration) (time.Duration, error) {
	seconds, err := Uint64n(uint64(max / time.Second))
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}
