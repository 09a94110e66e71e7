package spseq

import (
	"math/big"
	"runtime"
)

// zeroizeScalar overwrites a big.Int's backing storage with zero in a way
// the compiler cannot optimize away, then leaves it set to zero.
// big.Int.SetInt64(0) is not enough: math/big's nat.setWord(0) implements
// it as a slice truncation (z[:0]), which leaves the secret's words
// untouched in the backing array. Bits() exposes that backing []Word
// directly, so each word is cleared in place before the value is
// truncated, and the pointer is kept alive with runtime.KeepAlive so the
// compiler cannot treat the writes as dead stores.
func zeroizeScalar(s *big.Int) {
	if s == nil {
		return
	}
	words := s.Bits()
	for i := range words {
		words[i] = 0
	}
	s.SetInt64(0)
	runtime.KeepAlive(s)
	runtime.KeepAlive(words)
}

// zeroizeScalars zeroizes every scalar in the slice.
func zeroizeScalars(scalars []*big.Int) {
	for _, s := range scalars {
		zeroizeScalar(s)
	}
}
