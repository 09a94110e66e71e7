package spseq

import (
	"crypto/rand"
	"math/big"
	"testing"
)

func TestGenerateSigningKeyRejectsNonPositiveCapacity(t *testing.T) {
	if _, err := GenerateSigningKey(0, rand.Reader); err == nil {
		t.Fatalf("expected error for capacity 0")
	}
	if _, err := GenerateSigningKey(-1, rand.Reader); err == nil {
		t.Fatalf("expected error for negative capacity")
	}
}

func TestGenerateSigningKeyScalarsAreDistinct(t *testing.T) {
	sk, err := GenerateSigningKey(8, rand.Reader)
	if err != nil {
		t.Fatalf("GenerateSigningKey: %v", err)
	}

	scalars := sk.Scalars()
	seen := make(map[string]bool)
	for i, x := range scalars {
		if x.Sign() == 0 {
			t.Fatalf("scalar %d is zero", i)
		}
		key := x.String()
		if seen[key] {
			t.Fatalf("scalar %d duplicates an earlier scalar; single-sample-repeated bug?", i)
		}
		seen[key] = true
	}
}

func TestImportSigningKeyRejectsZero(t *testing.T) {
	sk, err := GenerateSigningKey(4, rand.Reader)
	if err != nil {
		t.Fatalf("GenerateSigningKey: %v", err)
	}
	scalars := append([]*big.Int{}, sk.scalars...)
	scalars[2] = big.NewInt(0)

	if _, err := ImportSigningKey(scalars); err != ErrInvalidSecretKeyVector {
		t.Fatalf("expected ErrInvalidSecretKeyVector, got %v", err)
	}
}

func TestImportSigningKeyRejectsEmpty(t *testing.T) {
	if _, err := ImportSigningKey(nil); err != ErrInvalidSecretKeyVector {
		t.Fatalf("expected ErrInvalidSecretKeyVector, got %v", err)
	}
}

func TestImportSigningKeyRoundTrip(t *testing.T) {
	sk, err := GenerateSigningKey(3, rand.Reader)
	if err != nil {
		t.Fatalf("GenerateSigningKey: %v", err)
	}
	imported, err := ImportSigningKey(sk.Scalars())
	if err != nil {
		t.Fatalf("ImportSigningKey: %v", err)
	}
	if !sk.Equal(imported) {
		t.Fatalf("imported key does not equal original")
	}
}

func TestSigningKeyDestroyZeroizes(t *testing.T) {
	sk, err := GenerateSigningKey(2, rand.Reader)
	if err != nil {
		t.Fatalf("GenerateSigningKey: %v", err)
	}
	sk.Destroy()
	for i, x := range sk.Scalars() {
		if x.Sign() != 0 {
			t.Fatalf("scalar %d not zeroized after Destroy", i)
		}
	}
}

// TestZeroizeScalarClearsBackingWords guards against a SetInt64(0)-only
// implementation: math/big truncates its word slice on SetInt64(0) without
// overwriting it, so a test that only checks Sign() == 0 cannot catch a
// secret left live in the backing array. This test captures the backing
// Word slice before zeroizing and asserts every word in it was cleared.
func TestZeroizeScalarClearsBackingWords(t *testing.T) {
	s, err := rand.Int(rand.Reader, Order)
	if err != nil {
		t.Fatalf("rand.Int: %v", err)
	}
	if s.Sign() == 0 {
		t.Fatalf("sampled zero scalar, retry")
	}

	words := s.Bits()
	if len(words) == 0 {
		t.Fatalf("sampled scalar has no backing words to check")
	}

	zeroizeScalar(s)

	for i, w := range words {
		if w != 0 {
			t.Fatalf("backing word %d not cleared after zeroizeScalar", i)
		}
	}
	if s.Sign() != 0 {
		t.Fatalf("scalar not zero after zeroizeScalar")
	}
}
