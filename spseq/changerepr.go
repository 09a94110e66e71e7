package spseq

import (
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// ChangeReprInPlace transforms sig and message to a new representative of
// the same equivalence class: it samples a fresh representative randomizer
// f and signature randomizer psi, mutates sig in place, and returns the new
// message vector M'. Afterwards sig is a valid signature on the returned
// message if and only if it was valid on message before the call.
//
// It does not verify the input (sig, message) pair; callers are expected
// to already know it is valid. A non-matching pair in yields a
// non-matching pair out.
func (sig *Signature) ChangeReprInPlace(message []bls12381.G1Affine, rng io.Reader) ([]bls12381.G1Affine, error) {
	f, err := sampleNonZeroScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("spseq: failed to sample representative randomizer: %w", err)
	}
	defer zeroizeScalar(f)

	psi, err := sampleNonZeroScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("spseq: failed to sample signature randomizer: %w", err)
	}
	defer zeroizeScalar(psi)

	newMessage := defaultPool.getG1AffineSlice(len(message))
	for i := range message {
		newMessage = append(newMessage, g1ScalarMul(&message[i], f))
	}

	psiInv := scalarInverse(psi)
	defer zeroizeScalar(psiInv)

	fTimesPsi := new(big.Int).Mul(f, psi)
	fTimesPsi.Mod(fTimesPsi, Order)

	var zJac bls12381.G1Jac
	zJac.FromAffine(&sig.Z)
	zJac.ScalarMultiplication(&zJac, fTimesPsi)
	sig.Z = g1JacToAffine(&zJac)

	sig.Y = g1ScalarMul(&sig.Y, psiInv)
	sig.Yp = g2ScalarMul(&sig.Yp, psiInv)

	return newMessage, nil
}

// ChangeRepr is the consuming flavor of ChangeReprInPlace: it takes
// ownership of sig and message and returns a freshly-built signature and
// message pair, leaving the inputs untouched.
func (sig *Signature) ChangeRepr(message []bls12381.G1Affine, rng io.Reader) (*Signature, []bls12381.G1Affine, error) {
	owned := *sig
	newMessage, err := owned.ChangeReprInPlace(message, rng)
	if err != nil {
		return nil, nil, err
	}
	return &owned, newMessage, nil
}
