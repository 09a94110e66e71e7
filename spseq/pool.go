package spseq

import (
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// objectPool reduces allocations in Sign's and ChangeRepr's hot paths by
// reusing curve-point scratch values across calls. Trimmed from
// the teacher's broader pool (which also pooled maps and buffers for
// selective-disclosure proofs, a BBS+-specific, out-of-scope feature here)
// down to the handful of types SPS-EQ's algebra actually touches.
type objectPool struct {
	g1AffineSlicePool sync.Pool
	g1JacPool         sync.Pool
}

func newObjectPool() *objectPool {
	return &objectPool{
		g1AffineSlicePool: sync.Pool{
			New: func() interface{} { return make([]bls12381.G1Affine, 0, 8) },
		},
		g1JacPool: sync.Pool{
			New: func() interface{} { return new(bls12381.G1Jac) },
		},
	}
}

var defaultPool = newObjectPool()

// getG1AffineSlice returns a zero-length slice of G1Affine points with at
// least the requested capacity.
func (p *objectPool) getG1AffineSlice(capacity int) []bls12381.G1Affine {
	s := p.g1AffineSlicePool.Get().([]bls12381.G1Affine)
	if cap(s) < capacity {
		return make([]bls12381.G1Affine, 0, capacity)
	}
	return s[:0]
}

func (p *objectPool) putG1AffineSlice(s []bls12381.G1Affine) {
	if s != nil {
		p.g1AffineSlicePool.Put(s)
	}
}

// getG1Jac returns a scratch G1 Jacobian point. Callers must not assume it
// is zeroed; FromAffine/ScalarMultiplication always overwrite it fully
// before use.
func (p *objectPool) getG1Jac() *bls12381.G1Jac {
	return p.g1JacPool.Get().(*bls12381.G1Jac)
}

func (p *objectPool) putG1Jac(j *bls12381.G1Jac) {
	if j != nil {
		p.g1JacPool.Put(j)
	}
}
