// Package bench runs timing benchmarks for the spseq library's four
// operations and reports the results as text, JSON, CSV, or a PNG chart.
package bench

import (
	"crypto/rand"
	"fmt"
	"time"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/brave-experiments/go-sps-eq/spseq"
)

// Config controls a benchmark run.
type Config struct {
	Name       string
	Capacity   int
	Iterations int
}

// OpResult holds timing statistics for a single operation across all
// iterations of a run.
type OpResult struct {
	Operation string
	Total     time.Duration
	Mean      time.Duration
	Min       time.Duration
	Max       time.Duration
	N         int
}

// Result is the full output of one benchmark run: one OpResult per
// operation, in execution order.
type Result struct {
	Config Config
	Ops    []OpResult
}

// Runner executes the configured benchmark.
type Runner struct {
	config Config
}

// NewRunner builds a Runner for config.
func NewRunner(config Config) *Runner {
	return &Runner{config: config}
}

func randomMessage(n int) ([]bls12381.G1Affine, error) {
	_, _, g1, _ := bls12381.Generators()
	msg := make([]bls12381.G1Affine, n)
	for i := range msg {
		s, err := rand.Int(rand.Reader, spseq.Order)
		if err != nil {
			return nil, err
		}
		var jac bls12381.G1Jac
		jac.FromAffine(&g1)
		jac.ScalarMultiplication(&jac, s)
		var aff bls12381.G1Affine
		aff.FromJacobian(&jac)
		msg[i] = aff
	}
	return msg, nil
}

func timeOp(name string, n int, f func() error) (OpResult, error) {
	res := OpResult{Operation: name, N: n}
	for i := 0; i < n; i++ {
		start := time.Now()
		if err := f(); err != nil {
			return OpResult{}, fmt.Errorf("%s iteration %d: %w", name, i, err)
		}
		elapsed := time.Since(start)
		res.Total += elapsed
		if i == 0 || elapsed < res.Min {
			res.Min = elapsed
		}
		if elapsed > res.Max {
			res.Max = elapsed
		}
	}
	if n > 0 {
		res.Mean = res.Total / time.Duration(n)
	}
	return res, nil
}

// RunAll times KeyGen, Sign, Verify, and ChangeRepr (both flavors) for the
// configured capacity, running each r.config.Iterations times.
func (r *Runner) RunAll() (*Result, error) {
	cfg := r.config
	result := &Result{Config: cfg}

	var sk *spseq.SigningKey
	keygen, err := timeOp("KeyGen", cfg.Iterations, func() error {
		generated, err := spseq.GenerateSigningKey(cfg.Capacity, rand.Reader)
		if err != nil {
			return err
		}
		sk = generated
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Ops = append(result.Ops, keygen)

	pk := spseq.DerivePublicKey(sk)

	message, err := randomMessage(cfg.Capacity)
	if err != nil {
		return nil, err
	}

	var sig *spseq.Signature
	signOp, err := timeOp("Sign", cfg.Iterations, func() error {
		s, err := sk.Sign(message, rand.Reader)
		if err != nil {
			return err
		}
		sig = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Ops = append(result.Ops, signOp)

	verifyOp, err := timeOp("Verify", cfg.Iterations, func() error {
		return pk.Verify(message, sig)
	})
	if err != nil {
		return nil, err
	}
	result.Ops = append(result.Ops, verifyOp)

	changeReprOp, err := timeOp("ChangeRepr", cfg.Iterations, func() error {
		_, _, err := sig.ChangeRepr(message, rand.Reader)
		return err
	})
	if err != nil {
		return nil, err
	}
	result.Ops = append(result.Ops, changeReprOp)

	return result, nil
}
