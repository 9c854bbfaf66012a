// Package field implements arithmetic over prime fields GF(p) on arbitrary
// precision integers. Every value returned is a fresh canonical residue in
// [0, p).
package field

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrSingular is returned when inverting an element congruent to zero.
var ErrSingular = errors.New("singular denominator: element has no inverse")

// Field is GF(p) for the prime of a Profile. It holds no mutable state and is
// safe for concurrent use.
type Field struct {
	p *big.Int
}

// New returns the field of the given profile.
func New(profile *Profile) *Field {
	return &Field{p: profile.Prime}
}

// Prime returns a copy of the modulus.
func (f *Field) Prime() *big.Int {
	return new(big.Int).Set(f.p)
}

// Contains reports whether a is a canonical residue.
func (f *Field) Contains(a *big.Int) bool {
	return a.Sign() >= 0 && a.Cmp(f.p) < 0
}

// Reduce maps any integer, negative ones included, into [0, p).
func (f *Field) Reduce(a *big.Int) *big.Int {
	// big.Int.Mod is Euclidean, so the result is never negative.
	return new(big.Int).Mod(a, f.p)
}

func (f *Field) Add(a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Add(a, b)
	res.Mod(res, f.p)
	return
}

func (f *Field) Sub(a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Sub(a, b)
	res.Mod(res, f.p)
	return
}

func (f *Field) Mul(a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Mul(a, b)
	res.Mod(res, f.p)
	return
}

func (f *Field) Neg(a *big.Int) (res *big.Int) {
	res = new(big.Int).Neg(a)
	res.Mod(res, f.p)
	return
}

// Inverse returns a^-1 mod p using the extended Euclidean algorithm.
func (f *Field) Inverse(a *big.Int) (*big.Int, error) {
	r := f.Reduce(a)
	if r.Sign() == 0 {
		return nil, ErrSingular
	}
	inv := new(big.Int).ModInverse(r, f.p)
	if inv == nil {
		// Only reachable with a composite modulus.
		return nil, fmt.Errorf("%w: gcd(%s, p) != 1", ErrSingular, r.String())
	}
	return inv, nil
}

// Rand draws a uniform element of [0, p) from r, which must be a
// cryptographically secure source.
func (f *Field) Rand(r io.Reader) (*big.Int, error) {
	n, err := rand.Int(r, f.p)
	if err != nil {
		return nil, fmt.Errorf("failed to draw random field element: %w", err)
	}
	return n, nil
}
