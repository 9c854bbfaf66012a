// Package poly builds and evaluates the secret-embedding polynomial
// f(x) = c0 + c1*x + ... + c(k-1)*x^(k-1) over a prime field.
package poly

import (
	"fmt"
	"io"
	"math/big"

	"github.com/izouxv/goShamir/field"
)

// Polynomial is a sequence of coefficients in ascending degree.
type Polynomial struct {
	f      *field.Field
	coeffs []*big.Int
}

// New wraps existing coefficients. They must already be field elements.
func New(f *field.Field, coeffs []*big.Int) *Polynomial {
	return &Polynomial{f: f, coeffs: coeffs}
}

// Generate returns a polynomial of degree k-1 whose constant term is secret.
// The remaining coefficients are drawn independently and uniformly from r,
// which must be a CSPRNG. Nothing is cached between calls.
func Generate(f *field.Field, secret *big.Int, k int, r io.Reader) (*Polynomial, error) {
	if k < 1 {
		return nil, fmt.Errorf("polynomial needs at least one coefficient, got %d", k)
	}
	if !f.Contains(secret) {
		return nil, fmt.Errorf("constant term is not a field element")
	}

	coeffs := make([]*big.Int, k)
	coeffs[0] = new(big.Int).Set(secret)
	for i := 1; i < k; i++ {
		c, err := f.Rand(r)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return &Polynomial{f: f, coeffs: coeffs}, nil
}

// Degree is k-1.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns a copy of the coefficients, constant term first.
func (p *Polynomial) Coefficients() []*big.Int {
	out := make([]*big.Int, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = new(big.Int).Set(c)
	}
	return out
}

// Evaluate computes f(x) mod p with Horner's method, walking from the highest
// degree down to the constant term.
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	acc := new(big.Int)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = p.f.Add(p.f.Mul(acc, x), p.coeffs[i])
	}
	return acc
}
