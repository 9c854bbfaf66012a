package shamir

import (
	"fmt"
	"math/big"

	"github.com/izouxv/goShamir/field"
	"github.com/izouxv/goShamir/share"
)

// interpolateAtZero evaluates at x = 0 the unique polynomial of degree
// len(points)-1 through points:
//
//	f(0) = sum_i y_i * prod_{j!=i} (0 - x_j) / (x_i - x_j)
func interpolateAtZero(f *field.Field, points []share.Share) (*big.Int, error) {
	secret := new(big.Int)

	for i, pi := range points {
		xi := big.NewInt(int64(pi.Index))
		num := big.NewInt(1)
		den := big.NewInt(1)

		for j, pj := range points {
			if i == j {
				continue
			}
			xj := big.NewInt(int64(pj.Index))
			num = f.Mul(num, f.Neg(xj))
			den = f.Mul(den, f.Sub(xi, xj))
		}

		inv, err := f.Inverse(den)
		if err != nil {
			return nil, fmt.Errorf("lagrange basis for index %d: %w", pi.Index, err)
		}
		term := f.Mul(pi.Value, f.Mul(num, inv))
		secret = f.Add(secret, term)
	}

	return secret, nil
}
