package field

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestArithmetic(t *testing.T) {
	f := New(InsecureDemo())
	p := f.Prime()
	pm1 := new(big.Int).Sub(p, big.NewInt(1))

	t.Run("add wraps", func(t *testing.T) {
		assert.Equal(t, 0, f.Add(pm1, big.NewInt(1)).Sign())
		assert.Equal(t, int64(5), f.Add(big.NewInt(2), big.NewInt(3)).Int64())
	})

	t.Run("sub renormalizes negatives", func(t *testing.T) {
		got := f.Sub(big.NewInt(2), big.NewInt(3))
		assert.Equal(t, 0, got.Cmp(pm1))
		assert.True(t, f.Contains(got))
	})

	t.Run("mul", func(t *testing.T) {
		assert.Equal(t, 0, f.Mul(pm1, pm1).Cmp(big.NewInt(1)))
	})

	t.Run("neg", func(t *testing.T) {
		assert.Equal(t, 0, f.Neg(big.NewInt(1)).Cmp(pm1))
		assert.Equal(t, 0, f.Neg(big.NewInt(0)).Sign())
	})

	t.Run("reduce", func(t *testing.T) {
		assert.Equal(t, 0, f.Reduce(big.NewInt(-1)).Cmp(pm1))
		assert.Equal(t, 0, f.Reduce(p).Sign())
	})

	t.Run("operands untouched", func(t *testing.T) {
		a, b := big.NewInt(7), big.NewInt(11)
		f.Mul(a, b)
		f.Sub(a, b)
		assert.Equal(t, int64(7), a.Int64())
		assert.Equal(t, int64(11), b.Int64())
	})
}

func TestInverse(t *testing.T) {
	for _, name := range []string{"modp2048", "secp256k1"} {
		t.Run(name, func(t *testing.T) {
			f := New(ProfileGet(name))
			for i := 0; i < 10; i++ {
				a, err := f.Rand(rand.Reader)
				require.NoError(t, err)
				if a.Sign() == 0 {
					continue
				}
				inv, err := f.Inverse(a)
				require.NoError(t, err)
				assert.Equal(t, 0, f.Mul(a, inv).Cmp(big.NewInt(1)))
			}
		})
	}

	t.Run("zero is singular", func(t *testing.T) {
		f := New(InsecureDemo())
		_, err := f.Inverse(big.NewInt(0))
		assert.ErrorIs(t, err, ErrSingular)
		_, err = f.Inverse(f.Prime())
		assert.ErrorIs(t, err, ErrSingular)
	})

	t.Run("negative input", func(t *testing.T) {
		f := New(InsecureDemo())
		inv, err := f.Inverse(big.NewInt(-2))
		require.NoError(t, err)
		assert.Equal(t, 0, f.Mul(big.NewInt(-2), inv).Cmp(big.NewInt(1)))
	})
}

func TestRand(t *testing.T) {
	f := New(InsecureDemo())
	for i := 0; i < 100; i++ {
		n, err := f.Rand(rand.Reader)
		require.NoError(t, err)
		assert.True(t, f.Contains(n))
	}

	_, err := f.Rand(failingReader{})
	assert.Error(t, err)
}
