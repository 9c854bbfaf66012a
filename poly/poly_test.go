package poly

import (
	"bytes"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/izouxv/goShamir/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestEvaluate(t *testing.T) {
	f := field.New(field.InsecureDemo())

	// f(x) = 3 + 2x + x^2
	p := New(f, []*big.Int{big.NewInt(3), big.NewInt(2), big.NewInt(1)})
	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, int64(3), p.Evaluate(big.NewInt(0)).Int64())
	assert.Equal(t, int64(6), p.Evaluate(big.NewInt(1)).Int64())
	assert.Equal(t, int64(18), p.Evaluate(big.NewInt(3)).Int64())

	t.Run("reduces modulo p", func(t *testing.T) {
		pm1 := new(big.Int).Sub(f.Prime(), big.NewInt(1))
		q := New(f, []*big.Int{pm1, big.NewInt(1)})
		assert.Equal(t, 0, q.Evaluate(big.NewInt(1)).Sign())
	})
}

func TestGenerate(t *testing.T) {
	f := field.New(field.Default())
	secret := big.NewInt(424242)

	p, err := Generate(f, secret, 4, rand.Reader)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Degree())

	coeffs := p.Coefficients()
	assert.Equal(t, 0, coeffs[0].Cmp(secret))
	for _, c := range coeffs {
		assert.True(t, f.Contains(c))
	}
	assert.Equal(t, 0, p.Evaluate(big.NewInt(0)).Cmp(secret))

	t.Run("fresh coefficients per call", func(t *testing.T) {
		q, err := Generate(f, secret, 4, rand.Reader)
		require.NoError(t, err)
		assert.NotEqual(t, 0, q.Coefficients()[1].Cmp(coeffs[1]))
	})

	t.Run("constant term is copied", func(t *testing.T) {
		s := big.NewInt(7)
		q, err := Generate(f, s, 2, rand.Reader)
		require.NoError(t, err)
		s.SetInt64(8)
		assert.Equal(t, int64(7), q.Coefficients()[0].Int64())
	})

	t.Run("invalid degree", func(t *testing.T) {
		_, err := Generate(f, secret, 0, rand.Reader)
		assert.Error(t, err)
	})

	t.Run("secret outside field", func(t *testing.T) {
		_, err := Generate(f, f.Prime(), 2, rand.Reader)
		assert.Error(t, err)
	})

	t.Run("rng failure", func(t *testing.T) {
		_, err := Generate(f, secret, 3, failingReader{})
		assert.Error(t, err)
	})

	t.Run("rng is consumed", func(t *testing.T) {
		src := bytes.NewReader(bytes.Repeat([]byte{0x42}, 1024))
		_, err := Generate(field.New(field.InsecureDemo()), big.NewInt(1), 3, src)
		require.NoError(t, err)
		assert.Less(t, src.Len(), 1024)
	})
}
