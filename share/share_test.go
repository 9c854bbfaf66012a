package share

import (
	"math/big"
	"strings"
	"testing"

	"github.com/izouxv/goShamir/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	c := NewCodec(field.InsecureDemo())

	token, err := c.Encode(Share{Index: 3, Value: big.NewInt(0xabcd)})
	require.NoError(t, err)
	assert.Equal(t, "0003"+"000000000000abcd", token)
	assert.Len(t, token, c.TokenLen())

	t.Run("max index", func(t *testing.T) {
		token, err := c.Encode(Share{Index: MaxIndex, Value: big.NewInt(1)})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(token, "ffff"))
	})

	t.Run("production width", func(t *testing.T) {
		p := field.Default()
		token, err := NewCodec(p).Encode(Share{Index: 1, Value: new(big.Int).Sub(p.Prime, big.NewInt(1))})
		require.NoError(t, err)
		assert.Len(t, token, 4+768)
	})

	invalid := []struct {
		name  string
		share Share
	}{
		{"index zero", Share{Index: 0, Value: big.NewInt(1)}},
		{"index too large", Share{Index: MaxIndex + 1, Value: big.NewInt(1)}},
		{"nil value", Share{Index: 1}},
		{"negative value", Share{Index: 1, Value: big.NewInt(-1)}},
		{"value equals prime", Share{Index: 1, Value: field.InsecureDemo().Prime}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Encode(tt.share)
			assert.Error(t, err)
		})
	}
}

func TestDecode(t *testing.T) {
	c := NewCodec(field.InsecureDemo())

	s, err := c.Decode("0002000000000000ABCD")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Index)
	assert.Equal(t, int64(0xabcd), s.Value.Int64())

	t.Run("round trip", func(t *testing.T) {
		in := Share{Index: 513, Value: big.NewInt(1234567890123)}
		token, err := c.Encode(in)
		require.NoError(t, err)
		out, err := c.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, in.Index, out.Index)
		assert.Equal(t, 0, in.Value.Cmp(out.Value))
	})

	malformed := []struct {
		name  string
		token string
	}{
		{"not hex", "not-hex!!"},
		{"too short", "0002abcd"},
		{"empty", ""},
		{"too long", "0002000000000000abcd0"},
		{"sign inside value", "0002+00000000000abcd"},
		{"whitespace", "0002 00000000000abcd"},
		{"index zero", "0000000000000000abcd"},
		{"value not in field", "00011fffffffffffffff"},
		{"non ascii", "0002000000000000abcé"},
	}
	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decode(tt.token)
			assert.ErrorIs(t, err, ErrMalformedShare)
			assert.False(t, c.Verify(tt.token))
		})
	}
}

func TestVerify(t *testing.T) {
	c := NewCodec(field.InsecureDemo())
	assert.True(t, c.Verify("0001000000000000abcd"))
	// A well-formed substitute passes: there is no integrity tag.
	assert.True(t, c.Verify("0001000000000000abce"))

	// Token widths differ across profiles.
	assert.False(t, NewCodec(field.ProfileGet("secp256k1")).Verify("0001000000000000abcd"))
}

func TestInspect(t *testing.T) {
	c := NewCodec(field.InsecureDemo())
	info, err := c.Inspect("0007000000000000abcd")
	require.NoError(t, err)
	assert.Equal(t, &Info{Index: 7, Value: "abcd", FieldBits: 61, Profile: "insecure-demo"}, info)

	_, err = c.Inspect("zz")
	assert.ErrorIs(t, err, ErrMalformedShare)
}

func FuzzDecode(f *testing.F) {
	c := NewCodec(field.InsecureDemo())
	f.Add("0001000000000000abcd")
	f.Add("not-hex!!")
	f.Add("ffff1ffffffffffffffe")
	f.Fuzz(func(t *testing.T, token string) {
		s, err := c.Decode(token)
		if err != nil {
			assert.ErrorIs(t, err, ErrMalformedShare)
			return
		}
		again, err := c.Encode(s)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(token), again)
	})
}
