// Package share converts evaluation points (index, value) to fixed-width
// hexadecimal tokens and back.
//
// A token is 4 hex digits of index followed by ceil(bits/4) hex digits of
// value, both zero padded, where bits is the bit length of the field prime.
// Tokens carry no integrity tag: a substituted but well-formed token decodes
// without error.
package share

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/izouxv/goShamir/field"
)

const (
	// IndexWidth is the number of hex digits holding the share index.
	IndexWidth = 4
	// MaxIndex is the largest index representable in IndexWidth digits.
	MaxIndex = 1<<(4*IndexWidth) - 1
)

// ErrMalformedShare is returned for tokens that fail structural decoding.
var ErrMalformedShare = errors.New("malformed share")

// Share is one evaluation point of the secret polynomial.
type Share struct {
	Index int
	Value *big.Int
}

// Info describes a decoded token.
type Info struct {
	Index     int    `json:"index"`
	Value     string `json:"value"`
	FieldBits int    `json:"field_bits"`
	Profile   string `json:"profile"`
}

// Codec encodes and decodes tokens for one field profile.
type Codec struct {
	profile *field.Profile
}

// NewCodec returns the codec of the given profile.
func NewCodec(profile *field.Profile) *Codec {
	return &Codec{profile: profile}
}

// TokenLen is the exact length of every token of this codec.
func (c *Codec) TokenLen() int {
	return c.profile.TokenLen()
}

// Encode serializes a point. The index must lie in [1, MaxIndex] and the
// value must be a residue of the profile's field.
func (c *Codec) Encode(s Share) (string, error) {
	if s.Index < 1 || s.Index > MaxIndex {
		return "", fmt.Errorf("share index %d out of range [1, %d]", s.Index, MaxIndex)
	}
	if s.Value == nil || s.Value.Sign() < 0 || s.Value.Cmp(c.profile.Prime) >= 0 {
		return "", fmt.Errorf("share value is not an element of %s", c.profile.Name)
	}
	return fmt.Sprintf("%0*x%0*x", IndexWidth, s.Index, c.profile.HexWidth(), s.Value), nil
}

// Decode parses a token produced by Encode. Hex digits of either case are
// accepted.
func (c *Codec) Decode(token string) (Share, error) {
	if len(token) != c.TokenLen() {
		return Share{}, fmt.Errorf("%w: length %d, expected %d", ErrMalformedShare, len(token), c.TokenLen())
	}
	if i := strings.IndexFunc(token, notHex); i >= 0 {
		return Share{}, fmt.Errorf("%w: invalid hex digit at offset %d", ErrMalformedShare, i)
	}

	index, err := strconv.ParseUint(token[:IndexWidth], 16, 16)
	if err != nil {
		return Share{}, fmt.Errorf("%w: %v", ErrMalformedShare, err)
	}
	if index == 0 {
		return Share{}, fmt.Errorf("%w: index 0 is reserved", ErrMalformedShare)
	}

	value, ok := new(big.Int).SetString(token[IndexWidth:], 16)
	if !ok {
		return Share{}, fmt.Errorf("%w: invalid value", ErrMalformedShare)
	}
	if value.Cmp(c.profile.Prime) >= 0 {
		return Share{}, fmt.Errorf("%w: value exceeds the %s modulus", ErrMalformedShare, c.profile.Name)
	}

	return Share{Index: int(index), Value: value}, nil
}

// Verify reports structural validity only: length, hex alphabet, index and
// value range. It cannot detect a corrupted or substituted share.
func (c *Codec) Verify(token string) bool {
	_, err := c.Decode(token)
	return err == nil
}

// Inspect decodes a token into a printable description.
func (c *Codec) Inspect(token string) (*Info, error) {
	s, err := c.Decode(token)
	if err != nil {
		return nil, err
	}
	return &Info{
		Index:     s.Index,
		Value:     s.Value.Text(16),
		FieldBits: c.profile.BitLen,
		Profile:   c.profile.Name,
	}, nil
}

func notHex(r rune) bool {
	switch {
	case '0' <= r && r <= '9', 'a' <= r && r <= 'f', 'A' <= r && r <= 'F':
		return false
	}
	return true
}
