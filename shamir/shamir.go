// Package shamir splits a secret byte string into n share tokens such that
// any k of them reconstruct it exactly (Shamir's threshold scheme over a
// prime field).
//
// The secret is framed as uvarint(len) || secret and read as a big-endian
// integer, which becomes the constant term of a random polynomial of degree
// k-1. Shares are the polynomial evaluated at x = 1..n, encoded by package
// share. Reconstruction interpolates at x = 0.
//
// The threshold is not stored in the tokens. Reconstructing from fewer than k
// shares is not detected: it yields a deterministic but wrong byte string.
package shamir

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/google/uuid"
	"github.com/izouxv/goShamir/field"
	"github.com/izouxv/goShamir/poly"
	"github.com/izouxv/goShamir/share"
	"github.com/izouxv/goShamir/utils"
	"github.com/rs/zerolog"
)

// DefaultLogger is used by engines created without WithLogger. It only lets
// warnings through, so library use stays quiet apart from insecure profile
// notices.
var DefaultLogger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)

// Engine splits and reconstructs secrets on one field profile. It keeps no
// state between calls and is safe for concurrent use as long as its random
// source is.
type Engine struct {
	profile *field.Profile
	field   *field.Field
	codec   *share.Codec
	rand    io.Reader
	log     zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand replaces crypto/rand.Reader as the coefficient source. The reader
// must be a CSPRNG; this exists for failure injection.
func WithRand(r io.Reader) Option {
	return func(e *Engine) {
		e.rand = r
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// New returns an engine for profile. The modulus must be a prime larger than
// share.MaxIndex, so that no share index is congruent to 0 or to another
// index.
func New(profile *field.Profile, opts ...Option) (*Engine, error) {
	if profile == nil {
		return nil, fmt.Errorf("%w: missing field profile", ErrParameter)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParameter, err)
	}
	if profile.Prime.Cmp(big.NewInt(share.MaxIndex)) <= 0 {
		return nil, fmt.Errorf("%w: profile %q: modulus must exceed %d", ErrParameter, profile.Name, share.MaxIndex)
	}
	e := &Engine{
		profile: profile,
		field:   field.New(profile),
		codec:   share.NewCodec(profile),
		rand:    rand.Reader,
		log:     DefaultLogger,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With().Str("profile", profile.Name).Logger()
	return e, nil
}

// Profile returns the engine's field profile.
func (e *Engine) Profile() *field.Profile {
	return e.profile
}

// Split divides secret into n tokens, any k of which reconstruct it.
// It requires n >= 2, 2 <= k <= n, n <= share.MaxIndex and a non-empty secret
// of at most Profile().MaxSecretLen() bytes.
func (e *Engine) Split(secret []byte, n, k int) ([]string, error) {
	if n < 2 || n > share.MaxIndex {
		return nil, fmt.Errorf("%w: n must be in [2, %d], got %d", ErrParameter, share.MaxIndex, n)
	}
	if k < 2 || k > n {
		return nil, fmt.Errorf("%w: k must be in [2, n], got k=%d n=%d", ErrParameter, k, n)
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: secret cannot be empty", ErrParameter)
	}

	s := new(big.Int).SetBytes(utils.Frame(secret))
	if s.Cmp(e.profile.Prime) >= 0 {
		return nil, fmt.Errorf("%w: %d bytes given, %s holds at most %d",
			ErrSecretTooLarge, len(secret), e.profile.Name, e.profile.MaxSecretLen())
	}
	e.warnInsecure()

	p, err := poly.Generate(e.field, s, k, e.rand)
	if err != nil {
		return nil, fmt.Errorf("failed to build polynomial: %w", err)
	}

	batch := uuid.New().String()
	tokens := make([]string, n)
	for i := 1; i <= n; i++ {
		token, err := e.codec.Encode(share.Share{Index: i, Value: p.Evaluate(big.NewInt(int64(i)))})
		if err != nil {
			return nil, err
		}
		tokens[i-1] = token
		if ev := e.log.Debug(); ev.Enabled() {
			ev.Str("batch", batch).Int("index", i).Str("fingerprint", utils.Fingerprint([]byte(token))).Msg("share issued")
		}
	}
	e.log.Debug().Str("batch", batch).Int("n", n).Int("k", k).Msg("secret split")

	return tokens, nil
}

// Reconstruct recovers the secret from at least two tokens. Surrounding
// whitespace of each token is ignored.
//
// With fewer than k shares the interpolation still succeeds and returns some
// byte string that is generally not the secret; the tokens do not carry k, so
// this cannot be reported.
func (e *Engine) Reconstruct(tokens []string) ([]byte, error) {
	if len(tokens) < 2 {
		return nil, fmt.Errorf("%w: at least 2 shares are required, got %d", ErrParameter, len(tokens))
	}
	e.warnInsecure()

	points := make([]share.Share, len(tokens))
	seen := make(map[int]int, len(tokens))
	for i, token := range tokens {
		token = strings.TrimSpace(token)
		s, err := e.codec.Decode(token)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", i, err)
		}
		if prev, ok := seen[s.Index]; ok {
			return nil, fmt.Errorf("%w: shares %d and %d both have index %d", ErrDuplicateIndex, prev, i, s.Index)
		}
		seen[s.Index] = i
		points[i] = s
		if ev := e.log.Debug(); ev.Enabled() {
			ev.Int("index", s.Index).Str("fingerprint", utils.Fingerprint([]byte(token))).Msg("share accepted")
		}
	}

	v, err := interpolateAtZero(e.field, points)
	if err != nil {
		return nil, err
	}

	// Fixed-width big-endian, then drop the zero padding. The frame's length
	// prefix never starts with a zero byte, so nothing of the secret is lost.
	padded := math.PaddedBigBytes(v, e.profile.ByteLen())
	trimmed := bytes.TrimLeft(padded, "\x00")

	secret, err := utils.Unframe(trimmed)
	if err != nil {
		e.log.Debug().Int("shares", len(points)).Err(err).
			Msg("interpolated value is not a framed secret; too few or foreign shares")
		return append([]byte{}, trimmed...), nil
	}
	e.log.Debug().Int("shares", len(points)).Msg("secret reconstructed")
	return secret, nil
}

// VerifyShareFormat reports whether token is structurally valid for this
// engine's profile. It cannot detect corrupted or substituted shares.
func (e *Engine) VerifyShareFormat(token string) bool {
	return e.codec.Verify(strings.TrimSpace(token))
}

// Inspect decodes a token for display.
func (e *Engine) Inspect(token string) (*share.Info, error) {
	return e.codec.Inspect(strings.TrimSpace(token))
}

func (e *Engine) warnInsecure() {
	if e.profile.Insecure {
		e.log.Warn().Msg("insecure demonstration profile in use: shares offer no real confidentiality")
	}
}

// Split divides secret into n tokens on profile; see Engine.Split.
func Split(secret []byte, n, k int, profile *field.Profile) ([]string, error) {
	e, err := New(profile)
	if err != nil {
		return nil, err
	}
	return e.Split(secret, n, k)
}

// Reconstruct recovers a secret on profile; see Engine.Reconstruct.
func Reconstruct(tokens []string, profile *field.Profile) ([]byte, error) {
	e, err := New(profile)
	if err != nil {
		return nil, err
	}
	return e.Reconstruct(tokens)
}

// VerifyShareFormat checks the structure of a token for profile.
func VerifyShareFormat(token string, profile *field.Profile) bool {
	e, err := New(profile)
	if err != nil {
		return false
	}
	return e.VerifyShareFormat(token)
}

// SplitString splits the UTF-8 bytes of s.
func SplitString(s string, n, k int, profile *field.Profile) ([]string, error) {
	return Split([]byte(s), n, k, profile)
}

// ReconstructString reconstructs a secret that was split with SplitString.
func ReconstructString(tokens []string, profile *field.Profile) (string, error) {
	b, err := Reconstruct(tokens, profile)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("reconstructed secret is not valid UTF-8")
	}
	return string(b), nil
}
