package shamir

import (
	"errors"

	"github.com/izouxv/goShamir/field"
	"github.com/izouxv/goShamir/share"
)

// Errors returned by the engine. They are wrapped with context; match them
// with errors.Is.
var (
	// ErrParameter reports an invalid (n, k) pair, an empty secret or too
	// few shares for reconstruction.
	ErrParameter = errors.New("invalid parameters")
	// ErrSecretTooLarge reports a secret that does not fit in the field.
	ErrSecretTooLarge = errors.New("secret too large for field profile")
	// ErrDuplicateIndex reports two shares with the same index.
	ErrDuplicateIndex = errors.New("duplicate share index")

	ErrMalformedShare      = share.ErrMalformedShare
	ErrSingularDenominator = field.ErrSingular
)
