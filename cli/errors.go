package cli

import (
	"errors"

	"github.com/izouxv/goShamir/shamir"
)

// Exit codes for automation-friendly CLI usage.
const (
	ExitSuccess        = 0
	ExitGenericError   = 1
	ExitInvalidArgs    = 2
	ExitBadShares      = 3
	ExitSecretTooLarge = 4
)

// ErrInvalidArgs marks usage and configuration errors.
var ErrInvalidArgs = errors.New("invalid arguments")

// ExitCodeForError maps an error to its CLI exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrInvalidArgs), errors.Is(err, shamir.ErrParameter):
		return ExitInvalidArgs
	case errors.Is(err, shamir.ErrMalformedShare), errors.Is(err, shamir.ErrDuplicateIndex),
		errors.Is(err, shamir.ErrSingularDenominator):
		return ExitBadShares
	case errors.Is(err, shamir.ErrSecretTooLarge):
		return ExitSecretTooLarge
	default:
		return ExitGenericError
	}
}
