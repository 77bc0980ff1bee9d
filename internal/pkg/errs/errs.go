package errs

import (
	"fmt"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark associates err with a sentinel while the original cause stays
// attached for logging. The sentinel is wrapped into the chain itself, not
// only recorded as a marker, so standard library errors.Is matches it too.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(fmt.Errorf("%w: %w", markErr, err), markErr)
}

func Is(err, target error) bool {
	return cr.Is(err, target)
}

