package infra

import (
	"errors"

	"slotbooker/internal/pkg/errs"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound      RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure     RepositoryErrorKind = "DB_FAILURE"
	KindConflict      RepositoryErrorKind = "CONFLICT"
	KindSerialization RepositoryErrorKind = "SERIALIZATION"
	KindTimeout       RepositoryErrorKind = "TIMEOUT"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func NewRepositoryError(kind RepositoryErrorKind, msg string, err error) error {
	return RepositoryError{Kind: kind, msg: msg, err: err}
}

// WrapRepoErr wraps a low-level store error with a classification kind;
// KindDBFailure when no kind is given. Already-classified errors pass
// through untouched so the first classification wins.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	var existing RepositoryError
	if errors.As(err, &existing) {
		return err
	}

	kind := KindDBFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
