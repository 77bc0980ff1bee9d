package infra

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes this service reacts to.
const (
	pgCodeSerializationFailure = "40001"
	pgCodeDeadlockDetected     = "40P01"
	pgCodeUniqueViolation      = "23505"
	pgCodeExclusionViolation   = "23P01"
	pgCodeLockNotAvailable     = "55P03"
	pgCodeQueryCanceled        = "57014"
)

// ClassifyPgError maps a low-level pgx error onto a repository error kind.
// Serialization aborts and deadlocks mean the transaction lost a race;
// constraint hits mean the row itself conflicts; lock and cancel codes mean
// the attempt ran out of time.
func ClassifyPgError(err error) RepositoryErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure
	}

	switch pgErr.Code {
	case pgCodeSerializationFailure, pgCodeDeadlockDetected:
		return KindSerialization
	case pgCodeUniqueViolation, pgCodeExclusionViolation:
		return KindConflict
	case pgCodeLockNotAvailable, pgCodeQueryCanceled:
		return KindTimeout
	default:
		return KindDBFailure
	}
}
