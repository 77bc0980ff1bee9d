package repository

import (
	"context"
	"time"

	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/pkg/pgconv"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(dbtx db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: dbtx}
}

const tryInsertIdempotencySQL = `
INSERT INTO idempotency_keys (key, status, request_hash, expires_at)
VALUES ($1, 'processing', $2, $3)
ON CONFLICT (key) DO UPDATE
SET status = 'processing',
    request_hash = EXCLUDED.request_hash,
    expires_at = EXCLUDED.expires_at,
    result_booking_id = NULL
WHERE idempotency_keys.expires_at <= now()`

// TryInsert claims the key. The upsert makes concurrent claims race-free
// and reclaims expired keys in the same statement; the affected-row count
// tells who won.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, tryInsertIdempotencySQL, key, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim idempotency key", err, infra.ClassifyPgError(err))
	}
	return tag.RowsAffected() == 1, nil
}

const getIdempotencySQL = `
SELECT key, status, request_hash, result_booking_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND expires_at > now()`

func (r *IdempotencyRepository) Get(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	var (
		record    shared.IdempotencyRecord
		resultID  pgtype.UUID
		expiresAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, getIdempotencySQL, key).Scan(
		&record.Key, &record.Status, &record.RequestHash, &resultID, &expiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load idempotency key", err, infra.ClassifyPgError(err))
	}
	record.ResultBookingID = pgconv.UUIDPtrFromPgtype(resultID)
	record.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)
	return &record, nil
}

const markCompletedIdempotencySQL = `
UPDATE idempotency_keys
SET status = 'completed', result_booking_id = $2
WHERE key = $1`

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, key uuid.UUID, bookingID uuid.UUID) error {
	_, err := r.db.Exec(ctx, markCompletedIdempotencySQL, key, bookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err, infra.ClassifyPgError(err))
	}
	return nil
}

const releaseIdempotencySQL = `
DELETE FROM idempotency_keys
WHERE key = $1 AND status = 'processing'`

// Release frees a processing claim. The status guard keeps a concurrent
// completion from being deleted out from under its replay window.
func (r *IdempotencyRepository) Release(ctx context.Context, key uuid.UUID) error {
	_, err := r.db.Exec(ctx, releaseIdempotencySQL, key)
	if err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err, infra.ClassifyPgError(err))
	}
	return nil
}
