package uow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/infra/repository"
	"slotbooker/internal/pkg/config"
	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	cfg  config.BookingConfig
}

func NewPostgresUoW(pool *pgxpool.Pool, cfg config.Config) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		cfg:  cfg.Booking,
	}
}

// WithinSerializable runs fn under SERIALIZABLE isolation with a bounded
// lock wait. No retry loop: when the store aborts a racing transaction the
// caller reports the slot as taken rather than silently trying again, so
// every attempt has exactly one outcome.
func (u *PostgresUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, true, fn)
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, false, fn)
}

func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, boundLockWait bool, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "error", rollbackErr.Error())
			}
		}
	}()

	if boundLockWait {
		// SET LOCAL scopes the setting to this transaction only. A blocked
		// lock acquisition then fails fast instead of queueing forever
		// behind a long-lived competitor.
		lockTimeout := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", u.cfg.LockWait.Milliseconds())
		if _, err := pgxTx.Exec(ctx, lockTimeout); err != nil {
			return infra.WrapRepoErr("failed to set lock timeout", err, infra.ClassifyPgError(err))
		}
	}

	tx := &pgTx{dbtx: pgxTx}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		// SERIALIZABLE can abort at commit time; the conflict kind must
		// survive into the caller's error mapping.
		return infra.WrapRepoErr("failed to commit transaction",
			errs.Mark(err, errTransactionCommit), infra.ClassifyPgError(err))
	}
	return nil
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	bookingRepo      shared.BookingRepository
	workingHoursRepo shared.WorkingHoursRepository
	idempotencyRepo  shared.IdempotencyRepository
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) WorkingHours() shared.WorkingHoursRepository {
	if t.workingHoursRepo == nil {
		t.workingHoursRepo = repository.NewWorkingHoursRepository(t.dbtx)
	}
	return t.workingHoursRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.dbtx)
	}
	return t.idempotencyRepo
}
