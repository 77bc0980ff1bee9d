package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/domain/timeslot"
	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/clock"
	"slotbooker/internal/pkg/config"
	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/usecase/queries"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrHostNotFound       = errs.New("host not found")
	ErrInvalidBooking     = errs.New("invalid booking request")
	ErrSlotTaken          = errs.New("slot taken")
	ErrStoreTimeout       = errs.New("store operation timed out")
	ErrStoreFailed        = errs.New("store operation failed")
	ErrBookingNotFound    = errs.New("booking not found")
	ErrAlreadyCancelled   = errs.New("booking already cancelled")
	ErrDuplicateRequest   = errs.New("idempotency key reused with different request")
	ErrRequestInProgress  = errs.New("request is still being processed")
	ErrIdempotencyFailure = errs.New("idempotency check failed")
)

const (
	idempotencyTTL             = 24 * time.Hour
	idempotencyStatusProcessed = "completed"
	idempotencyStatusPending   = "processing"
)

type CreateBookingParams struct {
	HostID          uuid.UUID
	StartTime       time.Time
	DurationMinutes int
	AttendeeName    string
	AttendeeEmail   string
	AttendeePhone   string
	AttendeeCompany string
	Guests          []string
	Title           string
	Notes           string
	Location        string
	MeetingType     string
	Timezone        string
}

type CreateBookingResult struct {
	Booking  *queries.BookingView
	Replayed bool
}

type BookingCommands interface {
	// CreateBooking runs the conflict-safe booking transaction: at most one
	// of any set of racing, overlapping requests for a host commits; the
	// rest resolve to ErrSlotTaken. An optional idempotency key makes
	// resubmission of the same request replay the original result.
	CreateBooking(ctx context.Context, params CreateBookingParams, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	hostReads      HostReads
	bookingQueries queries.BookingQueries
	notifier       Notifier
	clock          clock.Clock
	cfg            config.BookingConfig
	logger         *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	hostReads HostReads,
	bookingQueries queries.BookingQueries,
	notifier Notifier,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		hostReads:      hostReads,
		bookingQueries: bookingQueries,
		notifier:       notifier,
		clock:          clk,
		cfg:            cfg.Booking,
		logger:         logger,
	}
}

func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	params CreateBookingParams,
	idempotencyKey *uuid.UUID,
) (*CreateBookingResult, error) {
	entity, err := c.buildBooking(ctx, params)
	if err != nil {
		return nil, err
	}

	if idempotencyKey != nil {
		replayed, err := c.claimIdempotencyKey(ctx, *idempotencyKey, params)
		if err != nil {
			return nil, err
		}
		if replayed != nil {
			return &CreateBookingResult{Booking: replayed, Replayed: true}, nil
		}
	}

	view, err := c.commitBooking(ctx, entity, idempotencyKey)
	if err != nil {
		if idempotencyKey != nil {
			c.releaseIdempotencyKey(ctx, *idempotencyKey)
		}
		return nil, err
	}

	// Post-commit, outside the transaction boundary. The booking is already
	// durable; a failed confirmation must not unwind it.
	if notifyErr := c.notifier.BookingConfirmed(ctx, view); notifyErr != nil {
		c.logger.Error("booking confirmation notification failed",
			"booking_id", view.ID, "error", notifyErr.Error())
	}

	return &CreateBookingResult{Booking: view}, nil
}

func (c *bookingCommandsImpl) buildBooking(ctx context.Context, params CreateBookingParams) (*booking.Booking, error) {
	if params.DurationMinutes <= 0 {
		return nil, errs.Mark(timeslot.ErrInvalidDuration, ErrInvalidBooking)
	}

	host, err := c.hostReads.HostByID(ctx, params.HostID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHostNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailed)
	}

	attendee, err := booking.NewAttendee(params.AttendeeName, params.AttendeeEmail, params.AttendeePhone, params.AttendeeCompany)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}
	guests, err := booking.NewGuestList(params.Guests)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}
	details := booking.NewMeetingDetails(params.Title, params.Notes, params.Location, params.MeetingType)

	slot, err := timeslot.FromStart(params.StartTime, time.Duration(params.DurationMinutes)*time.Minute)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	tz := params.Timezone
	if tz == "" {
		tz = "UTC"
	}

	entity, err := booking.NewBooking(host.ID, attendee, guests, details, slot, tz)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}
	return entity, nil
}

// claimIdempotencyKey returns the original booking view when the key was
// already completed for an identical request.
func (c *bookingCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	key uuid.UUID,
	params CreateBookingParams,
) (*queries.BookingView, error) {
	requestHash := hashParams(params)

	var record *shared.IdempotencyRecord
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, key, requestHash, c.clock.Now().Add(idempotencyTTL))
		if err != nil {
			return err
		}
		if inserted {
			return nil
		}
		record, err = tx.Idempotency().Get(ctx, key)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyFailure)
	}
	if record == nil {
		// Fresh claim; proceed with the booking.
		return nil, nil
	}

	if record.RequestHash != requestHash {
		return nil, ErrDuplicateRequest
	}

	switch record.Status {
	case idempotencyStatusProcessed:
		if record.ResultBookingID == nil {
			return nil, errs.Mark(errs.New("completed key missing booking id"), ErrIdempotencyFailure)
		}
		view, err := c.bookingQueries.GetByID(ctx, *record.ResultBookingID)
		if err != nil {
			return nil, errs.Mark(err, ErrIdempotencyFailure)
		}
		return view, nil
	case idempotencyStatusPending:
		return nil, ErrRequestInProgress
	default:
		return nil, errs.Mark(errs.New("idempotency key in state "+record.Status), ErrIdempotencyFailure)
	}
}

// releaseIdempotencyKey frees the claim after a failed booking attempt.
// Best effort: when the release itself fails the key still expires with
// its TTL, so this only logs.
func (c *bookingCommandsImpl) releaseIdempotencyKey(ctx context.Context, key uuid.UUID) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, key)
	})
	if err != nil {
		c.logger.Warn("failed to release idempotency key",
			"key", key, "error", err.Error())
	}
}

func (c *bookingCommandsImpl) commitBooking(
	ctx context.Context,
	entity *booking.Booking,
	idempotencyKey *uuid.UUID,
) (*queries.BookingView, error) {
	txCtx, cancel := context.WithTimeout(ctx, c.cfg.TxTimeout)
	defer cancel()

	var bookingID uuid.UUID
	err := c.uow.WithinSerializable(txCtx, func(ctx context.Context, tx shared.Tx) error {
		conflict, err := tx.Bookings().HasConfirmedOverlap(ctx, entity.HostID(), entity.Slot())
		if err != nil {
			return err
		}
		if conflict {
			return ErrSlotTaken
		}

		bookingID, err = tx.Bookings().Create(ctx, entity)
		if err != nil {
			return err
		}

		if idempotencyKey != nil {
			return tx.Idempotency().MarkCompleted(ctx, *idempotencyKey, bookingID)
		}
		return nil
	})
	if err != nil {
		return nil, c.normalizeTxError(err)
	}

	view, err := c.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailed)
	}
	return view, nil
}

// normalizeTxError folds every store-level failure into the command
// taxonomy; no pgx error type crosses this boundary. A serialization abort
// and an exclusion-constraint hit both mean the same real-world thing as
// the explicit pre-check: somebody else got the interval first.
func (c *bookingCommandsImpl) normalizeTxError(err error) error {
	switch {
	case errs.Is(err, ErrSlotTaken):
		return ErrSlotTaken
	case infra.IsKind(err, infra.KindSerialization), infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, ErrSlotTaken)
	case infra.IsKind(err, infra.KindTimeout), errs.Is(err, context.DeadlineExceeded):
		return errs.Mark(err, ErrStoreTimeout)
	default:
		return errs.Mark(err, ErrStoreFailed)
	}
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if err := entity.Cancel(); err != nil {
			return errs.Mark(err, ErrAlreadyCancelled)
		}
		return tx.Bookings().UpdateStatus(ctx, id, entity.Status())
	})
	if err != nil {
		if errs.Is(err, ErrBookingNotFound) || errs.Is(err, ErrAlreadyCancelled) {
			return err
		}
		return errs.Mark(err, ErrStoreFailed)
	}
	return nil
}

func hashParams(params CreateBookingParams) string {
	data, _ := json.Marshal(params)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
