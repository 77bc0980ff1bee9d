package queries

import (
	"context"

	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByHost(ctx context.Context, hostID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.store.FindByHostID(ctx, hostID)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return items, nil
}
