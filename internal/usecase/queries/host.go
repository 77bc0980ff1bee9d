package queries

import (
	"context"

	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/errs"

	"github.com/google/uuid"
)

type HostQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*HostView, error)
	List(ctx context.Context) ([]*HostView, error)
	WorkingHours(ctx context.Context, hostID uuid.UUID) ([]WorkingHoursView, error)
}

type hostQueriesImpl struct {
	hosts HostReadStore
	rules ScheduleReadStore
}

func NewHostQueries(hosts HostReadStore, rules ScheduleReadStore) HostQueries {
	return &hostQueriesImpl{hosts: hosts, rules: rules}
}

func (q *hostQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HostView, error) {
	host, err := q.hosts.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHostNotFound
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return host, nil
}

func (q *hostQueriesImpl) List(ctx context.Context) ([]*HostView, error) {
	hosts, err := q.hosts.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return hosts, nil
}

func (q *hostQueriesImpl) WorkingHours(ctx context.Context, hostID uuid.UUID) ([]WorkingHoursView, error) {
	if _, err := q.GetByID(ctx, hostID); err != nil {
		return nil, err
	}
	rows, err := q.rules.RulesForHost(ctx, hostID)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return rows, nil
}
