package repository

import (
	"context"

	"slotbooker/internal/domain/schedule"
	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"

	"github.com/google/uuid"
)

type WorkingHoursRepository struct {
	db db.DBTX
}

func NewWorkingHoursRepository(dbtx db.DBTX) *WorkingHoursRepository {
	return &WorkingHoursRepository{db: dbtx}
}

const deleteWorkingHoursSQL = `DELETE FROM working_hours WHERE host_id = $1`

const insertWorkingHoursSQL = `
INSERT INTO working_hours (host_id, day_of_week, start_time, end_time, timezone)
VALUES ($1, $2, $3, $4, $5)`

// ReplaceForHost swaps the weekly rule set in one shot. Callers run this
// inside a transaction, so readers never observe a half-replaced week.
func (r *WorkingHoursRepository) ReplaceForHost(ctx context.Context, hostID uuid.UUID, rules []schedule.Rule) error {
	if _, err := r.db.Exec(ctx, deleteWorkingHoursSQL, hostID); err != nil {
		return infra.WrapRepoErr("failed to clear working hours", err, infra.ClassifyPgError(err))
	}

	for _, rule := range rules {
		_, err := r.db.Exec(ctx, insertWorkingHoursSQL,
			hostID,
			int(rule.Weekday()),
			rule.Start().String(),
			rule.End().String(),
			rule.TimezoneName(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert working hours rule", err, infra.ClassifyPgError(err))
		}
	}
	return nil
}
