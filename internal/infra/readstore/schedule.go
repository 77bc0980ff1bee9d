package readstore

import (
	"context"

	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
)

type ScheduleReadStore struct {
	db db.DBTX
}

func NewScheduleReadStore(dbtx db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: dbtx}
}

const rulesForHostSQL = `
SELECT day_of_week, start_time, end_time, timezone
FROM working_hours
WHERE host_id = $1
ORDER BY day_of_week`

func (r *ScheduleReadStore) RulesForHost(ctx context.Context, hostID uuid.UUID) ([]queries.WorkingHoursView, error) {
	rows, err := r.db.Query(ctx, rulesForHostSQL, hostID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load working hours", err)
	}
	defer rows.Close()

	var views []queries.WorkingHoursView
	for rows.Next() {
		var view queries.WorkingHoursView
		if err := rows.Scan(&view.DayOfWeek, &view.StartTime, &view.EndTime, &view.Timezone); err != nil {
			return nil, infra.WrapRepoErr("failed to scan working hours row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate working hours rows", err)
	}
	return views, nil
}
