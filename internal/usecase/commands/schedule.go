package commands

import (
	"context"

	"slotbooker/internal/domain/schedule"
	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidWorkingHours = errs.New("invalid working hours")

type WorkingHoursInput struct {
	DayOfWeek int
	StartTime string
	EndTime   string
	Timezone  string
}

type ScheduleCommands interface {
	// ReplaceWorkingHours swaps the host's weekly rule set atomically. The
	// whole set is validated up front; a single bad rule rejects the request
	// and leaves the stored configuration untouched.
	ReplaceWorkingHours(ctx context.Context, hostID uuid.UUID, inputs []WorkingHoursInput) error
}

type scheduleCommandsImpl struct {
	uow       shared.UnitOfWork
	hostReads HostReads
}

func NewScheduleCommands(uow shared.UnitOfWork, hostReads HostReads) ScheduleCommands {
	return &scheduleCommandsImpl{uow: uow, hostReads: hostReads}
}

func (c *scheduleCommandsImpl) ReplaceWorkingHours(
	ctx context.Context,
	hostID uuid.UUID,
	inputs []WorkingHoursInput,
) error {
	if _, err := c.hostReads.HostByID(ctx, hostID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrHostNotFound
		}
		return errs.Mark(err, ErrStoreFailed)
	}

	rules := make([]schedule.Rule, 0, len(inputs))
	for _, in := range inputs {
		rule, err := schedule.NewRule(in.DayOfWeek, in.StartTime, in.EndTime, in.Timezone)
		if err != nil {
			return errs.Mark(err, ErrInvalidWorkingHours)
		}
		rules = append(rules, rule)
	}
	ruleSet, err := schedule.NewRuleSet(rules)
	if err != nil {
		return errs.Mark(err, ErrInvalidWorkingHours)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.WorkingHours().ReplaceForHost(ctx, hostID, ruleSet.Rules())
	})
	if err != nil {
		return errs.Mark(err, ErrStoreFailed)
	}
	return nil
}
