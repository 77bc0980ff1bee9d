package components

import (
	"slotbooker/internal/infra/cache"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/infra/notify"
	"slotbooker/internal/infra/readstore"
	"slotbooker/internal/infra/uow"
	"slotbooker/internal/usecase/commands"
	"slotbooker/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Read-side stores
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.BookingIntervalReadStore)),
		),
		readstore.NewHostReadStore,
		fx.Annotate(
			readstore.NewHostReadStore,
			fx.As(new(queries.HostReadStore)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
		// Host lookups for the write side
		fx.Annotate(
			readstore.NewHostReads,
			fx.As(new(commands.HostReads)),
		),
		// Slot cache
		fx.Annotate(
			cache.NewSlotCache,
			fx.As(new(queries.SlotCache)),
		),
		// Confirmation mail
		fx.Annotate(
			notify.NewMailer,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
