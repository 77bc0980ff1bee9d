package components

import (
	"slotbooker/internal/handler"
	"slotbooker/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHostHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
