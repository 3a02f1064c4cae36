package components

import (
	"hotelier/internal/handler"
	"hotelier/internal/handler/api"
	"hotelier/internal/handler/middleware"
	"hotelier/internal/pkg/config"

	"go.uber.org/fx"
)

var RoomHandlerModule = fx.Module("handler/room",
	fx.Provide(
		api.NewRoomHandler,
		NewActorMiddleware,
	),
	fx.Invoke(handler.NewRoomRouter),
)

var ReservationHandlerModule = fx.Module("handler/reservation",
	fx.Provide(
		api.NewReservationHandler,
		NewActorMiddleware,
	),
	fx.Invoke(handler.NewReservationRouter),
)

func NewActorMiddleware(cfg config.Config) *middleware.ActorMiddleware {
	return middleware.NewActorMiddleware(cfg.JWT)
}
