package components

import (
	"hotelier/internal/pkg/clock"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"go.uber.org/fx"
)

var RoomUseCaseModule = fx.Module("usecase/room",
	fx.Provide(
		clock.NewRealClock,
		queries.NewRoomQueries,
		commands.NewRoomCommands,
	),
)

var ReservationUseCaseModule = fx.Module("usecase/reservation",
	fx.Provide(
		clock.NewRealClock,
		queries.NewReservationQueries,
		commands.NewReservationCommands,
	),
)
