package bootstrap

import (
	"hotelier/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// RoomModule assembles the room registry service.
var RoomModule = fx.Options(
	ConfigModule,
	DBModule,
	EventsModule,
	RedisModule,
	components.RoomPersistenceModule,
	components.RoomUseCaseModule,
	components.RoomHandlerModule,
)

// ReservationModule assembles the reservation engine. It talks to room state
// only through the room gateway, never through the registry's tables.
var ReservationModule = fx.Options(
	ConfigModule,
	DBModule,
	EventsModule,
	RoomClientModule,
	components.ReservationPersistenceModule,
	components.ReservationUseCaseModule,
	components.ReservationHandlerModule,
)
