package bootstrap

import (
	"hotelier/internal/infra/roomclient"
	"hotelier/internal/pkg/config"
	"hotelier/internal/usecase/commands"

	"go.uber.org/fx"
)

var RoomClientModule = fx.Module("roomclient",
	fx.Provide(
		NewRoomGateway,
	),
)

func NewRoomGateway(cfg config.Config) commands.RoomGateway {
	return roomclient.New(cfg.RoomClient)
}
