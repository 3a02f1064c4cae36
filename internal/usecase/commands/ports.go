package commands

import (
	"context"

	"hotelier/internal/pkg/errs"

	"github.com/google/uuid"
)

// RoomGateway is the reservation engine's only path to room state. In
// production it is the HTTP room client; allocation-plus-claim is a single
// indivisible call on the registry side, never a read followed by a write
// here.
type RoomGateway interface {
	ClaimByID(ctx context.Context, roomID uuid.UUID) (*ClaimedRoom, error)
	ClaimByType(ctx context.Context, propertyID, roomTypeID uuid.UUID) (*ClaimedRoom, error)
	Release(ctx context.Context, roomID uuid.UUID) error
}

type ClaimedRoom struct {
	ID     uuid.UUID
	Number string
}

// Gateway-level sentinels. Transport failures map to
// ErrRoomServiceUnavailable and the caller fails closed.
var (
	ErrGatewayRoomUnavailable = errs.New("room does not exist or is not available")
	ErrGatewayNoRoomOfType    = errs.New("no available room for the requested type")
	ErrRoomServiceUnavailable = errs.New("room service unavailable")
)

// EventPublisher delivers best-effort domain events. Callers on non-critical
// paths log and continue on error; the claim path never depends on it.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}
