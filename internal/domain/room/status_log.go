package room

import (
	"time"

	"github.com/google/uuid"
)

// StatusLog is one append-only audit row recording a status transition.
// It is written as a side effect of every transition and never read back
// for correctness decisions.
type StatusLog struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	OldStatus Status
	NewStatus Status
	ChangedAt time.Time
	ChangedBy string
}

func NewStatusLog(roomID uuid.UUID, oldStatus, newStatus Status, changedAt time.Time, changedBy string) StatusLog {
	if changedBy == "" {
		changedBy = "system"
	}
	return StatusLog{
		ID:        uuid.New(),
		RoomID:    roomID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ChangedAt: changedAt,
		ChangedBy: changedBy,
	}
}
