package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TopicRoomStatusChanged     = "room.status_changed"
	TopicReservationCreated    = "reservation.created"
	TopicReservationCanceled   = "reservation.canceled"
	TopicReservationCheckedIn  = "reservation.checked_in"
	TopicReservationCheckedOut = "reservation.checked_out"
)

// RoomStatusChanged is published after every committed status transition,
// including claims and releases. Consumers (housekeeping boards, reporting)
// must tolerate loss; delivery is best effort.
type RoomStatusChanged struct {
	RoomID    uuid.UUID `json:"room_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

type ReservationLifecycle struct {
	ReservationID uuid.UUID  `json:"reservation_id"`
	PropertyID    uuid.UUID  `json:"property_id"`
	GuestID       uuid.UUID  `json:"guest_id"`
	RoomID        *uuid.UUID `json:"room_id,omitempty"`
	Status        string     `json:"status"`
	OccurredAt    time.Time  `json:"occurred_at"`
}
