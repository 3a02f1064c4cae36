package queries

import (
	"time"

	"github.com/google/uuid"
)

type PropertyView struct {
	ID        uuid.UUID
	Name      string
	Location  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RoomTypeView struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	Name       string
	BaseRate   float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type RoomView struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	Number     string
	TypeID     uuid.UUID
	TypeName   string
	Status     string
	Floor      *string
	Amenities  []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type RatePlanView struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	RoomTypeID uuid.UUID
	Name       string
	DailyRate  float64
	StartDate  *time.Time
	EndDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type StatusLogView struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	OldStatus string
	NewStatus string
	ChangedAt time.Time
	ChangedBy string
}

type ReservationView struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	GuestID       uuid.UUID
	RoomID        *uuid.UUID
	CheckIn       time.Time
	CheckOut      time.Time
	Status        string
	Price         *float64
	PaymentStatus *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ReservationFilter narrows ListReservations. Date bounds are inclusive:
// check_in >= Start and check_out <= End when both are given.
type ReservationFilter struct {
	PropertyID *uuid.UUID
	GuestID    *uuid.UUID
	Start      *time.Time
	End        *time.Time
}
