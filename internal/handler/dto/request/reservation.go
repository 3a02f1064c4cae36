package request

import (
	"time"

	"hotelier/internal/domain/reservation"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	PropertyID    uuid.UUID  `json:"property_id" binding:"required"`
	GuestID       uuid.UUID  `json:"guest_id" binding:"required"`
	CheckIn       time.Time  `json:"check_in" binding:"required"`
	CheckOut      time.Time  `json:"check_out" binding:"required"`
	Price         *float64   `json:"price,omitempty"`
	PaymentStatus *string    `json:"payment_status,omitempty"`
	RoomID        *uuid.UUID `json:"room_id,omitempty"`
	RoomTypeID    *uuid.UUID `json:"room_type_id,omitempty"`
}

func (r CreateReservationRequest) ToCommand() commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		PropertyID:    r.PropertyID,
		GuestID:       r.GuestID,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		Price:         r.Price,
		PaymentStatus: r.PaymentStatus,
		RoomID:        r.RoomID,
		RoomTypeID:    r.RoomTypeID,
	}
}

// UpdateReservationRequest is the administrative PATCH body. Absent fields are
// left untouched.
type UpdateReservationRequest struct {
	Status        *string    `json:"status,omitempty"`
	RoomID        *uuid.UUID `json:"room_id,omitempty"`
	Price         *float64   `json:"price,omitempty"`
	PaymentStatus *string    `json:"payment_status,omitempty"`
}

func (r UpdateReservationRequest) ToPatch() shared.ReservationPatch {
	patch := shared.ReservationPatch{
		RoomID:        r.RoomID,
		Price:         r.Price,
		PaymentStatus: r.PaymentStatus,
	}
	if r.Status != nil {
		status := reservation.Status(*r.Status)
		patch.Status = &status
	}
	return patch
}
