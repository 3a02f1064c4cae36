package response

import (
	"time"

	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID            uuid.UUID  `json:"id"`
	PropertyID    uuid.UUID  `json:"propertyId"`
	GuestID       uuid.UUID  `json:"guestId"`
	RoomID        *uuid.UUID `json:"roomId,omitempty"`
	CheckIn       time.Time  `json:"checkIn"`
	CheckOut      time.Time  `json:"checkOut"`
	Status        string     `json:"status"`
	Price         *float64   `json:"price,omitempty"`
	PaymentStatus *string    `json:"paymentStatus,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            v.ID,
		PropertyID:    v.PropertyID,
		GuestID:       v.GuestID,
		RoomID:        v.RoomID,
		CheckIn:       v.CheckIn,
		CheckOut:      v.CheckOut,
		Status:        v.Status,
		Price:         v.Price,
		PaymentStatus: v.PaymentStatus,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	result := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		result[i] = FromReservationView(v)
	}
	return result
}
