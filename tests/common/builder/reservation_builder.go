//go:build unit

package builder

import (
	"time"

	domres "hotelier/internal/domain/reservation"
	reqdto "hotelier/internal/handler/dto/request"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	GuestID       uuid.UUID
	RoomID        *uuid.UUID
	RoomTypeID    *uuid.UUID
	CheckIn       time.Time
	CheckOut      time.Time
	Status        domres.Status
	Price         *float64
	PaymentStatus *string
	Now           time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	roomID := uuid.New()
	price := 180.0
	payment := "PENDING"
	return &ReservationBuilder{
		ID:            uuid.New(),
		PropertyID:    uuid.New(),
		GuestID:       uuid.New(),
		RoomID:        &roomID,
		CheckIn:       now.AddDate(0, 0, 7),
		CheckOut:      now.AddDate(0, 0, 10),
		Status:        domres.StatusBooked,
		Price:         &price,
		PaymentStatus: &payment,
		Now:           now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	stay, err := domres.NewStayPeriod(b.CheckIn, b.CheckOut, b.Now)
	if err != nil {
		return nil, err
	}
	price, err := domres.NewPricePtr(b.Price)
	if err != nil {
		return nil, err
	}
	return domres.NewReservation(b.PropertyID, b.GuestID, b.RoomID, stay, price, b.PaymentStatus), nil
}

// BuildReconstructed bypasses booking-time rules and honors Status and ID.
func (b *ReservationBuilder) BuildReconstructed() *domres.Reservation {
	stay := domres.ReconstructStayPeriod(b.CheckIn, b.CheckOut)
	price, _ := domres.NewPricePtr(b.Price)
	return domres.ReconstructReservation(
		b.ID, b.PropertyID, b.GuestID, b.RoomID, stay, b.Status,
		price, b.PaymentStatus, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:            b.ID,
		PropertyID:    b.PropertyID,
		GuestID:       b.GuestID,
		RoomID:        b.RoomID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Status:        b.Status.String(),
		Price:         b.Price,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateCommand() commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		PropertyID:    b.PropertyID,
		GuestID:       b.GuestID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Price:         b.Price,
		PaymentStatus: b.PaymentStatus,
		RoomID:        b.RoomID,
		RoomTypeID:    b.RoomTypeID,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		PropertyID:    b.PropertyID,
		GuestID:       b.GuestID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Price:         b.Price,
		PaymentStatus: b.PaymentStatus,
		RoomID:        b.RoomID,
		RoomTypeID:    b.RoomTypeID,
	}
}
