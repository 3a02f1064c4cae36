package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCanceled     = errors.New("reservation is already canceled")
	ErrCancelAfterCheckIn  = errors.New("cannot cancel a checked-in reservation")
	ErrCancelAfterCheckOut = errors.New("cannot cancel a checked-out reservation")
	ErrCheckInNotBooked    = errors.New("can only check in a BOOKED reservation")
	ErrCheckOutNotActive   = errors.New("can only check out a CHECKED_IN reservation")
)

// Reservation is one guest's claim on a room for a stay period. The room row
// itself is owned by the room registry; only its id is held here.
type Reservation struct {
	id            uuid.UUID
	propertyID    uuid.UUID
	guestID       uuid.UUID
	roomID        *uuid.UUID
	stay          StayPeriod
	status        Status
	price         *Price
	paymentStatus *string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewReservation creates a BOOKED reservation bound to an already-claimed
// room. Guest identity lives in another service and is trusted as given.
func NewReservation(propertyID, guestID uuid.UUID, roomID *uuid.UUID, stay StayPeriod, price *Price, paymentStatus *string) *Reservation {
	return &Reservation{
		id:            uuid.New(),
		propertyID:    propertyID,
		guestID:       guestID,
		roomID:        roomID,
		stay:          stay,
		status:        StatusBooked,
		price:         price,
		paymentStatus: paymentStatus,
	}
}

func ReconstructReservation(
	id, propertyID, guestID uuid.UUID,
	roomID *uuid.UUID,
	stay StayPeriod,
	status Status,
	price *Price,
	paymentStatus *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		propertyID:    propertyID,
		guestID:       guestID,
		roomID:        roomID,
		stay:          stay,
		status:        status,
		price:         price,
		paymentStatus: paymentStatus,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Cancel is legal only from BOOKED.
func (r *Reservation) Cancel() error {
	switch r.status {
	case StatusCanceled:
		return ErrAlreadyCanceled
	case StatusCheckedIn:
		return ErrCancelAfterCheckIn
	case StatusCheckedOut:
		return ErrCancelAfterCheckOut
	}
	r.status = StatusCanceled
	return nil
}

// CheckIn is legal only from BOOKED. The bound room stays OCCUPIED; it was
// claimed at booking time.
func (r *Reservation) CheckIn() error {
	if r.status != StatusBooked {
		return ErrCheckInNotBooked
	}
	r.status = StatusCheckedIn
	return nil
}

// CheckOut is legal only from CHECKED_IN.
func (r *Reservation) CheckOut() error {
	if r.status != StatusCheckedIn {
		return ErrCheckOutNotActive
	}
	r.status = StatusCheckedOut
	return nil
}

// ReleasesRoomOnExit reports whether completing this transition must free the
// bound room. Cancel and check-out free the room; check-in does not.
func (r *Reservation) ReleasesRoomOnExit() bool {
	return r.roomID != nil && (r.status == StatusCanceled || r.status == StatusCheckedOut)
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) PropertyID() uuid.UUID  { return r.propertyID }
func (r *Reservation) GuestID() uuid.UUID     { return r.guestID }
func (r *Reservation) RoomID() *uuid.UUID     { return r.roomID }
func (r *Reservation) Stay() StayPeriod       { return r.stay }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) Price() *Price          { return r.price }
func (r *Reservation) PaymentStatus() *string { return r.paymentStatus }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }
