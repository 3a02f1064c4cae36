package reservation

import (
	"errors"
	"time"
)

var (
	ErrStayOrder     = errors.New("check-in date must be before check-out date")
	ErrStayInPast    = errors.New("cannot create reservation in the past")
	ErrNegativePrice = errors.New("price cannot be negative")
)

// StayPeriod is the half-open [check-in, check-out) date range of one stay.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayPeriod validates the booking window against the supplied wall-clock
// now. Equal timestamps fail the ordering rule, not the past rule.
func NewStayPeriod(checkIn, checkOut, now time.Time) (StayPeriod, error) {
	if !checkIn.Before(checkOut) {
		return StayPeriod{}, ErrStayOrder
	}
	if checkIn.Before(now) || checkOut.Before(now) {
		return StayPeriod{}, ErrStayInPast
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

// ReconstructStayPeriod rebuilds a period from storage without re-running the
// creation-time rules; a persisted stay legitimately drifts into the past.
func ReconstructStayPeriod(checkIn, checkOut time.Time) StayPeriod {
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}
}

func (s StayPeriod) CheckIn() time.Time {
	return s.checkIn
}

func (s StayPeriod) CheckOut() time.Time {
	return s.checkOut
}

func (s StayPeriod) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Price is an optional non-negative amount in the property's currency.
type Price struct {
	amount float64
}

func NewPrice(amount float64) (Price, error) {
	if amount < 0 {
		return Price{}, ErrNegativePrice
	}
	return Price{amount: amount}, nil
}

// NewPricePtr validates an optional amount, mapping nil to nil.
func NewPricePtr(amount *float64) (*Price, error) {
	if amount == nil {
		return nil, nil
	}
	p, err := NewPrice(*amount)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (p Price) Amount() float64 {
	return p.amount
}

func (p *Price) AmountPtr() *float64 {
	if p == nil {
		return nil
	}
	a := p.amount
	return &a
}
