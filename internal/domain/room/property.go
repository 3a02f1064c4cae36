package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyPropertyName = errors.New("property name cannot be empty")
	ErrEmptyTypeName     = errors.New("room type name cannot be empty")
	ErrNegativeRate      = errors.New("rate cannot be negative")
)

type Property struct {
	id        uuid.UUID
	name      string
	location  *string
	createdAt time.Time
	updatedAt time.Time
}

func NewProperty(name string, location *string) (*Property, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyPropertyName
	}
	return &Property{
		id:       uuid.New(),
		name:     name,
		location: location,
	}, nil
}

func ReconstructProperty(id uuid.UUID, name string, location *string, createdAt, updatedAt time.Time) *Property {
	return &Property{id: id, name: name, location: location, createdAt: createdAt, updatedAt: updatedAt}
}

func (p *Property) ID() uuid.UUID        { return p.id }
func (p *Property) Name() string         { return p.name }
func (p *Property) Location() *string    { return p.location }
func (p *Property) CreatedAt() time.Time { return p.createdAt }
func (p *Property) UpdatedAt() time.Time { return p.updatedAt }

// RoomType is the pricing/category grouping rooms are allocated by.
type RoomType struct {
	id         uuid.UUID
	propertyID uuid.UUID
	name       string
	baseRate   float64
	createdAt  time.Time
	updatedAt  time.Time
}

func NewRoomType(propertyID uuid.UUID, name string, baseRate float64) (*RoomType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTypeName
	}
	if baseRate < 0 {
		return nil, ErrNegativeRate
	}
	return &RoomType{
		id:         uuid.New(),
		propertyID: propertyID,
		name:       name,
		baseRate:   baseRate,
	}, nil
}

func ReconstructRoomType(id, propertyID uuid.UUID, name string, baseRate float64, createdAt, updatedAt time.Time) *RoomType {
	return &RoomType{id: id, propertyID: propertyID, name: name, baseRate: baseRate, createdAt: createdAt, updatedAt: updatedAt}
}

func (t *RoomType) ID() uuid.UUID         { return t.id }
func (t *RoomType) PropertyID() uuid.UUID { return t.propertyID }
func (t *RoomType) Name() string          { return t.name }
func (t *RoomType) BaseRate() float64     { return t.baseRate }
func (t *RoomType) CreatedAt() time.Time  { return t.createdAt }
func (t *RoomType) UpdatedAt() time.Time  { return t.updatedAt }

// RatePlan is a dated pricing override for a room type.
type RatePlan struct {
	id         uuid.UUID
	propertyID uuid.UUID
	roomTypeID uuid.UUID
	name       string
	dailyRate  float64
	startDate  *time.Time
	endDate    *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewRatePlan(propertyID, roomTypeID uuid.UUID, name string, dailyRate float64, startDate, endDate *time.Time) (*RatePlan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTypeName
	}
	if dailyRate < 0 {
		return nil, ErrNegativeRate
	}
	return &RatePlan{
		id:         uuid.New(),
		propertyID: propertyID,
		roomTypeID: roomTypeID,
		name:       name,
		dailyRate:  dailyRate,
		startDate:  startDate,
		endDate:    endDate,
	}, nil
}

func ReconstructRatePlan(id, propertyID, roomTypeID uuid.UUID, name string, dailyRate float64, startDate, endDate *time.Time, createdAt, updatedAt time.Time) *RatePlan {
	return &RatePlan{
		id: id, propertyID: propertyID, roomTypeID: roomTypeID,
		name: name, dailyRate: dailyRate, startDate: startDate, endDate: endDate,
		createdAt: createdAt, updatedAt: updatedAt,
	}
}

func (r *RatePlan) ID() uuid.UUID         { return r.id }
func (r *RatePlan) PropertyID() uuid.UUID { return r.propertyID }
func (r *RatePlan) RoomTypeID() uuid.UUID { return r.roomTypeID }
func (r *RatePlan) Name() string          { return r.name }
func (r *RatePlan) DailyRate() float64    { return r.dailyRate }
func (r *RatePlan) StartDate() *time.Time { return r.startDate }
func (r *RatePlan) EndDate() *time.Time   { return r.endDate }
func (r *RatePlan) CreatedAt() time.Time  { return r.createdAt }
func (r *RatePlan) UpdatedAt() time.Time  { return r.updatedAt }
