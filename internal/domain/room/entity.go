package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber = errors.New("room number cannot be empty")
	ErrSameStatus      = errors.New("room is already in the requested status")
)

type Room struct {
	id         uuid.UUID
	propertyID uuid.UUID
	number     string
	typeID     uuid.UUID
	status     Status
	floor      *string
	amenities  []string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewRoom builds a freshly registered room. New rooms always start AVAILABLE;
// status changes afterwards go through ChangeStatus only.
func NewRoom(propertyID uuid.UUID, number string, typeID uuid.UUID, floor *string, amenities []string) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}

	return &Room{
		id:         uuid.New(),
		propertyID: propertyID,
		number:     number,
		typeID:     typeID,
		status:     StatusAvailable,
		floor:      floor,
		amenities:  amenities,
	}, nil
}

func ReconstructRoom(
	id, propertyID uuid.UUID,
	number string,
	typeID uuid.UUID,
	status Status,
	floor *string,
	amenities []string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:         id,
		propertyID: propertyID,
		number:     number,
		typeID:     typeID,
		status:     status,
		floor:      floor,
		amenities:  amenities,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ChangeStatus applies the permissive transition rule: the target must be one
// of the four known statuses and must differ from the current one. Identity
// transitions are rejected, not treated as idempotent no-ops.
func (r *Room) ChangeStatus(next Status) error {
	if !next.IsValid() {
		return ErrUnknownStatus
	}
	if next == r.status {
		return ErrSameStatus
	}
	r.status = next
	return nil
}

func (r *Room) IsAvailable() bool {
	return r.status == StatusAvailable
}

func (r *Room) ID() uuid.UUID         { return r.id }
func (r *Room) PropertyID() uuid.UUID { return r.propertyID }
func (r *Room) Number() string        { return r.number }
func (r *Room) TypeID() uuid.UUID     { return r.typeID }
func (r *Room) Status() Status        { return r.status }
func (r *Room) Floor() *string        { return r.floor }
func (r *Room) Amenities() []string   { return r.amenities }
func (r *Room) CreatedAt() time.Time  { return r.createdAt }
func (r *Room) UpdatedAt() time.Time  { return r.updatedAt }
