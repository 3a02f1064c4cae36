//go:build unit

package builder

import (
	"time"

	domroom "hotelier/internal/domain/room"
	reqdto "hotelier/internal/handler/dto/request"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	Number     string
	TypeID     uuid.UUID
	TypeName   string
	Status     domroom.Status
	Floor      *string
	Amenities  []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	floor := "2"
	return &RoomBuilder{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		Number:     "201",
		TypeID:     uuid.New(),
		TypeName:   "Double",
		Status:     domroom.StatusAvailable,
		Floor:      &floor,
		Amenities:  []string{"wifi", "tv"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	return domroom.NewRoom(b.PropertyID, b.Number, b.TypeID, b.Floor, b.Amenities)
}

// BuildReconstructed bypasses creation rules and honors Status and ID, the way
// a repository read would.
func (b *RoomBuilder) BuildReconstructed() *domroom.Room {
	return domroom.ReconstructRoom(
		b.ID, b.PropertyID, b.Number, b.TypeID, b.Status,
		b.Floor, b.Amenities, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		Number:     b.Number,
		TypeID:     b.TypeID,
		TypeName:   b.TypeName,
		Status:     b.Status.String(),
		Floor:      b.Floor,
		Amenities:  b.Amenities,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		PropertyID: b.PropertyID,
		Number:     b.Number,
		TypeID:     b.TypeID,
		Floor:      b.Floor,
		Amenities:  b.Amenities,
	}
}
