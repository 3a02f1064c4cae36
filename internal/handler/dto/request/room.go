package request

import (
	"strings"

	"hotelier/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	Name     string  `json:"name" binding:"required"`
	Location *string `json:"location,omitempty"`
}

func (r CreatePropertyRequest) ToCommand() commands.CreatePropertyRequest {
	return commands.CreatePropertyRequest{
		Name:     strings.TrimSpace(r.Name),
		Location: r.Location,
	}
}

type CreateRoomTypeRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	BaseRate   float64   `json:"base_rate"`
}

func (r CreateRoomTypeRequest) ToCommand() commands.CreateRoomTypeRequest {
	return commands.CreateRoomTypeRequest{
		PropertyID: r.PropertyID,
		Name:       strings.TrimSpace(r.Name),
		BaseRate:   r.BaseRate,
	}
}

type CreateRoomRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	Number     string    `json:"number" binding:"required"`
	TypeID     uuid.UUID `json:"type_id" binding:"required"`
	Floor      *string   `json:"floor,omitempty"`
	Amenities  []string  `json:"amenities,omitempty"`
}

func (r CreateRoomRequest) ToCommand() commands.CreateRoomRequest {
	return commands.CreateRoomRequest{
		PropertyID: r.PropertyID,
		Number:     r.Number,
		TypeID:     r.TypeID,
		Floor:      r.Floor,
		Amenities:  r.Amenities,
	}
}

type CreateRatePlanRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	RoomTypeID uuid.UUID `json:"room_type_id" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	DailyRate  float64   `json:"daily_rate"`
	StartDate  *string   `json:"start_date,omitempty"`
	EndDate    *string   `json:"end_date,omitempty"`
}

func (r CreateRatePlanRequest) ToCommand() commands.CreateRatePlanRequest {
	return commands.CreateRatePlanRequest{
		PropertyID: r.PropertyID,
		RoomTypeID: r.RoomTypeID,
		Name:       strings.TrimSpace(r.Name),
		DailyRate:  r.DailyRate,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ClaimRoomRequest carries either an explicit room or a type to allocate from.
type ClaimRoomRequest struct {
	PropertyID uuid.UUID  `json:"property_id"`
	RoomID     *uuid.UUID `json:"room_id,omitempty"`
	RoomTypeID *uuid.UUID `json:"room_type_id,omitempty"`
}

func (r ClaimRoomRequest) ToCommand() commands.ClaimRoomRequest {
	return commands.ClaimRoomRequest{
		PropertyID: r.PropertyID,
		RoomID:     r.RoomID,
		RoomTypeID: r.RoomTypeID,
	}
}
