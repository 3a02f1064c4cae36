package response

import (
	"time"

	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  *string   `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromPropertyView(v *queries.PropertyView) *PropertyResponse {
	return &PropertyResponse{
		ID:        v.ID,
		Name:      v.Name,
		Location:  v.Location,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

type RoomTypeResponse struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"propertyId"`
	Name       string    `json:"name"`
	BaseRate   float64   `json:"baseRate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromRoomTypeView(v *queries.RoomTypeView) *RoomTypeResponse {
	return &RoomTypeResponse{
		ID:         v.ID,
		PropertyID: v.PropertyID,
		Name:       v.Name,
		BaseRate:   v.BaseRate,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

type RoomResponse struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"propertyId"`
	Number     string    `json:"number"`
	TypeID     uuid.UUID `json:"typeId"`
	TypeName   string    `json:"typeName"`
	Status     string    `json:"status"`
	Floor      *string   `json:"floor,omitempty"`
	Amenities  []string  `json:"amenities"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:         v.ID,
		PropertyID: v.PropertyID,
		Number:     v.Number,
		TypeID:     v.TypeID,
		TypeName:   v.TypeName,
		Status:     v.Status,
		Floor:      v.Floor,
		Amenities:  v.Amenities,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func FromRoomViews(vs []*queries.RoomView) []*RoomResponse {
	result := make([]*RoomResponse, len(vs))
	for i, v := range vs {
		result[i] = FromRoomView(v)
	}
	return result
}

type RatePlanResponse struct {
	ID         uuid.UUID  `json:"id"`
	PropertyID uuid.UUID  `json:"propertyId"`
	RoomTypeID uuid.UUID  `json:"roomTypeId"`
	Name       string     `json:"name"`
	DailyRate  float64    `json:"dailyRate"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func FromRatePlanView(v *queries.RatePlanView) *RatePlanResponse {
	return &RatePlanResponse{
		ID:         v.ID,
		PropertyID: v.PropertyID,
		RoomTypeID: v.RoomTypeID,
		Name:       v.Name,
		DailyRate:  v.DailyRate,
		StartDate:  v.StartDate,
		EndDate:    v.EndDate,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

type StatusLogResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"roomId"`
	OldStatus string    `json:"oldStatus"`
	NewStatus string    `json:"newStatus"`
	ChangedAt time.Time `json:"changedAt"`
	ChangedBy string    `json:"changedBy"`
}

func FromStatusLogView(v *queries.StatusLogView) *StatusLogResponse {
	return &StatusLogResponse{
		ID:        v.ID,
		RoomID:    v.RoomID,
		OldStatus: v.OldStatus,
		NewStatus: v.NewStatus,
		ChangedAt: v.ChangedAt,
		ChangedBy: v.ChangedBy,
	}
}

// ClaimedRoomResponse is the contract of the claim endpoint; the reservation
// service's room client decodes exactly these fields.
type ClaimedRoomResponse struct {
	ID     uuid.UUID `json:"id"`
	Number string    `json:"number"`
	Status string    `json:"status"`
}

func FromClaimedRoom(v *queries.RoomView) *ClaimedRoomResponse {
	return &ClaimedRoomResponse{
		ID:     v.ID,
		Number: v.Number,
		Status: v.Status,
	}
}
