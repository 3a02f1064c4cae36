package shared

import (
	"context"
	"time"

	"hotelier/internal/domain/reservation"
	"hotelier/internal/domain/room"
	"hotelier/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Properties() PropertyRepository
	RoomTypes() RoomTypeRepository
	Rooms() RoomRepository
	RatePlans() RatePlanRepository
	StatusLogs() StatusLogRepository
	Reservations() ReservationRepository
	DB() db.DBTX
}

type PropertyRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *room.Property) error
}

type RoomTypeRepository interface {
	Create(ctx context.Context, tx db.DBTX, t *room.RoomType) error
}

type RatePlanRepository interface {
	Create(ctx context.Context, tx db.DBTX, rp *room.RatePlan) error
}

type RoomRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *room.Room) error
	// FindByIDForUpdate locks the row so a status decision and its write are
	// one atomic unit.
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*room.Room, error)
	// FindFirstAvailableForUpdate picks the oldest AVAILABLE room of the given
	// type, skipping rows locked by concurrent claimers.
	FindFirstAvailableForUpdate(ctx context.Context, tx db.DBTX, propertyID, typeID uuid.UUID) (*room.Room, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status room.Status) error
}

type StatusLogRepository interface {
	Append(ctx context.Context, tx db.DBTX, log room.StatusLog) error
}

// ReservationPatch is the administrative field update of the generic PATCH
// endpoint. Nil fields are left untouched.
type ReservationPatch struct {
	Status        *reservation.Status
	RoomID        *uuid.UUID
	Price         *float64
	PaymentStatus *string
}

func (p ReservationPatch) IsEmpty() bool {
	return p.Status == nil && p.RoomID == nil && p.Price == nil && p.PaymentStatus == nil
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status, updatedAt time.Time) error
	ApplyPatch(ctx context.Context, tx db.DBTX, id uuid.UUID, patch ReservationPatch, updatedAt time.Time) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}
