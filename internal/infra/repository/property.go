package repository

import (
	"context"

	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
)

type PropertyRepository struct{}

func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{}
}

func (r *PropertyRepository) Create(ctx context.Context, tx db.DBTX, entity *room.Property) error {
	const query = `
		INSERT INTO properties (id, name, location, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())`

	_, err := tx.Exec(ctx, query, entity.ID(), entity.Name(), pgconv.StringPtrToPgtype(entity.Location()))
	if err != nil {
		return infra.WrapRepoErr("failed to create property", err)
	}
	return nil
}

type RoomTypeRepository struct{}

func NewRoomTypeRepository() *RoomTypeRepository {
	return &RoomTypeRepository{}
}

func (r *RoomTypeRepository) Create(ctx context.Context, tx db.DBTX, entity *room.RoomType) error {
	const query = `
		INSERT INTO room_types (id, property_id, name, base_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())`

	_, err := tx.Exec(ctx, query, entity.ID(), entity.PropertyID(), entity.Name(), entity.BaseRate())
	if err != nil {
		return infra.WrapRepoErr("failed to create room type", err)
	}
	return nil
}

type RatePlanRepository struct{}

func NewRatePlanRepository() *RatePlanRepository {
	return &RatePlanRepository{}
}

func (r *RatePlanRepository) Create(ctx context.Context, tx db.DBTX, entity *room.RatePlan) error {
	const query = `
		INSERT INTO rate_plans (id, property_id, room_type_id, name, daily_rate, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`

	_, err := tx.Exec(ctx, query,
		entity.ID(),
		entity.PropertyID(),
		entity.RoomTypeID(),
		entity.Name(),
		entity.DailyRate(),
		pgconv.TimePtrToPgtype(entity.StartDate()),
		pgconv.TimePtrToPgtype(entity.EndDate()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create rate plan", err)
	}
	return nil
}
