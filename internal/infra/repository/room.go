package repository

import (
	"context"

	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomColumns = `id, property_id, number, type_id, status, floor, amenities, created_at, updated_at`

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, entity *room.Room) error {
	const query = `
		INSERT INTO rooms (id, property_id, number, type_id, status, floor, amenities, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`

	_, err := tx.Exec(ctx, query,
		entity.ID(),
		entity.PropertyID(),
		entity.Number(),
		entity.TypeID(),
		entity.Status().String(),
		pgconv.StringPtrToPgtype(entity.Floor()),
		entity.Amenities(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*room.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1 FOR UPDATE`
	return r.scanRoom(ctx, tx, query, id)
}

func (r *RoomRepository) FindFirstAvailableForUpdate(ctx context.Context, tx db.DBTX, propertyID, typeID uuid.UUID) (*room.Room, error) {
	// SKIP LOCKED keeps concurrent claimers from queueing on (or being handed)
	// a row another transaction is already claiming.
	query := `
		SELECT ` + roomColumns + `
		FROM rooms
		WHERE property_id = $1 AND type_id = $2 AND status = 'AVAILABLE'
		ORDER BY created_at, id
		LIMIT 1
		FOR UPDATE SKIP LOCKED`
	return r.scanRoom(ctx, tx, query, propertyID, typeID)
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status room.Status) error {
	const query = `UPDATE rooms SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update room status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) scanRoom(ctx context.Context, tx db.DBTX, query string, args ...any) (*room.Room, error) {
	var (
		id, propertyID, typeID uuid.UUID
		number, status         string
		floor                  pgtype.Text
		amenities              []string
		createdAt, updatedAt   pgtype.Timestamptz
	)

	err := tx.QueryRow(ctx, query, args...).Scan(
		&id, &propertyID, &number, &typeID, &status, &floor, &amenities, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}

	return room.ReconstructRoom(
		id, propertyID, number, typeID,
		room.Status(status),
		pgconv.StringPtrFromPgtype(floor),
		amenities,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

type StatusLogRepository struct{}

func NewStatusLogRepository() *StatusLogRepository {
	return &StatusLogRepository{}
}

func (r *StatusLogRepository) Append(ctx context.Context, tx db.DBTX, log room.StatusLog) error {
	const query = `
		INSERT INTO room_status_logs (id, room_id, old_status, new_status, changed_at, changed_by)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query,
		log.ID,
		log.RoomID,
		log.OldStatus.String(),
		log.NewStatus.String(),
		log.ChangedAt,
		log.ChangedBy,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append room status log", err)
	}
	return nil
}
