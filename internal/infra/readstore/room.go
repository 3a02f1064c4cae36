package readstore

import (
	"context"

	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomViewQuery = `
	SELECT r.id, r.property_id, r.number, r.type_id, t.name AS type_name,
	       r.status, r.floor, r.amenities, r.created_at, r.updated_at
	FROM rooms r
	JOIN room_types t ON t.id = r.type_id`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (s *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row := s.db.QueryRow(ctx, roomViewQuery+` WHERE r.id = $1`, id)

	view, err := scanRoomView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return view, nil
}

func (s *RoomReadStore) List(ctx context.Context, propertyID *uuid.UUID) ([]*queries.RoomView, error) {
	query := roomViewQuery
	args := []any{}
	if propertyID != nil {
		query += ` WHERE r.property_id = $1`
		args = append(args, *propertyID)
	}
	query += ` ORDER BY r.created_at, r.id`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	result := make([]*queries.RoomView, 0)
	for rows.Next() {
		view, err := scanRoomView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoomView(row rowScanner) (*queries.RoomView, error) {
	var (
		view                 queries.RoomView
		floor                pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&view.ID, &view.PropertyID, &view.Number, &view.TypeID, &view.TypeName,
		&view.Status, &floor, &view.Amenities, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.Floor = pgconv.StringPtrFromPgtype(floor)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func (s *RoomReadStore) ListProperties(ctx context.Context) ([]*queries.PropertyView, error) {
	const query = `SELECT id, name, location, created_at, updated_at FROM properties ORDER BY created_at`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list properties", err)
	}
	defer rows.Close()

	result := make([]*queries.PropertyView, 0)
	for rows.Next() {
		var (
			view                 queries.PropertyView
			location             pgtype.Text
			createdAt, updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &location, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan property row", err)
		}
		view.Location = pgconv.StringPtrFromPgtype(location)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate property rows", err)
	}
	return result, nil
}

func (s *RoomReadStore) ListRoomTypes(ctx context.Context, propertyID *uuid.UUID) ([]*queries.RoomTypeView, error) {
	query := `SELECT id, property_id, name, base_rate, created_at, updated_at FROM room_types`
	args := []any{}
	if propertyID != nil {
		query += ` WHERE property_id = $1`
		args = append(args, *propertyID)
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	defer rows.Close()

	result := make([]*queries.RoomTypeView, 0)
	for rows.Next() {
		var (
			view                 queries.RoomTypeView
			createdAt, updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.PropertyID, &view.Name, &view.BaseRate, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room type rows", err)
	}
	return result, nil
}

func (s *RoomReadStore) ListRatePlans(ctx context.Context, propertyID *uuid.UUID) ([]*queries.RatePlanView, error) {
	query := `SELECT id, property_id, room_type_id, name, daily_rate, start_date, end_date, created_at, updated_at FROM rate_plans`
	args := []any{}
	if propertyID != nil {
		query += ` WHERE property_id = $1`
		args = append(args, *propertyID)
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rate plans", err)
	}
	defer rows.Close()

	result := make([]*queries.RatePlanView, 0)
	for rows.Next() {
		var (
			view                 queries.RatePlanView
			startDate, endDate   pgtype.Timestamptz
			createdAt, updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.PropertyID, &view.RoomTypeID, &view.Name, &view.DailyRate,
			&startDate, &endDate, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rate plan row", err)
		}
		view.StartDate = pgconv.TimePtrFromPgtype(startDate)
		view.EndDate = pgconv.TimePtrFromPgtype(endDate)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rate plan rows", err)
	}
	return result, nil
}

func (s *RoomReadStore) ListStatusLogs(ctx context.Context, roomID *uuid.UUID) ([]*queries.StatusLogView, error) {
	query := `SELECT id, room_id, old_status, new_status, changed_at, changed_by FROM room_status_logs`
	args := []any{}
	if roomID != nil {
		query += ` WHERE room_id = $1`
		args = append(args, *roomID)
	}
	query += ` ORDER BY changed_at, id`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room status logs", err)
	}
	defer rows.Close()

	result := make([]*queries.StatusLogView, 0)
	for rows.Next() {
		var (
			view      queries.StatusLogView
			changedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.RoomID, &view.OldStatus, &view.NewStatus, &changedAt, &view.ChangedBy); err != nil {
			return nil, infra.WrapRepoErr("failed to scan status log row", err)
		}
		view.ChangedAt = pgconv.TimeFromPgtype(changedAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate status log rows", err)
	}
	return result, nil
}
