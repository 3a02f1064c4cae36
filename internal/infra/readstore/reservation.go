package readstore

import (
	"context"
	"fmt"
	"strings"

	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, property_id, guest_id, room_id, check_in, check_out, status, price, payment_status, created_at, updated_at`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)

	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (s *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	var (
		conds []string
		args  []any
	)
	addCond := func(expr string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if filter.PropertyID != nil {
		addCond("property_id = $%d", *filter.PropertyID)
	}
	if filter.GuestID != nil {
		addCond("guest_id = $%d", *filter.GuestID)
	}
	if filter.Start != nil {
		addCond("check_in >= $%d", *filter.Start)
	}
	if filter.End != nil {
		addCond("check_out <= $%d", *filter.End)
	}

	query := `SELECT ` + reservationColumns + ` FROM reservations`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at, id`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	result := make([]*queries.ReservationView, 0)
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var (
		view                 queries.ReservationView
		roomID               pgtype.UUID
		checkIn, checkOut    pgtype.Timestamptz
		price                pgtype.Float8
		paymentStatus        pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&view.ID, &view.PropertyID, &view.GuestID, &roomID,
		&checkIn, &checkOut, &view.Status, &price, &paymentStatus,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.RoomID = pgconv.UUIDPtrFromPgtype(roomID)
	view.CheckIn = pgconv.TimeFromPgtype(checkIn)
	view.CheckOut = pgconv.TimeFromPgtype(checkOut)
	view.PaymentStatus = pgconv.StringPtrFromPgtype(paymentStatus)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	view.Price, err = pgconv.Float64PtrFromPgtype(price)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
