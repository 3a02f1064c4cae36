package repository

import (
	"context"
	"time"

	"hotelier/internal/domain/reservation"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, property_id, guest_id, room_id, check_in, check_out, status, price, payment_status, created_at, updated_at`

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	const query = `
		INSERT INTO reservations (id, property_id, guest_id, room_id, check_in, check_out, status, price, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`

	_, err := tx.Exec(ctx, query,
		res.ID(),
		res.PropertyID(),
		res.GuestID(),
		pgconv.UUIDPtrToPgtype(res.RoomID()),
		res.Stay().CheckIn(),
		res.Stay().CheckOut(),
		res.Status().String(),
		pgconv.Float64PtrToPgtype(res.Price().AmountPtr()),
		pgconv.StringPtrToPgtype(res.PaymentStatus()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`

	var (
		resID, propertyID, guestID uuid.UUID
		roomID                     pgtype.UUID
		checkIn, checkOut          time.Time
		status                     string
		price                      pgtype.Float8
		paymentStatus              pgtype.Text
		createdAt, updatedAt       pgtype.Timestamptz
	)

	err := tx.QueryRow(ctx, query, id).Scan(
		&resID, &propertyID, &guestID, &roomID, &checkIn, &checkOut,
		&status, &price, &paymentStatus, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	priceAmount, err := pgconv.Float64PtrFromPgtype(price)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation price", err)
	}
	priceVO, err := reservation.NewPricePtr(priceAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("persisted reservation price is invalid", err)
	}

	return reservation.ReconstructReservation(
		resID, propertyID, guestID,
		pgconv.UUIDPtrFromPgtype(roomID),
		reservation.ReconstructStayPeriod(checkIn, checkOut),
		reservation.Status(status),
		priceVO,
		pgconv.StringPtrFromPgtype(paymentStatus),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status, updatedAt time.Time) error {
	const query = `UPDATE reservations SET status = $2, updated_at = $3 WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status.String(), updatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) ApplyPatch(ctx context.Context, tx db.DBTX, id uuid.UUID, patch shared.ReservationPatch, updatedAt time.Time) error {
	const query = `
		UPDATE reservations SET
			status         = COALESCE($2, status),
			room_id        = COALESCE($3, room_id),
			price          = COALESCE($4, price),
			payment_status = COALESCE($5, payment_status),
			updated_at     = $6
		WHERE id = $1`

	var status pgtype.Text
	if patch.Status != nil {
		status = pgconv.StringToPgtype(patch.Status.String())
	}

	tag, err := tx.Exec(ctx, query,
		id,
		status,
		pgconv.UUIDPtrToPgtype(patch.RoomID),
		pgconv.Float64PtrToPgtype(patch.Price),
		pgconv.StringPtrToPgtype(patch.PaymentStatus),
		updatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to patch reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM reservations WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
