package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotelier/internal/domain/reservation"
	"hotelier/internal/events"
	"hotelier/internal/infra"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound      = errs.New("reservation not found")
	ErrReservationValidation    = errs.New("reservation validation error")
	ErrInvalidReservationStatus = errs.New("operation not allowed in current reservation status")
)

type CreateReservationRequest struct {
	PropertyID    uuid.UUID
	GuestID       uuid.UUID
	CheckIn       time.Time
	CheckOut      time.Time
	Price         *float64
	PaymentStatus *string
	RoomID        *uuid.UUID
	RoomTypeID    *uuid.UUID
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req CreateReservationRequest) (*queries.ReservationView, error)
	CancelReservation(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	CheckIn(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	CheckOut(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	UpdateReservation(ctx context.Context, id uuid.UUID, patch shared.ReservationPatch) (*queries.ReservationView, error)
	DeleteReservation(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	rooms     RoomGateway
	resViews  queries.ReservationQueries
	publisher EventPublisher
	clock     clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	rooms RoomGateway,
	resViews queries.ReservationQueries,
	publisher EventPublisher,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		rooms:     rooms,
		resViews:  resViews,
		publisher: publisher,
		clock:     clk,
	}
}

// CreateReservation validates the booking request, claims a room through the
// registry (one indivisible claim call, never read-then-write), and persists
// the BOOKED row. If the insert fails after a successful claim the room is
// released again so no OCCUPIED room is left without a reservation.
func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, req CreateReservationRequest) (*queries.ReservationView, error) {
	stay, err := reservation.NewStayPeriod(req.CheckIn, req.CheckOut, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrReservationValidation)
	}

	price, err := reservation.NewPricePtr(req.Price)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationValidation)
	}

	claimed, err := c.claimRoom(ctx, req)
	if err != nil {
		return nil, err
	}

	roomID := claimed.ID
	entity := reservation.NewReservation(req.PropertyID, req.GuestID, &roomID, stay, price, req.PaymentStatus)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, tx.DB(), entity)
	})
	if err != nil {
		c.compensateClaim(ctx, roomID)
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.publishLifecycle(ctx, events.TopicReservationCreated, entity)
	return c.resViews.GetReservation(ctx, entity.ID())
}

func (c *reservationCommandsImpl) claimRoom(ctx context.Context, req CreateReservationRequest) (*ClaimedRoom, error) {
	var claimed *ClaimedRoom
	var err error

	switch {
	case req.RoomID != nil:
		claimed, err = c.rooms.ClaimByID(ctx, *req.RoomID)
	case req.RoomTypeID != nil:
		claimed, err = c.rooms.ClaimByType(ctx, req.PropertyID, *req.RoomTypeID)
	default:
		return nil, ErrRoomUnavailable
	}

	if err != nil {
		switch {
		case errors.Is(err, ErrGatewayNoRoomOfType):
			return nil, errs.Mark(err, ErrNoAvailableRoom)
		case errors.Is(err, ErrGatewayRoomUnavailable):
			return nil, errs.Mark(err, ErrRoomUnavailable)
		default:
			// Transport failure or timeout: fail closed, the room is treated
			// as unavailable.
			slog.Error("room claim failed, failing closed", "error", err.Error())
			return nil, errs.Mark(err, ErrRoomUnavailable)
		}
	}
	return claimed, nil
}

// compensateClaim releases a room claimed for a reservation that was never
// persisted. Failures leave an OCCUPIED room behind and must be loud.
func (c *reservationCommandsImpl) compensateClaim(ctx context.Context, roomID uuid.UUID) {
	if err := c.rooms.Release(ctx, roomID); err != nil {
		slog.Error("failed to release room after reservation insert failure; room may remain OCCUPIED",
			"room_id", roomID, "error", err.Error())
	}
}

func (c *reservationCommandsImpl) CancelReservation(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	entity, err := c.transition(ctx, id, events.TopicReservationCanceled, func(r *reservation.Reservation) error {
		return r.Cancel()
	})
	if err != nil {
		return nil, err
	}

	c.releaseBoundRoom(ctx, entity)
	return c.resViews.GetReservation(ctx, id)
}

func (c *reservationCommandsImpl) CheckIn(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	// The room was claimed at booking time and stays OCCUPIED.
	if _, err := c.transition(ctx, id, events.TopicReservationCheckedIn, func(r *reservation.Reservation) error {
		return r.CheckIn()
	}); err != nil {
		return nil, err
	}
	return c.resViews.GetReservation(ctx, id)
}

func (c *reservationCommandsImpl) CheckOut(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	entity, err := c.transition(ctx, id, events.TopicReservationCheckedOut, func(r *reservation.Reservation) error {
		return r.CheckOut()
	})
	if err != nil {
		return nil, err
	}

	c.releaseBoundRoom(ctx, entity)
	return c.resViews.GetReservation(ctx, id)
}

// transition runs one guarded state-machine step under a row lock, so
// concurrent lifecycle calls on the same reservation serialize and the second
// caller observes the committed status.
func (c *reservationCommandsImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	topic string,
	step func(*reservation.Reservation) error,
) (*reservation.Reservation, error) {
	var entity *reservation.Reservation

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		entity, err = tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := step(entity); err != nil {
			return errs.Mark(err, ErrInvalidReservationStatus)
		}

		return tx.Reservations().UpdateStatus(ctx, tx.DB(), id, entity.Status(), c.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	c.publishLifecycle(ctx, topic, entity)
	return entity, nil
}

// UpdateReservation is the administrative field update. It bypasses the
// lifecycle guards on purpose; the guarded operations are cancel/checkin/checkout.
func (c *reservationCommandsImpl) UpdateReservation(ctx context.Context, id uuid.UUID, patch shared.ReservationPatch) (*queries.ReservationView, error) {
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, errs.Mark(errs.Newf("unknown reservation status %q", *patch.Status), ErrReservationValidation)
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, errs.Mark(reservation.ErrNegativePrice, ErrReservationValidation)
	}
	if patch.IsEmpty() {
		return c.resViews.GetReservation(ctx, id)
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().ApplyPatch(ctx, tx.DB(), id, patch, c.clock.Now()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.resViews.GetReservation(ctx, id)
}

// DeleteReservation is the destructive administrative path: it removes the
// row whatever its status and frees the bound room.
func (c *reservationCommandsImpl) DeleteReservation(ctx context.Context, id uuid.UUID) error {
	var roomID *uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		roomID = entity.RoomID()
		return tx.Reservations().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return err
	}

	if roomID != nil {
		// The reservation may already have freed its room (canceled or
		// checked out); an identity transition on release is expected then.
		if err := c.rooms.Release(ctx, *roomID); err != nil && !errors.Is(err, ErrGatewayRoomUnavailable) {
			slog.Error("failed to release room after reservation delete", "room_id", *roomID, "error", err.Error())
		}
	}
	return nil
}

// releaseBoundRoom frees the room after a committed cancel or check-out. The
// status change has already committed, so a release failure cannot fail the
// request; it is logged for reconciliation instead.
func (c *reservationCommandsImpl) releaseBoundRoom(ctx context.Context, entity *reservation.Reservation) {
	if !entity.ReleasesRoomOnExit() {
		return
	}
	roomID := *entity.RoomID()
	if err := c.rooms.Release(ctx, roomID); err != nil {
		slog.Error("failed to release room; room may remain OCCUPIED",
			"room_id", roomID, "reservation_id", entity.ID(), "error", err.Error())
	}
}

func (c *reservationCommandsImpl) publishLifecycle(ctx context.Context, topic string, entity *reservation.Reservation) {
	if c.publisher == nil {
		return
	}
	event := events.ReservationLifecycle{
		ReservationID: entity.ID(),
		PropertyID:    entity.PropertyID(),
		GuestID:       entity.GuestID(),
		RoomID:        entity.RoomID(),
		Status:        entity.Status().String(),
		OccurredAt:    c.clock.Now(),
	}
	if err := c.publisher.Publish(ctx, topic, event); err != nil {
		slog.Warn("reservation event publish failed; continuing", "topic", topic, "error", err.Error())
	}
}
