package commands

import (
	"context"
	"log/slog"

	"hotelier/internal/domain/room"
	"hotelier/internal/events"
	"hotelier/internal/infra"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrInvalidStatusTransition = errs.New("invalid room status transition")
	ErrNoAvailableRoom         = errs.New("no available room")
	ErrRoomUnavailable         = errs.New("room is not available")
	ErrDuplicateRoomNumber     = errs.New("room number already exists for this property")
	ErrRoomValidation          = errs.New("room validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreatePropertyRequest struct {
	Name     string
	Location *string
}

type CreateRoomTypeRequest struct {
	PropertyID uuid.UUID
	Name       string
	BaseRate   float64
}

type CreateRoomRequest struct {
	PropertyID uuid.UUID
	Number     string
	TypeID     uuid.UUID
	Floor      *string
	Amenities  []string
}

type CreateRatePlanRequest struct {
	PropertyID uuid.UUID
	RoomTypeID uuid.UUID
	Name       string
	DailyRate  float64
	StartDate  *string
	EndDate    *string
}

// ClaimRoomRequest resolves a room either by explicit id or by type-based
// allocation. Exactly one of RoomID / RoomTypeID is expected.
type ClaimRoomRequest struct {
	PropertyID uuid.UUID
	RoomTypeID *uuid.UUID
	RoomID     *uuid.UUID
}

type RoomCommands interface {
	CreateProperty(ctx context.Context, req CreatePropertyRequest) (uuid.UUID, error)
	CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (uuid.UUID, error)
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*queries.RoomView, error)
	CreateRatePlan(ctx context.Context, req CreateRatePlanRequest) (uuid.UUID, error)
	MarkRoomStatus(ctx context.Context, roomID uuid.UUID, status string, actor string) (*queries.RoomView, error)
	ClaimRoom(ctx context.Context, req ClaimRoomRequest, actor string) (*queries.RoomView, error)
	ReleaseRoom(ctx context.Context, roomID uuid.UUID, actor string) (*queries.RoomView, error)
}

type roomCommandsImpl struct {
	uow       shared.UnitOfWork
	roomViews queries.RoomQueries
	cache     queries.RoomListCache
	publisher EventPublisher
	clock     clock.Clock
}

func NewRoomCommands(
	uow shared.UnitOfWork,
	roomViews queries.RoomQueries,
	cache queries.RoomListCache,
	publisher EventPublisher,
	clk clock.Clock,
) RoomCommands {
	return &roomCommandsImpl{
		uow:       uow,
		roomViews: roomViews,
		cache:     cache,
		publisher: publisher,
		clock:     clk,
	}
}

func (c *roomCommandsImpl) CreateProperty(ctx context.Context, req CreatePropertyRequest) (uuid.UUID, error) {
	entity, err := room.NewProperty(req.Name, req.Location)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrRoomValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Properties().Create(ctx, tx.DB(), entity)
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity.ID(), nil
}

func (c *roomCommandsImpl) CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (uuid.UUID, error) {
	entity, err := room.NewRoomType(req.PropertyID, req.Name, req.BaseRate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrRoomValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.RoomTypes().Create(ctx, tx.DB(), entity)
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity.ID(), nil
}

func (c *roomCommandsImpl) CreateRoom(ctx context.Context, req CreateRoomRequest) (*queries.RoomView, error) {
	entity, err := room.NewRoom(req.PropertyID, req.Number, req.TypeID, req.Floor, req.Amenities)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Create(ctx, tx.DB(), entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateRoomNumber
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.invalidateCache(ctx, req.PropertyID)
	return c.roomViews.GetRoom(ctx, entity.ID())
}

func (c *roomCommandsImpl) CreateRatePlan(ctx context.Context, req CreateRatePlanRequest) (uuid.UUID, error) {
	start, err := parseDatePtr(req.StartDate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrRoomValidation)
	}
	end, err := parseDatePtr(req.EndDate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrRoomValidation)
	}

	entity, err := room.NewRatePlan(req.PropertyID, req.RoomTypeID, req.Name, req.DailyRate, start, end)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrRoomValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.RatePlans().Create(ctx, tx.DB(), entity)
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity.ID(), nil
}

// MarkRoomStatus enforces the permissive transition rule under a row lock and
// appends the audit log in the same transaction.
func (c *roomCommandsImpl) MarkRoomStatus(ctx context.Context, roomID uuid.UUID, status string, actor string) (*queries.RoomView, error) {
	next, err := room.ParseStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStatusTransition)
	}

	var propertyID uuid.UUID
	var oldStatus room.Status
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Rooms().FindByIDForUpdate(ctx, tx.DB(), roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		oldStatus = entity.Status()
		if err := entity.ChangeStatus(next); err != nil {
			return errs.Mark(err, ErrInvalidStatusTransition)
		}
		propertyID = entity.PropertyID()

		if err := tx.Rooms().UpdateStatus(ctx, tx.DB(), roomID, next); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return tx.StatusLogs().Append(ctx, tx.DB(), room.NewStatusLog(roomID, oldStatus, next, c.clock.Now(), actor))
	})
	if err != nil {
		return nil, err
	}

	c.invalidateCache(ctx, propertyID)
	c.publishStatusChanged(ctx, roomID, oldStatus, next, actor)

	return c.roomViews.GetRoom(ctx, roomID)
}

// ClaimRoom is allocation and claim as one indivisible operation: the
// candidate row stays locked from selection until the OCCUPIED write commits,
// so two concurrent claims can never be handed the same room.
func (c *roomCommandsImpl) ClaimRoom(ctx context.Context, req ClaimRoomRequest, actor string) (*queries.RoomView, error) {
	var claimed *room.Room
	var oldStatus room.Status

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var entity *room.Room
		var err error

		switch {
		case req.RoomID != nil:
			entity, err = tx.Rooms().FindByIDForUpdate(ctx, tx.DB(), *req.RoomID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrRoomUnavailable
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if !entity.IsAvailable() {
				return ErrRoomUnavailable
			}
		case req.RoomTypeID != nil:
			entity, err = tx.Rooms().FindFirstAvailableForUpdate(ctx, tx.DB(), req.PropertyID, *req.RoomTypeID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrNoAvailableRoom
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		default:
			return ErrRoomUnavailable
		}

		oldStatus = entity.Status()
		if err := entity.ChangeStatus(room.StatusOccupied); err != nil {
			return errs.Mark(err, ErrRoomUnavailable)
		}
		if err := tx.Rooms().UpdateStatus(ctx, tx.DB(), entity.ID(), room.StatusOccupied); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.StatusLogs().Append(ctx, tx.DB(), room.NewStatusLog(entity.ID(), oldStatus, room.StatusOccupied, c.clock.Now(), actor)); err != nil {
			return err
		}
		claimed = entity
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.invalidateCache(ctx, claimed.PropertyID())
	c.publishStatusChanged(ctx, claimed.ID(), oldStatus, room.StatusOccupied, actor)

	return c.roomViews.GetRoom(ctx, claimed.ID())
}

// ReleaseRoom returns a claimed room to the available pool. Releasing a room
// that is already AVAILABLE is rejected like any other identity transition.
func (c *roomCommandsImpl) ReleaseRoom(ctx context.Context, roomID uuid.UUID, actor string) (*queries.RoomView, error) {
	return c.MarkRoomStatus(ctx, roomID, room.StatusAvailable.String(), actor)
}

func (c *roomCommandsImpl) invalidateCache(ctx context.Context, propertyID uuid.UUID) {
	if c.cache != nil {
		c.cache.Invalidate(ctx, propertyID)
	}
}

func (c *roomCommandsImpl) publishStatusChanged(ctx context.Context, roomID uuid.UUID, oldStatus, newStatus room.Status, actor string) {
	if c.publisher == nil {
		return
	}
	event := events.RoomStatusChanged{
		RoomID:    roomID,
		OldStatus: oldStatus.String(),
		NewStatus: newStatus.String(),
		ChangedBy: actor,
		ChangedAt: c.clock.Now(),
	}
	if err := c.publisher.Publish(ctx, events.TopicRoomStatusChanged, event); err != nil {
		slog.Warn("room status event publish failed; continuing", "room_id", roomID, "error", err.Error())
	}
}
