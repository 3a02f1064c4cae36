package queries

import (
	"context"
	"log/slog"

	"hotelier/internal/infra"
	"hotelier/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomNotFound = errs.New("room not found")

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context, propertyID *uuid.UUID) ([]*RoomView, error)
	ListProperties(ctx context.Context) ([]*PropertyView, error)
	ListRoomTypes(ctx context.Context, propertyID *uuid.UUID) ([]*RoomTypeView, error)
	ListRatePlans(ctx context.Context, propertyID *uuid.UUID) ([]*RatePlanView, error)
	ListStatusLogs(ctx context.Context, roomID *uuid.UUID) ([]*StatusLogView, error)
}

// RoomListCache is a best-effort read-through cache for room listings. A nil
// or failing cache never fails the query.
type RoomListCache interface {
	Get(ctx context.Context, propertyID *uuid.UUID) ([]*RoomView, bool)
	Set(ctx context.Context, propertyID *uuid.UUID, rooms []*RoomView)
	Invalidate(ctx context.Context, propertyID uuid.UUID)
}

type RoomQueries interface {
	GetRoom(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListRooms(ctx context.Context, propertyID *uuid.UUID) ([]*RoomView, error)
	ListProperties(ctx context.Context) ([]*PropertyView, error)
	ListRoomTypes(ctx context.Context, propertyID *uuid.UUID) ([]*RoomTypeView, error)
	ListRatePlans(ctx context.Context, propertyID *uuid.UUID) ([]*RatePlanView, error)
	ListStatusLogs(ctx context.Context, roomID *uuid.UUID) ([]*StatusLogView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
	cache RoomListCache
}

func NewRoomQueries(store RoomReadStore, cache RoomListCache) RoomQueries {
	return &roomQueriesImpl{store: store, cache: cache}
}

func (q *roomQueriesImpl) GetRoom(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context, propertyID *uuid.UUID) ([]*RoomView, error) {
	if q.cache != nil {
		if rooms, ok := q.cache.Get(ctx, propertyID); ok {
			return rooms, nil
		}
	}

	rooms, err := q.store.List(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if q.cache != nil {
		q.cache.Set(ctx, propertyID, rooms)
	}
	return rooms, nil
}

func (q *roomQueriesImpl) ListProperties(ctx context.Context) ([]*PropertyView, error) {
	return q.store.ListProperties(ctx)
}

func (q *roomQueriesImpl) ListRoomTypes(ctx context.Context, propertyID *uuid.UUID) ([]*RoomTypeView, error) {
	return q.store.ListRoomTypes(ctx, propertyID)
}

func (q *roomQueriesImpl) ListRatePlans(ctx context.Context, propertyID *uuid.UUID) ([]*RatePlanView, error) {
	return q.store.ListRatePlans(ctx, propertyID)
}

func (q *roomQueriesImpl) ListStatusLogs(ctx context.Context, roomID *uuid.UUID) ([]*StatusLogView, error) {
	logs, err := q.store.ListStatusLogs(ctx, roomID)
	if err != nil {
		slog.Error("failed to list status logs", "error", err)
		return nil, err
	}
	return logs, nil
}
