//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"
	"hotelier/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoomFixture(t *testing.T) (*roomFixture, commands.RoomCommands) {
	t.Helper()
	f := &roomFixture{
		repo:      newFakeRoomRepo(),
		logs:      &fakeStatusLogRepo{},
		publisher: &fakePublisher{},
		clock:     clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	}
	f.uow = &fakeUoW{tx: &fakeTx{rooms: f.repo, logs: f.logs}}
	f.views = &fakeRoomViews{repo: f.repo}
	cmds := commands.NewRoomCommands(f.uow, f.views, nil, f.publisher, f.clock)
	return f, cmds
}

type roomFixture struct {
	repo      *fakeRoomRepo
	logs      *fakeStatusLogRepo
	publisher *fakePublisher
	clock     *clock.MockClock
	uow       *fakeUoW
	views     *fakeRoomViews
}

func (f *roomFixture) seed(t *testing.T, b *builder.RoomBuilder) *room.Room {
	t.Helper()
	entity := b.BuildReconstructed()
	f.repo.add(entity)
	return entity
}

func TestMarkRoomStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("writes status and audit log in one unit", func(t *testing.T) {
		f, cmds := newRoomFixture(t)
		entity := f.seed(t, builder.NewRoomBuilder())

		view, err := cmds.MarkRoomStatus(ctx, entity.ID(), "CLEANING", "ops@hotel")
		require.NoError(t, err)
		assert.Equal(t, "CLEANING", view.Status)

		require.Len(t, f.logs.appended, 1)
		log := f.logs.appended[0]
		assert.Equal(t, entity.ID(), log.RoomID)
		assert.Equal(t, room.StatusAvailable, log.OldStatus)
		assert.Equal(t, room.StatusCleaning, log.NewStatus)
		assert.Equal(t, "ops@hotel", log.ChangedBy)

		require.Len(t, f.publisher.published, 1)
	})

	t.Run("unknown status rejected before any lookup", func(t *testing.T) {
		f, cmds := newRoomFixture(t)

		_, err := cmds.MarkRoomStatus(ctx, uuid.New(), "HAUNTED", "")
		require.ErrorIs(t, err, commands.ErrInvalidStatusTransition)
		assert.Empty(t, f.logs.appended)
	})

	t.Run("identity transition rejected", func(t *testing.T) {
		f, cmds := newRoomFixture(t)
		entity := f.seed(t, builder.NewRoomBuilder())

		_, err := cmds.MarkRoomStatus(ctx, entity.ID(), "AVAILABLE", "")
		require.ErrorIs(t, err, commands.ErrInvalidStatusTransition)
		assert.Empty(t, f.logs.appended)
		assert.Empty(t, f.publisher.published)
	})

	t.Run("missing room", func(t *testing.T) {
		_, cmds := newRoomFixture(t)

		_, err := cmds.MarkRoomStatus(ctx, uuid.New(), "OCCUPIED", "")
		require.ErrorIs(t, err, commands.ErrRoomNotFound)
	})
}

func TestClaimRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("claim by explicit room", func(t *testing.T) {
		f, cmds := newRoomFixture(t)
		entity := f.seed(t, builder.NewRoomBuilder())
		id := entity.ID()

		view, err := cmds.ClaimRoom(ctx, commands.ClaimRoomRequest{
			PropertyID: entity.PropertyID(),
			RoomID:     &id,
		}, "reservation-engine")
		require.NoError(t, err)
		assert.Equal(t, "OCCUPIED", view.Status)
		require.Len(t, f.logs.appended, 1)
	})

	t.Run("claim by type picks an available room", func(t *testing.T) {
		f, cmds := newRoomFixture(t)
		propertyID := uuid.New()
		typeID := uuid.New()

		occupied := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.PropertyID = propertyID
			b.TypeID = typeID
			b.Number = "101"
			b.Status = room.StatusOccupied
		})
		free := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.PropertyID = propertyID
			b.TypeID = typeID
			b.Number = "102"
		})
		f.seed(t, occupied)
		freeRoom := f.seed(t, free)

		view, err := cmds.ClaimRoom(ctx, commands.ClaimRoomRequest{
			PropertyID: propertyID,
			RoomTypeID: &typeID,
		}, "")
		require.NoError(t, err)
		assert.Equal(t, freeRoom.ID(), view.ID)
		assert.Equal(t, "OCCUPIED", view.Status)
	})

	t.Run("only one of two concurrent claimers wins the last room", func(t *testing.T) {
		f, cmds := newRoomFixture(t)
		propertyID := uuid.New()
		typeID := uuid.New()
		f.seed(t, builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.PropertyID = propertyID
			b.TypeID = typeID
		}))

		req := commands.ClaimRoomRequest{PropertyID: propertyID, RoomTypeID: &typeID}

		first, err := cmds.ClaimRoom(ctx, req, "guest-a")
		require.NoError(t, err)
		assert.Equal(t, "OCCUPIED", first.Status)

		_, err = cmds.ClaimRoom(ctx, req, "guest-b")
		require.ErrorIs(t, err, commands.ErrNoAvailableRoom)
	})

	t.Run("claiming an unavailable room", func(t *testing.T) {
		f, cmds := newRoomFixture(t)
		entity := f.seed(t, builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.Status = room.StatusMaintenance
		}))
		id := entity.ID()

		_, err := cmds.ClaimRoom(ctx, commands.ClaimRoomRequest{
			PropertyID: entity.PropertyID(),
			RoomID:     &id,
		}, "")
		require.ErrorIs(t, err, commands.ErrRoomUnavailable)
		assert.Equal(t, room.StatusMaintenance, f.repo.get(id).Status())
	})

	t.Run("missing room id treated as unavailable", func(t *testing.T) {
		_, cmds := newRoomFixture(t)
		id := uuid.New()

		_, err := cmds.ClaimRoom(ctx, commands.ClaimRoomRequest{PropertyID: uuid.New(), RoomID: &id}, "")
		require.ErrorIs(t, err, commands.ErrRoomUnavailable)
	})

	t.Run("neither room nor type given", func(t *testing.T) {
		_, cmds := newRoomFixture(t)

		_, err := cmds.ClaimRoom(ctx, commands.ClaimRoomRequest{PropertyID: uuid.New()}, "")
		require.ErrorIs(t, err, commands.ErrRoomUnavailable)
	})
}

func TestReleaseRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("release returns room to the pool", func(t *testing.T) {
		f, cmds := newRoomFixture(t)
		entity := f.seed(t, builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.Status = room.StatusOccupied
		}))

		view, err := cmds.ReleaseRoom(ctx, entity.ID(), "")
		require.NoError(t, err)
		assert.Equal(t, "AVAILABLE", view.Status)
	})

	t.Run("double release rejected", func(t *testing.T) {
		f, cmds := newRoomFixture(t)
		entity := f.seed(t, builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.Status = room.StatusOccupied
		}))

		_, err := cmds.ReleaseRoom(ctx, entity.ID(), "")
		require.NoError(t, err)

		_, err = cmds.ReleaseRoom(ctx, entity.ID(), "")
		require.ErrorIs(t, err, commands.ErrInvalidStatusTransition)
	})
}

func TestCreateRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate number within property", func(t *testing.T) {
		f, cmds := newRoomFixture(t)
		entity := f.seed(t, builder.NewRoomBuilder())

		_, err := cmds.CreateRoom(ctx, commands.CreateRoomRequest{
			PropertyID: entity.PropertyID(),
			Number:     entity.Number(),
			TypeID:     entity.TypeID(),
		})
		require.ErrorIs(t, err, commands.ErrDuplicateRoomNumber)
	})

	t.Run("empty number", func(t *testing.T) {
		_, cmds := newRoomFixture(t)

		_, err := cmds.CreateRoom(ctx, commands.CreateRoomRequest{
			PropertyID: uuid.New(),
			Number:     "   ",
			TypeID:     uuid.New(),
		})
		require.ErrorIs(t, err, commands.ErrRoomValidation)
	})
}

// --- fakes -------------------------------------------------------------------

type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTx struct {
	rooms        *fakeRoomRepo
	logs         *fakeStatusLogRepo
	reservations *fakeReservationRepo
}

func (t *fakeTx) Properties() shared.PropertyRepository     { return nil }
func (t *fakeTx) RoomTypes() shared.RoomTypeRepository      { return nil }
func (t *fakeTx) RatePlans() shared.RatePlanRepository      { return nil }
func (t *fakeTx) Rooms() shared.RoomRepository              { return t.rooms }
func (t *fakeTx) StatusLogs() shared.StatusLogRepository    { return t.logs }
func (t *fakeTx) Reservations() shared.ReservationRepository { return t.reservations }
func (t *fakeTx) DB() db.DBTX                               { return nil }

type fakeRoomRepo struct {
	order []uuid.UUID
	rooms map[uuid.UUID]*room.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: map[uuid.UUID]*room.Room{}}
}

func (r *fakeRoomRepo) add(entity *room.Room) {
	r.order = append(r.order, entity.ID())
	r.rooms[entity.ID()] = entity
}

func (r *fakeRoomRepo) get(id uuid.UUID) *room.Room {
	return r.rooms[id]
}

func (r *fakeRoomRepo) Create(_ context.Context, _ db.DBTX, entity *room.Room) error {
	for _, existing := range r.rooms {
		if existing.PropertyID() == entity.PropertyID() && existing.Number() == entity.Number() {
			return infra.WrapRepoErr("room exists", nil, infra.KindDuplicateKey)
		}
	}
	r.add(entity)
	return nil
}

func (r *fakeRoomRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*room.Room, error) {
	entity, ok := r.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return entity, nil
}

func (r *fakeRoomRepo) FindFirstAvailableForUpdate(_ context.Context, _ db.DBTX, propertyID, typeID uuid.UUID) (*room.Room, error) {
	for _, id := range r.order {
		entity := r.rooms[id]
		if entity.PropertyID() == propertyID && entity.TypeID() == typeID && entity.IsAvailable() {
			return entity, nil
		}
	}
	return nil, infra.WrapRepoErr("no available room", pgx.ErrNoRows, infra.KindNotFound)
}

func (r *fakeRoomRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status room.Status) error {
	entity, ok := r.rooms[id]
	if !ok {
		return infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	r.rooms[id] = room.ReconstructRoom(
		entity.ID(), entity.PropertyID(), entity.Number(), entity.TypeID(), status,
		entity.Floor(), entity.Amenities(), entity.CreatedAt(), entity.UpdatedAt(),
	)
	return nil
}

type fakeStatusLogRepo struct {
	appended []room.StatusLog
}

func (r *fakeStatusLogRepo) Append(_ context.Context, _ db.DBTX, log room.StatusLog) error {
	r.appended = append(r.appended, log)
	return nil
}

type fakeRoomViews struct {
	repo *fakeRoomRepo
}

func (v *fakeRoomViews) GetRoom(_ context.Context, id uuid.UUID) (*queries.RoomView, error) {
	entity, ok := v.repo.rooms[id]
	if !ok {
		return nil, queries.ErrRoomNotFound
	}
	return &queries.RoomView{
		ID:         entity.ID(),
		PropertyID: entity.PropertyID(),
		Number:     entity.Number(),
		TypeID:     entity.TypeID(),
		Status:     entity.Status().String(),
		Floor:      entity.Floor(),
		Amenities:  entity.Amenities(),
	}, nil
}

func (v *fakeRoomViews) ListRooms(context.Context, *uuid.UUID) ([]*queries.RoomView, error) {
	return nil, nil
}

func (v *fakeRoomViews) ListProperties(context.Context) ([]*queries.PropertyView, error) {
	return nil, nil
}

func (v *fakeRoomViews) ListRoomTypes(context.Context, *uuid.UUID) ([]*queries.RoomTypeView, error) {
	return nil, nil
}

func (v *fakeRoomViews) ListRatePlans(context.Context, *uuid.UUID) ([]*queries.RatePlanView, error) {
	return nil, nil
}

func (v *fakeRoomViews) ListStatusLogs(context.Context, *uuid.UUID) ([]*queries.StatusLogView, error) {
	return nil, nil
}

type fakePublisher struct {
	published []string
}

func (p *fakePublisher) Publish(_ context.Context, topic string, _ any) error {
	p.published = append(p.published, topic)
	return nil
}
