//go:build unit

package room_test

import (
	"testing"

	"hotelier/internal/domain/room"
	"hotelier/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, room.StatusAvailable, actual.Status())
		assert.True(t, actual.IsAvailable())
		assert.Equal(t, "201", actual.Number())
	})

	t.Run("number is trimmed", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().
			With(func(b *builder.RoomBuilder) { b.Number = "  305  " }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "305", actual.Number())
	})

	t.Run("empty number rejected", func(t *testing.T) {
		for _, number := range []string{"", "   "} {
			actual, err := builder.NewRoomBuilder().
				With(func(b *builder.RoomBuilder) { b.Number = number }).
				BuildDomain()
			require.Nil(t, actual)
			require.ErrorIs(t, err, room.ErrEmptyRoomNumber)
		}
	})
}

func TestChangeStatus(t *testing.T) {
	statuses := []room.Status{
		room.StatusAvailable,
		room.StatusOccupied,
		room.StatusCleaning,
		room.StatusMaintenance,
	}

	t.Run("every distinct pair is legal", func(t *testing.T) {
		for _, from := range statuses {
			for _, to := range statuses {
				if from == to {
					continue
				}
				r := builder.NewRoomBuilder().
					With(func(b *builder.RoomBuilder) { b.Status = from }).
					BuildReconstructed()

				require.NoError(t, r.ChangeStatus(to), "%s -> %s", from, to)
				assert.Equal(t, to, r.Status())
			}
		}
	})

	t.Run("identity transitions rejected", func(t *testing.T) {
		for _, s := range statuses {
			r := builder.NewRoomBuilder().
				With(func(b *builder.RoomBuilder) { b.Status = s }).
				BuildReconstructed()

			err := r.ChangeStatus(s)
			require.ErrorIs(t, err, room.ErrSameStatus, "%s -> %s", s, s)
			assert.Equal(t, s, r.Status())
		}
	})

	t.Run("unknown target rejected", func(t *testing.T) {
		r := builder.NewRoomBuilder().BuildReconstructed()
		err := r.ChangeStatus(room.Status("HAUNTED"))
		require.ErrorIs(t, err, room.ErrUnknownStatus)
		assert.Equal(t, room.StatusAvailable, r.Status())
	})
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"AVAILABLE", "OCCUPIED", "CLEANING", "MAINTENANCE"} {
		s, err := room.ParseStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, s.String())
	}

	for _, raw := range []string{"", "available", "BOOKED", "occupied "} {
		_, err := room.ParseStatus(raw)
		require.ErrorIs(t, err, room.ErrUnknownStatus, "input %q", raw)
	}
}
