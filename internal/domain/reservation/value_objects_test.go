//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotelier/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStayPeriod(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	in := now.AddDate(0, 0, 1)
	out := now.AddDate(0, 0, 4)

	t.Run("valid window", func(t *testing.T) {
		stay, err := reservation.NewStayPeriod(in, out, now)
		require.NoError(t, err)
		assert.Equal(t, in, stay.CheckIn())
		assert.Equal(t, out, stay.CheckOut())
		assert.Equal(t, 3, stay.Nights())
	})

	t.Run("ordering violations", func(t *testing.T) {
		_, err := reservation.NewStayPeriod(out, in, now)
		require.ErrorIs(t, err, reservation.ErrStayOrder)

		// Equal timestamps fail ordering, not the past rule
		_, err = reservation.NewStayPeriod(in, in, now)
		require.ErrorIs(t, err, reservation.ErrStayOrder)
	})

	t.Run("past windows", func(t *testing.T) {
		_, err := reservation.NewStayPeriod(now.AddDate(0, 0, -2), out, now)
		require.ErrorIs(t, err, reservation.ErrStayInPast)

		_, err = reservation.NewStayPeriod(now.AddDate(0, 0, -4), now.AddDate(0, 0, -1), now)
		require.ErrorIs(t, err, reservation.ErrStayInPast)
	})

	t.Run("check-in exactly now is allowed", func(t *testing.T) {
		_, err := reservation.NewStayPeriod(now, out, now)
		require.NoError(t, err)
	})

	t.Run("reconstruct skips rules", func(t *testing.T) {
		stay := reservation.ReconstructStayPeriod(now.AddDate(0, 0, -10), now.AddDate(0, 0, -7))
		assert.Equal(t, 3, stay.Nights())
	})
}

func TestPrice(t *testing.T) {
	t.Run("non-negative amounts", func(t *testing.T) {
		for _, amount := range []float64{0, 0.01, 999.99} {
			p, err := reservation.NewPrice(amount)
			require.NoError(t, err)
			assert.Equal(t, amount, p.Amount())
		}
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := reservation.NewPrice(-0.01)
		require.ErrorIs(t, err, reservation.ErrNegativePrice)
	})

	t.Run("optional pointer form", func(t *testing.T) {
		p, err := reservation.NewPricePtr(nil)
		require.NoError(t, err)
		assert.Nil(t, p)
		assert.Nil(t, p.AmountPtr())

		amount := 120.5
		p, err = reservation.NewPricePtr(&amount)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, amount, *p.AmountPtr())

		negative := -5.0
		_, err = reservation.NewPricePtr(&negative)
		require.ErrorIs(t, err, reservation.ErrNegativePrice)
	})
}
