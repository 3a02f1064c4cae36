//go:build unit

package roomclient_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"hotelier/internal/infra/roomclient"
	"hotelier/internal/pkg/config"
	"hotelier/internal/usecase/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.Handler) (*roomclient.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return roomclient.New(config.RoomClientConfig{
		BaseURL:    srv.URL,
		Timeout:    2 * time.Second,
		MaxRetries: 2,
	}), srv
}

func TestClaimByID(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	t.Run("decodes a granted claim", func(t *testing.T) {
		var gotBody map[string]string
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/rooms/claim", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"id":%q,"number":"204","status":"OCCUPIED"}`, roomID)
		}))

		claimed, err := client.ClaimByID(ctx, roomID)
		require.NoError(t, err)
		if diff := cmp.Diff(&commands.ClaimedRoom{ID: roomID, Number: "204"}, claimed); diff != "" {
			t.Errorf("claimed room mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, roomID.String(), gotBody["room_id"])
	})

	t.Run("missing room maps to unavailable", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.ClaimByID(ctx, roomID)
		require.ErrorIs(t, err, commands.ErrGatewayRoomUnavailable)
	})

	t.Run("conflict maps to unavailable", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))

		_, err := client.ClaimByID(ctx, roomID)
		require.ErrorIs(t, err, commands.ErrGatewayRoomUnavailable)
	})

	t.Run("5xx is a definitive failure, not retried", func(t *testing.T) {
		var calls atomic.Int32
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.ClaimByID(ctx, roomID)
		require.ErrorIs(t, err, commands.ErrRoomServiceUnavailable)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestClaimByType(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	typeID := uuid.New()

	t.Run("sends property and type", func(t *testing.T) {
		allocated := uuid.New()
		var gotBody map[string]string
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			fmt.Fprintf(w, `{"id":%q,"number":"310"}`, allocated)
		}))

		claimed, err := client.ClaimByType(ctx, propertyID, typeID)
		require.NoError(t, err)
		assert.Equal(t, allocated, claimed.ID)
		assert.Equal(t, propertyID.String(), gotBody["property_id"])
		assert.Equal(t, typeID.String(), gotBody["room_type_id"])
		assert.NotContains(t, gotBody, "room_id")
	})

	t.Run("no free room of the type", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.ClaimByType(ctx, propertyID, typeID)
		require.ErrorIs(t, err, commands.ErrGatewayNoRoomOfType)
	})

	t.Run("garbled response body", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "not json")
		}))

		_, err := client.ClaimByType(ctx, propertyID, typeID)
		require.ErrorIs(t, err, commands.ErrRoomServiceUnavailable)
	})
}

func TestRelease(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	t.Run("release succeeds", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/rooms/"+roomID.String()+"/release", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}))

		require.NoError(t, client.Release(ctx, roomID))
	})

	t.Run("already released", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))

		require.ErrorIs(t, client.Release(ctx, roomID), commands.ErrGatewayRoomUnavailable)
	})

	t.Run("unknown room", func(t *testing.T) {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		require.ErrorIs(t, client.Release(ctx, roomID), commands.ErrGatewayRoomUnavailable)
	})
}

func TestTransportRetries(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	t.Run("recovers after a dropped connection", func(t *testing.T) {
		var calls atomic.Int32
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				// Hijack and sever the connection so the client sees a
				// transport error rather than an HTTP status.
				hj, ok := w.(http.Hijacker)
				require.True(t, ok)
				conn, _, err := hj.Hijack()
				require.NoError(t, err)
				conn.Close()
				return
			}
			fmt.Fprintf(w, `{"id":%q,"number":"118"}`, roomID)
		}))

		claimed, err := client.ClaimByID(ctx, roomID)
		require.NoError(t, err)
		assert.Equal(t, roomID, claimed.ID)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("gives up after exhausting retries", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		client := roomclient.New(config.RoomClientConfig{
			BaseURL:    srv.URL,
			Timeout:    time.Second,
			MaxRetries: 1,
		})

		_, err := client.ClaimByID(ctx, roomID)
		require.ErrorIs(t, err, commands.ErrRoomServiceUnavailable)
	})

	t.Run("honors context cancellation between retries", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()

		client := roomclient.New(config.RoomClientConfig{
			BaseURL:    srv.URL,
			Timeout:    time.Second,
			MaxRetries: 3,
		})

		_, err := client.ClaimByID(cancelCtx, roomID)
		require.Error(t, err)
	})
}
