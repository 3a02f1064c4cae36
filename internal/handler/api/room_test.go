//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelier/internal/handler/api"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"
	"hotelier/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRoomServer(cmds commands.RoomCommands, qs queries.RoomQueries) *gin.Engine {
	h := api.NewRoomHandler(cmds, qs)
	r := gin.New()
	rooms := r.Group("/api/rooms")
	rooms.POST("", h.CreateRoom)
	rooms.GET("", h.ListRooms)
	rooms.POST("/claim", h.ClaimRoom)
	rooms.GET("/:id", h.GetRoom)
	rooms.PATCH("/:id", h.UpdateRoomStatus)
	rooms.POST("/:id/release", h.ReleaseRoom)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// stubRoomCommands returns the programmed view or error from every operation.
type stubRoomCommands struct {
	view *queries.RoomView
	err  error

	claimReq   *commands.ClaimRoomRequest
	claimActor string
	releasedID *uuid.UUID
	markStatus string
}

func (s *stubRoomCommands) CreateProperty(context.Context, commands.CreatePropertyRequest) (uuid.UUID, error) {
	return uuid.New(), s.err
}

func (s *stubRoomCommands) CreateRoomType(context.Context, commands.CreateRoomTypeRequest) (uuid.UUID, error) {
	return uuid.New(), s.err
}

func (s *stubRoomCommands) CreateRatePlan(context.Context, commands.CreateRatePlanRequest) (uuid.UUID, error) {
	return uuid.New(), s.err
}

func (s *stubRoomCommands) CreateRoom(context.Context, commands.CreateRoomRequest) (*queries.RoomView, error) {
	return s.view, s.err
}

func (s *stubRoomCommands) MarkRoomStatus(_ context.Context, _ uuid.UUID, status, _ string) (*queries.RoomView, error) {
	s.markStatus = status
	return s.view, s.err
}

func (s *stubRoomCommands) ClaimRoom(_ context.Context, req commands.ClaimRoomRequest, actor string) (*queries.RoomView, error) {
	s.claimReq = &req
	s.claimActor = actor
	return s.view, s.err
}

func (s *stubRoomCommands) ReleaseRoom(_ context.Context, id uuid.UUID, _ string) (*queries.RoomView, error) {
	s.releasedID = &id
	return s.view, s.err
}

type stubRoomQueries struct {
	view *queries.RoomView
	err  error
}

func (s *stubRoomQueries) GetRoom(context.Context, uuid.UUID) (*queries.RoomView, error) {
	return s.view, s.err
}

func (s *stubRoomQueries) ListRooms(context.Context, *uuid.UUID) ([]*queries.RoomView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*queries.RoomView{s.view}, nil
}

func (s *stubRoomQueries) ListProperties(context.Context) ([]*queries.PropertyView, error) {
	return nil, s.err
}

func (s *stubRoomQueries) ListRoomTypes(context.Context, *uuid.UUID) ([]*queries.RoomTypeView, error) {
	return nil, s.err
}

func (s *stubRoomQueries) ListRatePlans(context.Context, *uuid.UUID) ([]*queries.RatePlanView, error) {
	return nil, s.err
}

func (s *stubRoomQueries) ListStatusLogs(context.Context, *uuid.UUID) ([]*queries.StatusLogView, error) {
	return nil, s.err
}

func TestClaimRoomEndpoint(t *testing.T) {
	t.Run("grants a claim with id, number and status", func(t *testing.T) {
		view := builder.NewRoomBuilder().
			With(func(b *builder.RoomBuilder) { b.Status = "OCCUPIED" }).
			BuildView()
		cmds := &stubRoomCommands{view: view}
		server := newRoomServer(cmds, &stubRoomQueries{})

		w := doJSON(t, server, http.MethodPost, "/api/rooms/claim", gin.H{
			"room_id": view.ID.String(),
		})

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, view.ID.String(), body["id"])
		assert.Equal(t, view.Number, body["number"])
		assert.Equal(t, "OCCUPIED", body["status"])
		require.NotNil(t, cmds.claimReq)
		assert.Equal(t, view.ID, *cmds.claimReq.RoomID)
	})

	t.Run("no free room of the type yields 404", func(t *testing.T) {
		server := newRoomServer(&stubRoomCommands{err: commands.ErrNoAvailableRoom}, &stubRoomQueries{})

		w := doJSON(t, server, http.MethodPost, "/api/rooms/claim", gin.H{
			"property_id":  uuid.New().String(),
			"room_type_id": uuid.New().String(),
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown room yields 404", func(t *testing.T) {
		server := newRoomServer(&stubRoomCommands{err: commands.ErrRoomNotFound}, &stubRoomQueries{})

		w := doJSON(t, server, http.MethodPost, "/api/rooms/claim", gin.H{
			"room_id": uuid.New().String(),
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("occupied room yields 409", func(t *testing.T) {
		server := newRoomServer(&stubRoomCommands{err: commands.ErrRoomUnavailable}, &stubRoomQueries{})

		w := doJSON(t, server, http.MethodPost, "/api/rooms/claim", gin.H{
			"room_id": uuid.New().String(),
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestReleaseRoomEndpoint(t *testing.T) {
	t.Run("returns the freed room", func(t *testing.T) {
		view := builder.NewRoomBuilder().BuildView()
		cmds := &stubRoomCommands{view: view}
		server := newRoomServer(cmds, &stubRoomQueries{})

		w := doJSON(t, server, http.MethodPost, fmt.Sprintf("/api/rooms/%s/release", view.ID), nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "AVAILABLE", body["status"])
		require.NotNil(t, cmds.releasedID)
		assert.Equal(t, view.ID, *cmds.releasedID)
	})

	t.Run("already available room yields 409", func(t *testing.T) {
		server := newRoomServer(&stubRoomCommands{err: commands.ErrInvalidStatusTransition}, &stubRoomQueries{})

		w := doJSON(t, server, http.MethodPost, fmt.Sprintf("/api/rooms/%s/release", uuid.New()), nil)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed id yields 400", func(t *testing.T) {
		server := newRoomServer(&stubRoomCommands{}, &stubRoomQueries{})

		w := doJSON(t, server, http.MethodPost, "/api/rooms/not-a-uuid/release", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateRoomStatusEndpoint(t *testing.T) {
	t.Run("passes the requested status through", func(t *testing.T) {
		view := builder.NewRoomBuilder().
			With(func(b *builder.RoomBuilder) { b.Status = "CLEANING" }).
			BuildView()
		cmds := &stubRoomCommands{view: view}
		server := newRoomServer(cmds, &stubRoomQueries{})

		w := doJSON(t, server, http.MethodPatch, "/api/rooms/"+view.ID.String(), gin.H{
			"status": "CLEANING",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "CLEANING", cmds.markStatus)
	})

	t.Run("missing status field yields 400", func(t *testing.T) {
		server := newRoomServer(&stubRoomCommands{}, &stubRoomQueries{})

		w := doJSON(t, server, http.MethodPatch, "/api/rooms/"+uuid.New().String(), gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate room number yields 409", func(t *testing.T) {
		server := newRoomServer(&stubRoomCommands{err: commands.ErrDuplicateRoomNumber}, &stubRoomQueries{})

		w := doJSON(t, server, http.MethodPost, "/api/rooms", gin.H{
			"property_id": uuid.New().String(),
			"number":      "101",
			"type_id":     uuid.New().String(),
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestGetRoomEndpoint(t *testing.T) {
	t.Run("renders the room view", func(t *testing.T) {
		view := builder.NewRoomBuilder().BuildView()
		server := newRoomServer(&stubRoomCommands{}, &stubRoomQueries{view: view})

		w := doJSON(t, server, http.MethodGet, "/api/rooms/"+view.ID.String(), nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, view.Number, body["number"])
		assert.Equal(t, view.TypeName, body["typeName"])
	})

	t.Run("unknown room yields 404", func(t *testing.T) {
		server := newRoomServer(&stubRoomCommands{}, &stubRoomQueries{err: queries.ErrRoomNotFound})

		w := doJSON(t, server, http.MethodGet, "/api/rooms/"+uuid.New().String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
