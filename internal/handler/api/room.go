package api

import (
	"errors"
	"net/http"

	reqdto "hotelier/internal/handler/dto/request"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/handler/httperr"
	"hotelier/internal/handler/middleware"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	commands commands.RoomCommands
	queries  queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, qs queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create property
// @Tags properties
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePropertyRequest true "Property"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /properties [post]
func (h *RoomHandler) CreateProperty(c *gin.Context) {
	var req reqdto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.commands.CreateProperty(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.writeRoomError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List properties
// @Tags properties
// @Produce json
// @Success 200 {array} resdto.PropertyResponse
// @Router /properties [get]
func (h *RoomHandler) ListProperties(c *gin.Context) {
	views, err := h.queries.ListProperties(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.PropertyResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromPropertyView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create room type
// @Tags room-types
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomTypeRequest true "Room type"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /room-types [post]
func (h *RoomHandler) CreateRoomType(c *gin.Context) {
	var req reqdto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.commands.CreateRoomType(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.writeRoomError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List room types
// @Tags room-types
// @Produce json
// @Param property_id query string false "Filter by property"
// @Success 200 {array} resdto.RoomTypeResponse
// @Router /room-types [get]
func (h *RoomHandler) ListRoomTypes(c *gin.Context) {
	propertyID, ok := optionalUUIDQuery(c, "property_id")
	if !ok {
		return
	}

	views, err := h.queries.ListRoomTypes(c.Request.Context(), propertyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.RoomTypeResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromRoomTypeView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create rate plan
// @Tags rate-plans
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRatePlanRequest true "Rate plan"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /rate-plans [post]
func (h *RoomHandler) CreateRatePlan(c *gin.Context) {
	var req reqdto.CreateRatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.commands.CreateRatePlan(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.writeRoomError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List rate plans
// @Tags rate-plans
// @Produce json
// @Param property_id query string false "Filter by property"
// @Success 200 {array} resdto.RatePlanResponse
// @Router /rate-plans [get]
func (h *RoomHandler) ListRatePlans(c *gin.Context) {
	propertyID, ok := optionalUUIDQuery(c, "property_id")
	if !ok {
		return
	}

	views, err := h.queries.ListRatePlans(c.Request.Context(), propertyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.RatePlanResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromRatePlanView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.CreateRoom(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.writeRoomError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param property_id query string false "Filter by property"
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	propertyID, ok := optionalUUIDQuery(c, "property_id")
	if !ok {
		return
	}

	views, err := h.queries.ListRooms(c.Request.Context(), propertyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := pathUUID(c, "id", "Invalid room ID format")
	if !ok {
		return
	}

	view, err := h.queries.GetRoom(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Update room status
// @Description Move a room to a new status; identical-status updates are rejected
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomStatusRequest true "New status"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id} [patch]
func (h *RoomHandler) UpdateRoomStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id", "Invalid room ID format")
	if !ok {
		return
	}

	var req reqdto.UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.MarkRoomStatus(c.Request.Context(), id, req.Status, middleware.GetActor(c))
	if err != nil {
		h.writeRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Claim a room
// @Description Atomically allocate and mark a room OCCUPIED, by explicit ID or by room type
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.ClaimRoomRequest true "Claim request"
// @Success 200 {object} resdto.ClaimedRoomResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/claim [post]
func (h *RoomHandler) ClaimRoom(c *gin.Context) {
	var req reqdto.ClaimRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.ClaimRoom(c.Request.Context(), req.ToCommand(), middleware.GetActor(c))
	if err != nil {
		h.writeRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClaimedRoom(view))
}

// @Summary Release a room
// @Description Return a claimed room to the available pool
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.ClaimedRoomResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id}/release [post]
func (h *RoomHandler) ReleaseRoom(c *gin.Context) {
	id, ok := pathUUID(c, "id", "Invalid room ID format")
	if !ok {
		return
	}

	view, err := h.commands.ReleaseRoom(c.Request.Context(), id, middleware.GetActor(c))
	if err != nil {
		h.writeRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClaimedRoom(view))
}

// @Summary List room status logs
// @Tags rooms
// @Produce json
// @Param room_id query string false "Filter by room"
// @Success 200 {array} resdto.StatusLogResponse
// @Router /room-status-logs [get]
func (h *RoomHandler) ListStatusLogs(c *gin.Context) {
	roomID, ok := optionalUUIDQuery(c, "room_id")
	if !ok {
		return
	}

	views, err := h.queries.ListStatusLogs(c.Request.Context(), roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.StatusLogResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromStatusLogView(v)
	}
	c.JSON(http.StatusOK, response)
}

func (h *RoomHandler) writeRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
	case errors.Is(err, commands.ErrNoAvailableRoom):
		c.JSON(http.StatusNotFound, gin.H{"error": "No available room for the requested type"})
	case errors.Is(err, commands.ErrInvalidStatusTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid room status transition"})
	case errors.Is(err, commands.ErrRoomUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "Room is not available"})
	case errors.Is(err, commands.ErrDuplicateRoomNumber):
		c.JSON(http.StatusConflict, gin.H{"error": "Room number already exists for this property"})
	case errors.Is(err, commands.ErrRoomValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed"})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func pathUUID(c *gin.Context, name, badFormatMsg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": badFormatMsg})
		return uuid.Nil, false
	}
	return id, true
}

func optionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return nil, false
	}
	return &id, true
}
