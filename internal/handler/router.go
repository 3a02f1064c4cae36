package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotelier/internal/handler/api"
	"hotelier/internal/handler/middleware"
	"hotelier/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// NewRoomRouter wires the room registry surface.
func NewRoomRouter(engine *gin.Engine, cfg config.Config, roomHandler *api.RoomHandler, actor *middleware.ActorMiddleware) {
	setupMiddleware(engine, cfg, actor)

	engine.GET("/health", healthCheck)
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/properties"), []route{
			{Method: http.MethodPost, Path: "", Handler: roomHandler.CreateProperty},
			{Method: http.MethodGet, Path: "", Handler: roomHandler.ListProperties},
		})
		addRoutes(apiGroup.Group("/room-types"), []route{
			{Method: http.MethodPost, Path: "", Handler: roomHandler.CreateRoomType},
			{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRoomTypes},
		})
		addRoutes(apiGroup.Group("/rate-plans"), []route{
			{Method: http.MethodPost, Path: "", Handler: roomHandler.CreateRatePlan},
			{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRatePlans},
		})
		addRoutes(apiGroup.Group("/rooms"), []route{
			{Method: http.MethodPost, Path: "", Handler: roomHandler.CreateRoom},
			{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRooms},
			{Method: http.MethodPost, Path: "/claim", Handler: roomHandler.ClaimRoom},
			{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.GetRoom},
			{Method: http.MethodPatch, Path: "/:id", Handler: roomHandler.UpdateRoomStatus},
			{Method: http.MethodPost, Path: "/:id/release", Handler: roomHandler.ReleaseRoom},
		})
		addRoutes(apiGroup.Group("/room-status-logs"), []route{
			{Method: http.MethodGet, Path: "", Handler: roomHandler.ListStatusLogs},
		})
	}
}

// NewReservationRouter wires the reservation engine surface.
func NewReservationRouter(engine *gin.Engine, cfg config.Config, reservationHandler *api.ReservationHandler, actor *middleware.ActorMiddleware) {
	setupMiddleware(engine, cfg, actor)

	engine.GET("/health", healthCheck)
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	reservations := engine.Group("/api/reservations")
	{
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
			{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
			{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
			{Method: http.MethodPatch, Path: "/:id", Handler: reservationHandler.UpdateReservation},
			{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.DeleteReservation},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.CancelReservation},
			{Method: http.MethodPost, Path: "/:id/checkin", Handler: reservationHandler.CheckIn},
			{Method: http.MethodPost, Path: "/:id/checkout", Handler: reservationHandler.CheckOut},
		})
	}
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, actor *middleware.ActorMiddleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(actor.ResolveActor())
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
