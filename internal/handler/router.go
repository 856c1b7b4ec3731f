package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rehearsal-rooms/internal/handler/api"
	"rehearsal-rooms/internal/handler/middleware"
	"rehearsal-rooms/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	reservationHandler *api.ReservationHandler,
	campusHandler *api.CampusHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	writeLimiter *middleware.WriteRateLimiter,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservationHandler, campusHandler, adminHandler, authMiddleware, writeLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	reservationHandler *api.ReservationHandler,
	campusHandler *api.CampusHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	writeLimiter *middleware.WriteRateLimiter,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			limited := []gin.HandlerFunc{writeLimiter.Limit()}
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation, Mw: limited},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.GetUserReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.CancelReservation, Mw: limited},
				{Method: http.MethodPost, Path: "/:id/key-pickup", Handler: reservationHandler.PickUpKey, Mw: limited},
				{Method: http.MethodPost, Path: "/:id/key-return", Handler: reservationHandler.ReturnKey, Mw: limited},
			})
		}

		campuses := apiGroup.Group("/campuses")
		campuses.Use(authMiddleware.RequireAuth())
		{
			addRoutes(campuses, []route{
				{Method: http.MethodGet, Path: "", Handler: campusHandler.ListCampuses},
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: campusHandler.ListCampusReservations},
				{Method: http.MethodGet, Path: "/:id/week", Handler: campusHandler.GetWeekSchedule},
				{Method: http.MethodGet, Path: "/:id/key-pickups", Handler: campusHandler.ListKeyPickups, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/blackouts", Handler: adminHandler.CreateBlackout},
				{Method: http.MethodGet, Path: "/blackouts", Handler: adminHandler.ListBlackouts},
				{Method: http.MethodDelete, Path: "/blackouts/:id", Handler: adminHandler.DeleteBlackout},
				{Method: http.MethodGet, Path: "/reservations", Handler: adminHandler.ListReservations},
			})
		}
	}
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
