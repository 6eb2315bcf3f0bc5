package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mntax-dev/mntax/internal/config"
	"github.com/mntax-dev/mntax/internal/schedule"
)

// Server hosts the HTTP API over a bracket schedule.
type Server struct {
	cfg *config.Config
	svc *schedule.Service
}

func New(cfg *config.Config, svc *schedule.Service) *Server {
	return &Server{cfg: cfg, svc: svc}
}

// Router builds the gin engine with middleware and all routes registered.
func (s *Server) Router() *gin.Engine {
	if s.cfg.Server.Mode != "" {
		gin.SetMode(s.cfg.Server.Mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(configureCORS(s.cfg.Server.CORSOrigins))
	router.Use(RequestID())

	h := NewTaxHandler(s.svc)

	router.GET("/health", h.Health)

	v1 := router.Group("/v1")
	{
		v1.GET("/basic-tax", h.BasicTax)
		v1.GET("/schedule", h.Schedule)
		v1.GET("/schedule/:status", h.ScheduleForStatus)
	}

	return router
}

// Run starts the server on the configured address and blocks.
func (s *Server) Run() error {
	return s.Router().Run(s.cfg.Server.Addr)
}

func configureCORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsConfig.AllowOrigins = origins
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", RequestIDHeader}
	corsConfig.ExposeHeaders = []string{RequestIDHeader}
	return cors.New(corsConfig)
}
