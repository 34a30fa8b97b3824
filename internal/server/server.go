package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"hotelbooking/internal/auth"
	"hotelbooking/internal/booking"
	"hotelbooking/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	limiter    *RateLimiter
	db         *sqlx.DB
	config     *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, notifier booking.Notifier, events EventQueue) *Server {
	roomRepo := booking.NewRoomRepository(db)
	bookingRepo := booking.NewBookingRepository(db)
	bookingService := booking.NewService(roomRepo, bookingRepo, booking.SystemClock{})
	bookingHandler := booking.NewHandler(bookingService, roomRepo, bookingRepo, notifier)

	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 3*time.Minute)
	router := NewRouter(cfg, bookingHandler, Health(db, events), limiter)

	return &Server{
		router: router,
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		limiter: limiter,
		db:      db,
		config:  cfg,
	}
}

// NewRouter registers every route and middleware on a fresh engine.
// Customer routes share limiter; the caller owns stopping it.
func NewRouter(cfg *config.Config, bookingHandler *booking.Handler, health gin.HandlerFunc, limiter *RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	router.GET("/health", health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(RateLimitMiddleware(limiter), authMiddleware)
	{
		protected.POST("/bookings", bookingHandler.CreateBooking)
		protected.GET("/bookings/occupied", bookingHandler.GetFullyOccupiedDates)
		protected.GET("/rooms", bookingHandler.ListRooms)
		protected.GET("/rooms/available", bookingHandler.FindAvailableRoom)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admin.GET("/bookings", bookingHandler.ListBookings)
		admin.POST("/rooms", bookingHandler.CreateRoom)
	}

	return router
}

// Start blocks serving HTTP until Shutdown is called, then returns
// http.ErrServerClosed.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the rate limiter and drains in-flight requests. Calling it
// before Start makes a later Start return immediately.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	if err := s.httpServer.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
