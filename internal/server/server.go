package server

import (
	"context"
	"net/http"

	"github.com/AminElhag/Elixir/internal/auth"
	"github.com/AminElhag/Elixir/internal/booking"
	"github.com/AminElhag/Elixir/internal/calendar"
	"github.com/AminElhag/Elixir/internal/config"
	"github.com/AminElhag/Elixir/internal/product"
	"github.com/AminElhag/Elixir/internal/session"
	"github.com/AminElhag/Elixir/internal/trainer"

	"github.com/gin-gonic/gin"
)

type Server struct {
	router   *gin.Engine
	config   *config.Config
	sessions *session.Manager
	httpSrv  *http.Server
}

// Deps bundles the wired services the router needs. The caller owns
// construction so the memory-backed build can skip the database entirely.
type Deps struct {
	Sessions    *session.Manager
	AuthService *auth.Service
	Bookings    booking.Service
	Trainers    trainer.Provider
	Products    product.Provider
}

func New(cfg *config.Config, deps Deps) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(100, 200))

	authHandler := auth.NewHandler(deps.AuthService, deps.Sessions, cfg.JWTSecret)
	trainerHandler := trainer.NewHandler(deps.Trainers)
	productHandler := product.NewHandler(deps.Products)
	bookingHandler := booking.NewHandler(deps.Bookings, deps.Trainers)
	calendarHandler := calendar.NewHandler(deps.Bookings)

	public := router.Group("/auth")
	{
		public.POST("/login", authHandler.Login)
		public.POST("/register", authHandler.Register)
		public.POST("/verify-otp", authHandler.VerifyOTP)
		public.GET("/status", authHandler.Status)
	}

	sessionMiddleware := auth.RequireSession(deps.Sessions)
	protected := router.Group("/")
	protected.Use(sessionMiddleware)
	{
		protected.GET("/me", authHandler.Me)
		protected.POST("/auth/logout", authHandler.Logout)

		protected.GET("/trainers", trainerHandler.ListTrainers)
		protected.GET("/trainers/:trainerID", trainerHandler.GetTrainer)

		protected.GET("/products", productHandler.ListProducts)
		protected.GET("/products/:productID", productHandler.GetProduct)

		protected.GET("/bookings", bookingHandler.ListBookings)
		protected.POST("/bookings", bookingHandler.CreateBooking)
		protected.POST("/bookings/:bookingID/cancel", bookingHandler.CancelBooking)

		protected.GET("/calendar/:year/:month", calendarHandler.MonthGrid)
		protected.GET("/calendar/day/:date", calendarHandler.Day)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router:   router,
		config:   cfg,
		sessions: deps.Sessions,
	}
}

func (s *Server) Start(port string) error {
	s.httpSrv = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
