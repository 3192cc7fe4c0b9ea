package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"clubradar/internal/database"
	"clubradar/internal/middleware"
	"clubradar/internal/modules/auth"
	"clubradar/internal/modules/booking"
	"clubradar/internal/modules/event"
	"clubradar/internal/modules/notify"
	"clubradar/internal/modules/pass"
	"clubradar/internal/modules/payment"
	"clubradar/internal/modules/payout"
	"clubradar/internal/modules/report"
	"clubradar/internal/modules/venue"
	jwtsvc "clubradar/internal/pkg/jwt"
	"clubradar/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	adminEmails := os.Getenv("ADMIN_EMAILS")
	if adminEmails == "" {
		log.Fatal("ADMIN_EMAILS is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	eventRepo := repository.NewEventRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)
	orderRepo := repository.NewPaymentOrderRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := notify.NewHub()
	notifier := notify.NewNotifier(hub, venueRepo)
	wsHandler := notify.NewWSHandler(hub, j)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	venueService := venue.NewService(venueRepo, notifier)
	venueHandler := venue.NewHandler(venueService)

	eventService := event.NewService(eventRepo, venueRepo)
	eventHandler := event.NewHandler(eventService)

	bookingService := booking.NewService(bookingRepo, eventRepo, notifier)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(orderRepo, bookingRepo, bookingService, payment.ConfigFromEnv(), log.Printf)
	paymentHandler := payment.NewHandler(paymentService)

	passService := pass.NewService(bookingRepo, eventRepo, venueRepo)
	passHandler := pass.NewHandler(passService)

	aggregator := payout.NewAggregator(eventRepo, bookingRepo)
	payoutService := payout.NewService(venueRepo, payoutRepo, aggregator, notifier)
	payoutHandler := payout.NewHandler(payoutService)

	reportService := report.NewService(payoutService)
	reportHandler := report.NewHandler(reportService)

	allowlist := middleware.NewEmailAllowlist(adminEmails)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/ws", wsHandler.HandleWebSocket)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		venueHandler.RegisterPublicRoutes(v1)
		eventHandler.RegisterPublicRoutes(v1)
		paymentHandler.RegisterCallbackRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			passHandler.RegisterRoutes(protected)
			paymentHandler.RegisterAuthedRoutes(protected)

			owner := protected.Group("/")
			owner.Use(middleware.VenueOwnerOnly())
			{
				venueHandler.RegisterOwnerRoutes(owner)
				eventHandler.RegisterOwnerRoutes(owner)
			}

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				venueHandler.RegisterAdminRoutes(admin)
				reportHandler.RegisterRoutes(admin)
				payoutHandler.RegisterReadRoutes(admin)

				// Payout mutations additionally require the acting
				// admin's email to be on the operations allowlist.
				payoutAdmin := admin.Group("/")
				payoutAdmin.Use(middleware.RequireAllowlisted(allowlist))
				{
					payoutHandler.RegisterMutationRoutes(payoutAdmin)
				}
			}
		}
	}

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
