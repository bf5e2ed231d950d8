package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tidyjacks/internal/config"
	"tidyjacks/internal/database"
	"tidyjacks/internal/middleware"
	"tidyjacks/internal/modules/admin"
	"tidyjacks/internal/modules/booking"
	"tidyjacks/internal/modules/payment"
	"tidyjacks/internal/modules/photos"
	"tidyjacks/internal/modules/pricing"
	"tidyjacks/internal/pkg/mailer"
	"tidyjacks/internal/repository"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.Database.DSN == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	customerRepo := repository.NewCustomerRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	intentRepo := repository.NewPaymentIntentRepository(db)

	var mail mailer.Sender
	if cfg.Mail.SMTPHost != "" {
		mail = mailer.NewSMTPSender(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.SMTPUser, cfg.Mail.SMTPPassword, cfg.Mail.FromAddress)
	} else {
		log.Println("SMTP not configured, emails will be logged only")
		mail = mailer.LogSender{}
	}

	var paymentService *payment.Service
	var verifier *payment.Verifier
	if cfg.Stripe.SecretKey != "" {
		gw := payment.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)
		paymentService = payment.NewService(gw, intentRepo, bookingRepo, mail, cfg.Mail.BusinessEmail, log.Printf)
		verifier = payment.NewVerifier(gw, log.Printf)
	} else {
		log.Println("STRIPE_SECRET_KEY not set, payment endpoints will report unavailable")
		paymentService = payment.NewService(nil, intentRepo, bookingRepo, mail, cfg.Mail.BusinessEmail, log.Printf)
		verifier = payment.NewVerifier(nil, log.Printf)
	}
	paymentHandler := payment.NewHandler(paymentService, log.Printf)

	bookingService := booking.NewService(bookingRepo, customerRepo, verifier, mail, cfg.Mail.BusinessEmail, log.Printf)
	bookingHandler := booking.NewHandler(bookingService, log.Printf)

	photoService := photos.NewService(photoRepo, bookingRepo, customerRepo, mail, cfg.Uploads.BaseDir, log.Printf)
	photoHandler := photos.NewHandler(photoService, log.Printf)

	adminService := admin.NewService(bookingRepo, customerRepo, log.Printf)
	adminHandler := admin.NewHandler(adminService, log.Printf)

	pricingHandler := pricing.NewHandler()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.Static(photos.StaticURLBase, cfg.Uploads.BaseDir)

	generalLimiter := middleware.NewInMemoryRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	paymentLimiter := middleware.NewInMemoryRateLimiter(cfg.RateLimit.PaymentMaxReq, cfg.RateLimit.Window)

	api := r.Group("/api")
	{
		// Webhook first: signature-verified, never rate limited, so a
		// burst of Stripe retries cannot be throttled into data loss.
		paymentHandler.RegisterWebhookRoutes(api)

		public := api.Group("/")
		public.Use(middleware.RateLimit(generalLimiter))
		{
			pricingHandler.RegisterRoutes(public)
			bookingHandler.RegisterRoutes(public)
		}

		pay := api.Group("/")
		pay.Use(middleware.RateLimit(paymentLimiter))
		{
			paymentHandler.RegisterRoutes(pay)
		}

		protected := api.Group("/admin")
		protected.Use(middleware.AdminAuth(cfg.Admin.Token, cfg.Admin.TokenHash))
		{
			adminHandler.RegisterRoutes(protected)
			photoHandler.RegisterRoutes(protected)
		}
	}

	log.Printf("level=info msg=starting server port=%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
