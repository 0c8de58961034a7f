package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ecomm/internal/handlers"
	"ecomm/internal/middleware"
	"ecomm/internal/models"
	"ecomm/internal/repositories"
	"ecomm/internal/services"
	"ecomm/pkg/assets"
	"ecomm/pkg/payment"
	"ecomm/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "ecomm.db")
	viper.SetDefault("JWT_SECRET", "change_me")
	viper.SetDefault("COOKIE_NAME", "token")
	viper.SetDefault("REQUEST_TIMEOUT", "10s")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("STRIPE_API_KEY", "")
	viper.SetDefault("CLOUDINARY_URL", "")
	viper.SetDefault("CLOUDINARY_FOLDER", "products")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	cookieName := viper.GetString("COOKIE_NAME")
	requestTimeout := viper.GetDuration("REQUEST_TIMEOUT")

	// --- Database ---
	var dialector gorm.Dialector
	switch viper.GetString("DB_DRIVER") {
	case "postgres":
		dialector = postgres.Open(viper.GetString("DB_DSN"))
	default:
		dialector = sqlite.Open(viper.GetString("DB_DSN"))
	}
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Cart{}, &models.Order{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- External collaborators ---
	cloudinaryURL := viper.GetString("CLOUDINARY_URL")
	if cloudinaryURL == "" {
		log.Fatal("CLOUDINARY_URL is required")
	}
	assetStore, err := assets.NewCloudinaryStore(cloudinaryURL, viper.GetString("CLOUDINARY_FOLDER"))
	if err != nil {
		log.Fatalf("Failed to initialize asset store: %v", err)
	}
	gateway := payment.NewStripeGateway(viper.GetString("STRIPE_SECRET_KEY"))

	// RabbitMQ is optional; without it order events are skipped.
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set; order events disabled")
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"))
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo, assetStore)
	cartService := services.NewCartService(cartRepo)
	orderService := services.NewOrderService(orderRepo, mqClient)
	paymentService := services.NewPaymentService(gateway, viper.GetString("STRIPE_API_KEY"))

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(authService, userService, cookieName)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	// --- API routes ---
	// Three tiers share the /api/v1 prefix: public, authenticated, and
	// admin-gated. Auth and admin run as per-route chains, so public routes
	// stay public and the admin gate short-circuits before any handler runs.
	apiV1 := app.Group("/api/v1", middleware.Deadline(requestTimeout))
	auth := middleware.AuthRequired(authService, cookieName)
	admin := middleware.AdminRequired()

	userHandler.RegisterRoutes(apiV1, auth, admin)
	productHandler.RegisterRoutes(apiV1, auth, admin)
	cartHandler.RegisterRoutes(apiV1, auth, admin)
	orderHandler.RegisterRoutes(apiV1, auth, admin)
	paymentHandler.RegisterRoutes(apiV1, auth)

	// --- Health check ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Order event consumer ---
	if mqClient != nil {
		log.Println("Starting RabbitMQ consumer for order events...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received order event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}
		if consumerErr := mqClient.ConsumeOrderEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
