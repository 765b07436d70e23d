package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"emile-auto/internal/auth/config"
	"emile-auto/internal/di"
	"emile-auto/internal/shared/contextkeys"
	"emile-auto/internal/shared/httplog"
	"emile-auto/internal/shared/logger"

	"github.com/caarlos0/env/v6"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ServerConfig holds server configuration
type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:""`
	Port           string `env:"PORT" envDefault:"5000"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://localhost:5173"`
	FrontendURL    string `env:"FRONTEND_URL"`
	Environment    string `env:"ENVIRONMENT" envDefault:"development"`
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	serverCfg := &ServerConfig{}
	if err := env.Parse(serverCfg); err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}

	appLogger := logger.NewLogger()
	appLogger.Info("Application configuration loaded")

	// Auth/store configuration. Missing MONGODB_URI or JWT_SECRET_KEY is
	// fatal: there is no point starting the listener without them.
	authConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(authConfig.MongoDBURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	appLogger.Info("MongoDB connection established")

	mongoDB := mongoClient.Database(authConfig.DatabaseName)

	// Initialize modules through the container. The container owns the
	// Mongo client from here on and disconnects it on Close.
	container := di.NewContainer(appLogger)
	defer func() {
		if err := container.Close(); err != nil {
			appLogger.Errorf("Failed to close container: %v", err)
		}
	}()

	if err := container.InitializeAuth(mongoDB, authConfig); err != nil {
		log.Fatalf("Failed to initialize auth module: %v", err)
	}
	if err := container.InitializeResources(); err != nil {
		log.Fatalf("Failed to initialize resource modules: %v", err)
	}
	appLogger.Info("Modules initialized")

	// Setup HTTP server (Fiber) with middleware
	app := fiber.New(fiber.Config{
		AppName:      "Emile Auto API v1.0",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			appLogger.Errorf("HTTP Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Internal server error",
			})
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(func(c *fiber.Ctx) error {
		// Make the request id visible to the structured logger.
		if reqID, ok := c.Locals("requestid").(string); ok {
			c.SetUserContext(context.WithValue(c.UserContext(), contextkeys.RequestIDKey, reqID))
		}
		return c.Next()
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins(serverCfg),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	accessLog := newAccessLogger(serverCfg.Environment)
	defer accessLog.Sync()
	app.Use(httplog.New(accessLog))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		healthCtx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		if err := container.HealthCheck(healthCtx); err != nil {
			appLogger.Errorf("Health check failed: %v", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":  "UNHEALTHY",
				"message": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"status":    "HEALTHY",
			"message":   "Emile Auto API is running",
			"timestamp": time.Now().UTC(),
		})
	})

	// Register module routes under /api
	api := app.Group("/api")
	guards := container.WriteGuards()
	container.AuthModule.RegisterRoutes(api)
	container.CarsModule.RegisterRoutes(api, guards...)
	container.NotificationsModule.RegisterRoutes(api, guards...)

	serverAddr := fmt.Sprintf("%s:%s", serverCfg.Host, serverCfg.Port)
	appLogger.Infof("Starting HTTP server on %s", serverAddr)

	// Start server in a goroutine for graceful shutdown
	serverShutdown := make(chan error, 1)
	go func() {
		serverShutdown <- app.Listen(serverAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverShutdown:
		if err != nil {
			log.Fatalf("Server startup failed: %v", err)
		}
	case sig := <-quit:
		appLogger.Infof("Received shutdown signal: %v", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Errorf("Server forced to shutdown: %v", err)
		}
		appLogger.Info("HTTP server stopped")
	}
}

// allowedOrigins joins the configured origin list with the deployed
// frontend URL, when one is set.
func allowedOrigins(cfg *ServerConfig) string {
	origins := cfg.AllowedOrigins
	if cfg.FrontendURL != "" {
		origins = origins + "," + cfg.FrontendURL
	}
	return strings.TrimSuffix(origins, ",")
}

func newAccessLogger(environment string) *zap.Logger {
	if environment == "production" || environment == "prod" {
		l, err := zap.NewProduction()
		if err != nil {
			log.Fatalf("Failed to create access logger: %v", err)
		}
		return l
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create access logger: %v", err)
	}
	return l
}
