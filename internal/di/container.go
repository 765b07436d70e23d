// Package di owns module construction and lifecycle for the application.
package di

import (
	"context"
	"fmt"
	"sync"
	"time"

	"emile-auto/internal/auth"
	"emile-auto/internal/auth/config"
	"emile-auto/internal/cars"
	"emile-auto/internal/notifications"
	"emile-auto/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container wires the three modules over one MongoDB database.
type Container struct {
	mu sync.RWMutex

	// Module instances
	AuthModule          *auth.AuthModule
	CarsModule          *cars.CarsModule
	NotificationsModule *notifications.NotificationsModule

	// Database connection
	MongoDB *mongo.Database

	// Configuration
	AuthConfig *config.Config

	// Logger
	Logger logger.Logger
}

// NewContainer creates a new container
func NewContainer(log logger.Logger) *Container {
	return &Container{Logger: log}
}

// InitializeAuth initializes the authentication module. The container takes
// ownership of the database's client; Close disconnects it.
func (c *Container) InitializeAuth(mongoDB *mongo.Database, authConfig *config.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.MongoDB = mongoDB
	c.AuthConfig = authConfig

	authModule, err := auth.NewAuthModule(authConfig, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create auth module: %w", err)
	}

	c.AuthModule = authModule
	return nil
}

// InitializeResources initializes the cars and notifications modules.
// Auth must be initialized first: its middleware guards the mutating routes
// when write protection is enabled.
func (c *Container) InitializeResources() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.AuthModule == nil {
		return fmt.Errorf("auth module must be initialized before resource modules")
	}
	if c.MongoDB == nil {
		return fmt.Errorf("MongoDB must be initialized before resource modules")
	}

	c.CarsModule = cars.NewCarsModule(c.MongoDB, c.Logger)
	c.NotificationsModule = notifications.NewNotificationsModule(c.MongoDB, c.Logger)
	return nil
}

// WriteGuards returns the middleware chain for mutating routes: the bearer
// guard when AUTH_PROTECT_WRITES is set, otherwise nothing, matching the
// original deployment's unenforced CRUD routes.
func (c *Container) WriteGuards() []fiber.Handler {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.AuthConfig != nil && c.AuthConfig.ProtectWrites && c.AuthModule != nil {
		return []fiber.Handler{c.AuthModule.GetMiddleware().Protect()}
	}
	return nil
}

// HealthCheck verifies that the container's shared resources are reachable.
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.MongoDB == nil {
		return fmt.Errorf("MongoDB not initialized")
	}
	if err := c.MongoDB.Client().Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB unreachable: %w", err)
	}
	if c.AuthModule == nil || c.CarsModule == nil || c.NotificationsModule == nil {
		return fmt.Errorf("one or more modules not initialized")
	}
	return nil
}

// Close releases container resources, disconnecting the Mongo client handed
// over in InitializeAuth. Closing an uninitialized container is a no-op.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.MongoDB == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.MongoDB.Client().Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect MongoDB: %w", err)
	}
	c.MongoDB = nil
	return nil
}
