// Package cars wires the vehicle listing module: MongoDB persistence
// gateway, usecase, and HTTP routes under /api/cars.
package cars

import (
	carshttp "emile-auto/internal/cars/adapter/http"
	"emile-auto/internal/cars/adapter/persistence/mongodb"
	"emile-auto/internal/cars/domain/repository"
	"emile-auto/internal/cars/usecase"
	"emile-auto/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// CarsModule represents the complete vehicle listing module
type CarsModule struct {
	repository repository.CarRepository
	usecase    usecase.CarUsecaseInterface
	handler    *carshttp.CarHTTPHandler
}

// NewCarsModule creates a new cars module instance
func NewCarsModule(db *mongo.Database, log logger.Logger) *CarsModule {
	repo := mongodb.NewMongoCarRepository(db)
	uc := usecase.NewCarUsecase(repo, log)

	return &CarsModule{
		repository: repo,
		usecase:    uc,
		handler:    carshttp.NewCarHTTPHandler(uc),
	}
}

// RegisterRoutes registers the car routes, guarding mutations with the
// given handlers (typically the bearer middleware, when enabled).
func (cm *CarsModule) RegisterRoutes(router fiber.Router, guards ...fiber.Handler) {
	cm.handler.SetupCarRoutes(router, guards...)
}

// GetUsecase returns the car usecase for external access
func (cm *CarsModule) GetUsecase() usecase.CarUsecaseInterface {
	return cm.usecase
}
