// Package notifications wires the notification module: notification CRUD
// plus the bulk clear-history operation under /api/notifications.
package notifications

import (
	notifhttp "emile-auto/internal/notifications/adapter/http"
	"emile-auto/internal/notifications/adapter/persistence/mongodb"
	"emile-auto/internal/notifications/domain/repository"
	"emile-auto/internal/notifications/usecase"
	"emile-auto/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationsModule represents the complete notification module
type NotificationsModule struct {
	repository repository.NotificationRepository
	usecase    usecase.NotificationUsecaseInterface
	handler    *notifhttp.NotificationHTTPHandler
}

// NewNotificationsModule creates a new notifications module instance
func NewNotificationsModule(db *mongo.Database, log logger.Logger) *NotificationsModule {
	repo := mongodb.NewMongoNotificationRepository(db)
	uc := usecase.NewNotificationUsecase(repo, log)

	return &NotificationsModule{
		repository: repo,
		usecase:    uc,
		handler:    notifhttp.NewNotificationHTTPHandler(uc),
	}
}

// RegisterRoutes registers the notification routes, guarding mutations with
// the given handlers (typically the bearer middleware, when enabled).
func (nm *NotificationsModule) RegisterRoutes(router fiber.Router, guards ...fiber.Handler) {
	nm.handler.SetupNotificationRoutes(router, guards...)
}

// GetUsecase returns the notification usecase for external access
func (nm *NotificationsModule) GetUsecase() usecase.NotificationUsecaseInterface {
	return nm.usecase
}
