package http

import (
	"emile-auto/internal/notifications/domain/model"
	"emile-auto/internal/notifications/usecase"
	sharederrors "emile-auto/internal/shared/errors"

	"github.com/gofiber/fiber/v2"
)

// NotificationHTTPHandler maps the notification routes onto the usecase.
type NotificationHTTPHandler struct {
	usecase usecase.NotificationUsecaseInterface
}

// NewNotificationHTTPHandler creates a new notification HTTP handler
func NewNotificationHTTPHandler(uc usecase.NotificationUsecaseInterface) *NotificationHTTPHandler {
	return &NotificationHTTPHandler{usecase: uc}
}

// SetupNotificationRoutes registers the notification routes. clear-all must
// register before the :id delete so it is not captured as an id.
func (h *NotificationHTTPHandler) SetupNotificationRoutes(router fiber.Router, guards ...fiber.Handler) {
	notifications := router.Group("/notifications")

	notifications.Get("/", h.List)
	notifications.Post("/", append(guards, h.Create)...)
	notifications.Put("/:id/read", h.MarkRead)
	notifications.Delete("/clear-all", append(guards, h.ClearAll)...)
	notifications.Delete("/:id", append(guards, h.Delete)...)
}

func (h *NotificationHTTPHandler) List(c *fiber.Ctx) error {
	notifications, err := h.usecase.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(notifications)
}

func (h *NotificationHTTPHandler) Create(c *fiber.Ctx) error {
	var n model.Notification
	if err := c.BodyParser(&n); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	created, err := h.usecase.Create(c.UserContext(), &n)
	if err != nil {
		if sharederrors.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *NotificationHTTPHandler) MarkRead(c *fiber.Ctx) error {
	n, err := h.usecase.MarkRead(c.UserContext(), c.Params("id"))
	if err != nil {
		if sharederrors.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Notification not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(n)
}

func (h *NotificationHTTPHandler) Delete(c *fiber.Ctx) error {
	if err := h.usecase.Delete(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Notification removed",
	})
}

// ClearAll wipes the notification history unconditionally.
func (h *NotificationHTTPHandler) ClearAll(c *fiber.Ctx) error {
	if err := h.usecase.ClearAll(c.UserContext()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Notification history cleared",
	})
}
