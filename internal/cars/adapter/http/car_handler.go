package http

import (
	"errors"

	"emile-auto/internal/cars/domain/model"
	"emile-auto/internal/cars/domain/repository"
	"emile-auto/internal/cars/usecase"
	sharederrors "emile-auto/internal/shared/errors"

	"github.com/gofiber/fiber/v2"
)

// CarHTTPHandler maps the vehicle routes onto the car usecase.
type CarHTTPHandler struct {
	usecase usecase.CarUsecaseInterface
}

// NewCarHTTPHandler creates a new car HTTP handler
func NewCarHTTPHandler(uc usecase.CarUsecaseInterface) *CarHTTPHandler {
	return &CarHTTPHandler{usecase: uc}
}

// SetupCarRoutes registers the vehicle routes. guards apply to mutating
// routes only; read routes are always open. The view route must register
// before the catch-all :id routes.
func (h *CarHTTPHandler) SetupCarRoutes(router fiber.Router, guards ...fiber.Handler) {
	cars := router.Group("/cars")

	cars.Get("/", h.List)
	cars.Put("/view/:id", h.IncrementViews)
	cars.Get("/:id", h.GetByID)

	cars.Post("/add", append(guards, h.Create)...)
	cars.Put("/:id", append(guards, h.Replace)...)
	cars.Delete("/:id", append(guards, h.Delete)...)
}

// List returns every car, newest first. An empty collection is a 200 with
// an empty array.
func (h *CarHTTPHandler) List(c *fiber.Ctx) error {
	cars, err := h.usecase.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(cars)
}

// GetByID returns one car. A malformed id is indistinguishable from a store
// failure here; only a well-formed absent id yields 404.
func (h *CarHTTPHandler) GetByID(c *fiber.Ctx) error {
	car, err := h.usecase.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if sharederrors.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Car not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(car)
}

// Create inserts a new listing. Schema violations come back as 400 with the
// gateway's message untouched.
func (h *CarHTTPHandler) Create(c *fiber.Ctx) error {
	var car model.Car
	if err := c.BodyParser(&car); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	created, err := h.usecase.Create(c.UserContext(), &car)
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

// Replace overwrites the full document, last write wins.
func (h *CarHTTPHandler) Replace(c *fiber.Ctx) error {
	var car model.Car
	if err := c.BodyParser(&car); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	replaced, err := h.usecase.Replace(c.UserContext(), c.Params("id"), &car)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID), sharederrors.IsValidation(err):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		case sharederrors.IsNotFound(err):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Car not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Internal server error",
			})
		}
	}

	return c.JSON(replaced)
}

// Delete removes a car. Deleting twice succeeds both times.
func (h *CarHTTPHandler) Delete(c *fiber.Ctx) error {
	if err := h.usecase.Delete(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Car removed",
	})
}

// IncrementViews bumps the view counter and returns the new value.
func (h *CarHTTPHandler) IncrementViews(c *fiber.Ctx) error {
	views, err := h.usecase.IncrementViews(c.UserContext(), c.Params("id"))
	if err != nil {
		if sharederrors.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Car not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(fiber.Map{
		"views": views,
	})
}
