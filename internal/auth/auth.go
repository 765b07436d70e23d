// Package auth wires the admin authentication module: configured admin
// credentials checked at login, JWT bearer tokens minted on success.
package auth

import (
	"fmt"

	authhttp "emile-auto/internal/auth/adapter/http"
	"emile-auto/internal/auth/adapter/security"
	"emile-auto/internal/auth/config"
	"emile-auto/internal/auth/usecase"
	"emile-auto/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// AuthModule represents the complete authentication module
type AuthModule struct {
	usecase usecase.AuthUsecaseInterface
	handler *authhttp.AuthHTTPHandler
	config  *config.Config
}

// NewAuthModule creates a new authentication module instance
func NewAuthModule(cfg *config.Config, log logger.Logger) (*AuthModule, error) {
	tokenSvc, err := security.NewJWTokenService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	authUsecase := usecase.NewAuthUsecase(cfg, tokenSvc, log)
	handler := authhttp.NewAuthHTTPHandler(authUsecase)

	return &AuthModule{
		usecase: authUsecase,
		handler: handler,
		config:  cfg,
	}, nil
}

// RegisterRoutes registers authentication routes with the provided router
func (am *AuthModule) RegisterRoutes(router fiber.Router) {
	am.handler.SetupAuthRoutes(router, am.GetMiddleware())
}

// GetUsecase returns the auth usecase for external access
func (am *AuthModule) GetUsecase() usecase.AuthUsecaseInterface {
	return am.usecase
}

// GetMiddleware returns the auth middleware
func (am *AuthModule) GetMiddleware() *authhttp.AuthMiddleware {
	return authhttp.NewAuthMiddleware(am.usecase)
}
