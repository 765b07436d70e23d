package usecase

import (
	"context"
	"crypto/subtle"

	"emile-auto/internal/auth/config"
	"emile-auto/internal/auth/domain/repository"
	sharederrors "emile-auto/internal/shared/errors"
	"emile-auto/internal/shared/logger"
)

// AdminSubject is the fixed subject id embedded in every issued token.
const AdminSubject = "admin_emile_auto"

// LoginRequest is the credential pair submitted to /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the signed bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// AuthUsecaseInterface defines the auth module's application operations.
type AuthUsecaseInterface interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error)
}

// AdminCredentials is the configured admin identity, carried explicitly so
// the comparison is testable without touching process environment.
type AdminCredentials struct {
	Email    string
	Password string
}

// Match reports whether the submitted pair equals the configured pair.
// Both fields must match; callers get no hint about which one was wrong.
func (c AdminCredentials) Match(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(c.Email), []byte(email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(c.Password), []byte(password)) == 1
	return emailOK && passwordOK
}

type authUsecase struct {
	creds  AdminCredentials
	tokens repository.TokenService
	log    logger.Logger
}

// NewAuthUsecase creates the auth usecase from configuration.
func NewAuthUsecase(cfg *config.Config, tokens repository.TokenService, log logger.Logger) AuthUsecaseInterface {
	return &authUsecase{
		creds: AdminCredentials{
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
		},
		tokens: tokens,
		log:    log.WithComponent("auth"),
	}
}

// Login verifies the credential pair and mints a bearer token on success.
// Stateless: no attempt counter, no audit trail beyond the log line.
func (uc *authUsecase) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if !uc.creds.Match(req.Email, req.Password) {
		uc.log.WithContext(ctx).Warn("rejected login attempt")
		return nil, sharederrors.ErrInvalidCredentials
	}

	token, err := uc.tokens.GenerateToken(ctx, AdminSubject)
	if err != nil {
		return nil, sharederrors.WrapError(err, "failed to sign token")
	}

	uc.log.WithContext(ctx).Info("admin authenticated")
	return &LoginResponse{Token: token}, nil
}

// ValidateToken verifies a bearer token previously issued by Login.
func (uc *authUsecase) ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error) {
	return uc.tokens.ValidateToken(ctx, tokenString)
}
