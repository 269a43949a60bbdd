package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"bookable/internal/auth/token"
	catalogerrors "bookable/internal/catalog/errors"
	"bookable/internal/catalog/repository"
	"bookable/pkg/config"
	apperrors "bookable/pkg/errors"
	"bookable/pkg/model"
	"bookable/pkg/sanitizer"
)

// LoginResult is returned to a successfully authenticated user.
type LoginResult struct {
	Token  string        `json:"token"`
	User   model.User    `json:"user"`
	Tenant *model.Tenant `json:"tenant"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type authService struct {
	repo repository.CatalogRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.CatalogRepository, cfg *config.Config) AuthService {
	return &authService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = sanitizer.SanitizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.InvalidInput("Email and password are required")
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrUserNotFound) {
			return nil, apperrors.Unauthorized("Invalid credentials")
		}
		s.cfg.Log.Error("Failed to look up user", "error", err)
		return nil, apperrors.Internal("Failed to authenticate", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	tenant, err := s.repo.GetTenant(ctx, user.TenantID)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrTenantNotFound) {
			return nil, apperrors.Unauthorized("User is not associated with a valid tenant")
		}
		s.cfg.Log.Error("Failed to look up tenant", "tenant_id", user.TenantID, "error", err)
		return nil, apperrors.Internal("Failed to authenticate", err)
	}

	signed, err := token.Generate(*user, []byte(s.cfg.JWTSecret), s.cfg.TokenTTL)
	if err != nil {
		s.cfg.Log.Error("Failed to sign token", "error", err)
		return nil, apperrors.Internal("Failed to issue token", err)
	}

	s.cfg.Log.Info("User logged in", "user_id", user.ID, "tenant_id", user.TenantID)
	return &LoginResult{
		Token:  signed,
		User:   *user,
		Tenant: tenant,
	}, nil
}
