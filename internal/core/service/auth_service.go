package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/portfolio-site/blog-api/internal/core/domain"
	"github.com/portfolio-site/blog-api/internal/core/ports"
)

// AuthService implements the admin credential lifecycle: registration,
// login, profile updates and removal.
type AuthService struct {
	repo   ports.AdminRepository
	hasher *PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.AdminRepository, hasher *PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates the admin credential. A duplicate email fails with
// domain.ErrAlreadyRegistered.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.Admin, error) {
	if email == "" || password == "" {
		return nil, domain.ErrBadRequest
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrObjectNotFound) {
		return nil, err
	}

	salt, hash, err := s.hasher.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	admin := &domain.Admin{
		ID:             uuid.NewString(),
		Email:          email,
		Salt:           salt,
		HashedPassword: hash,
		EmailVerified:  false,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, admin)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("admin_id", created.ID).Msg("admin registered")
	return created, nil
}

// Login verifies the credentials and issues a session token. A wrong
// password is indistinguishable from an unknown email or a deactivated
// account: all fail with domain.ErrUnauthorizedAdmin.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrUnauthorizedAdmin
	}

	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrObjectNotFound) {
			return "", nil, domain.ErrUnauthorizedAdmin
		}
		return "", nil, err
	}

	if !admin.IsActive || !s.hasher.VerifyPassword(password, admin.Salt, admin.HashedPassword) {
		return "", nil, domain.ErrUnauthorizedAdmin
	}

	token, err := s.tokens.Issue(admin.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("admin_id", admin.ID).Msg("admin logged in")
	return token, admin, nil
}

// GetAdmin returns the admin by id.
func (s *AuthService) GetAdmin(ctx context.Context, id string) (*domain.Admin, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateAdmin applies a partial profile update. A new password gets a fresh
// salt; the old hash is never reused.
func (s *AuthService) UpdateAdmin(ctx context.Context, id string, input ports.UpdateAdminInput) (*domain.Admin, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != "" {
		admin.Email = *input.Email
	}
	if input.Password != nil && *input.Password != "" {
		salt, hash, err := s.hasher.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		admin.Salt = salt
		admin.HashedPassword = hash
	}
	admin.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info().Str("admin_id", admin.ID).Msg("admin updated")
	return admin, nil
}

// DeleteAdmin removes the admin credential. This is the only hard-delete
// path for a credential and requires an authenticated, CSRF-guarded request.
func (s *AuthService) DeleteAdmin(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("admin_id", id).Msg("admin deleted")
	return nil
}
