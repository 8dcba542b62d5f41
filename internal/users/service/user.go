package service

import (
	"context"
	"errors"

	"drportal/internal/auth"
	userserrors "drportal/internal/users/errors"
	"drportal/internal/users/repository"
	"drportal/pkg/config"
	apperrors "drportal/pkg/errors"
	"drportal/pkg/model"
	"drportal/pkg/sanitizer"
)

type UserService interface {
	UpsertProfile(ctx context.Context, email string, user *model.User) (*model.UpdateResult, string, error)
	GetAll(ctx context.Context) ([]*model.User, error)
	AdminStatus(ctx context.Context, email string) (bool, error)
	Promote(ctx context.Context, email string) (*model.UpdateResult, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type userService struct {
	repo   repository.UserRepository
	tokens *auth.TokenManager
	cfg    *config.Config
}

func NewUserService(repo repository.UserRepository, tokens *auth.TokenManager, cfg *config.Config) UserService {
	return &userService{
		repo:   repo,
		tokens: tokens,
		cfg:    cfg,
	}
}

// UpsertProfile stores the caller's profile and returns a fresh access
// token alongside the write result. Any role field in the payload is
// ignored; the repository never writes it.
func (s *userService) UpsertProfile(ctx context.Context, email string, user *model.User) (*model.UpdateResult, string, error) {
	email = sanitizer.NormalizeEmail(email)
	if email == "" {
		return nil, "", apperrors.InvalidInput("email is required")
	}

	user.Email = email
	user.Role = ""
	user.Name = sanitizer.NormalizeName(user.Name)
	user.Phone = sanitizer.NormalizePhone(user.Phone)
	user.Education = sanitizer.TrimAndNormalize(user.Education)
	user.Address = sanitizer.TrimAndNormalize(user.Address)

	result, err := s.repo.Upsert(ctx, email, user)
	if err != nil {
		return nil, "", apperrors.Internal("Failed to upsert user", err)
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return nil, "", err
	}

	s.cfg.Log.Info("User profile upserted", "email", email)
	return result, token, nil
}

func (s *userService) GetAll(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list users", err)
	}
	if users == nil {
		users = []*model.User{}
	}
	return users, nil
}

// AdminStatus answers the public admin lookup; an unknown user is a
// not-found, not a plain false.
func (s *userService) AdminStatus(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, sanitizer.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, userserrors.ErrNotFound) {
			return false, apperrors.NotFound("User")
		}
		return false, apperrors.Internal("Failed to retrieve user", err)
	}
	return user.IsAdmin(), nil
}

// Promote grants the admin role. The caller's own admin check happens
// in the auth middleware before this runs.
func (s *userService) Promote(ctx context.Context, email string) (*model.UpdateResult, error) {
	result, err := s.repo.SetRole(ctx, sanitizer.NormalizeEmail(email), model.RoleAdmin)
	if err != nil {
		if errors.Is(err, userserrors.ErrNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, apperrors.Internal("Failed to promote user", err)
	}

	s.cfg.Log.Info("User promoted to admin", "email", email)
	return result, nil
}

// IsAdmin is the role lookup behind the admin gate. A missing user is
// simply not an admin.
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userserrors.ErrNotFound) {
			return false, nil
		}
		return false, apperrors.Internal("Failed to retrieve user", err)
	}
	return user.IsAdmin(), nil
}
