package service

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"drportal/internal/auth"
	userserrors "drportal/internal/users/errors"
	"drportal/pkg/config"
	apperrors "drportal/pkg/errors"
	"drportal/pkg/logger"
	"drportal/pkg/model"
)

type mockUserRepository struct {
	findByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	findAllFunc     func(ctx context.Context) ([]*model.User, error)
	upsertFunc      func(ctx context.Context, email string, user *model.User) (*model.UpdateResult, error)
	setRoleFunc     func(ctx context.Context, email string, role string) (*model.UpdateResult, error)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.findByEmailFunc(ctx, email)
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	return m.findAllFunc(ctx)
}

func (m *mockUserRepository) Upsert(ctx context.Context, email string, user *model.User) (*model.UpdateResult, error) {
	return m.upsertFunc(ctx, email, user)
}

func (m *mockUserRepository) SetRole(ctx context.Context, email string, role string) (*model.UpdateResult, error) {
	return m.setRoleFunc(ctx, email, role)
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: "error", Output: io.Discard, Service: "test"}),
	}
}

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func TestUpsertProfileIssuesToken(t *testing.T) {
	repo := &mockUserRepository{
		upsertFunc: func(ctx context.Context, email string, user *model.User) (*model.UpdateResult, error) {
			if email != "jane@example.com" {
				t.Errorf("Upsert email = %q, want normalized lowercase", email)
			}
			return &model.UpdateResult{MatchedCount: 0, ModifiedCount: 0, UpsertedID: "u1"}, nil
		},
	}
	tokens := testTokens()
	svc := NewUserService(repo, tokens, testConfig())

	result, token, err := svc.UpsertProfile(context.Background(), " Jane@Example.COM ", &model.User{Name: "Jane"})
	if err != nil {
		t.Fatalf("UpsertProfile() error = %v", err)
	}
	if result.UpsertedID != "u1" {
		t.Errorf("UpsertedID = %q, want %q", result.UpsertedID, "u1")
	}

	email, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if email != "jane@example.com" {
		t.Errorf("token email = %q, want %q", email, "jane@example.com")
	}
}

func TestUpsertProfileStripsRole(t *testing.T) {
	repo := &mockUserRepository{
		upsertFunc: func(ctx context.Context, email string, user *model.User) (*model.UpdateResult, error) {
			if user.Role != "" {
				t.Errorf("role %q reached the repository", user.Role)
			}
			return &model.UpdateResult{}, nil
		},
	}
	svc := NewUserService(repo, testTokens(), testConfig())

	_, _, err := svc.UpsertProfile(context.Background(), "jane@example.com", &model.User{Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("UpsertProfile() error = %v", err)
	}
}

func TestAdminStatus(t *testing.T) {
	tests := []struct {
		name       string
		user       *model.User
		repoErr    error
		wantAdmin  bool
		wantStatus int
	}{
		{name: "admin user", user: &model.User{Email: "a@b.c", Role: model.RoleAdmin}, wantAdmin: true},
		{name: "regular user", user: &model.User{Email: "a@b.c"}, wantAdmin: false},
		{name: "unknown user", repoErr: userserrors.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{
				findByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
					return tt.user, tt.repoErr
				},
			}
			svc := NewUserService(repo, testTokens(), testConfig())

			isAdmin, err := svc.AdminStatus(context.Background(), "a@b.c")
			if tt.wantStatus != 0 {
				appErr := apperrors.AsAppError(err)
				if appErr == nil || appErr.StatusCode() != tt.wantStatus {
					t.Fatalf("AdminStatus() error = %v, want status %d", err, tt.wantStatus)
				}
				return
			}
			if err != nil {
				t.Fatalf("AdminStatus() error = %v", err)
			}
			if isAdmin != tt.wantAdmin {
				t.Errorf("AdminStatus() = %v, want %v", isAdmin, tt.wantAdmin)
			}
		})
	}
}

func TestPromoteUnknownUser(t *testing.T) {
	repo := &mockUserRepository{
		setRoleFunc: func(ctx context.Context, email string, role string) (*model.UpdateResult, error) {
			return nil, userserrors.ErrNotFound
		},
	}
	svc := NewUserService(repo, testTokens(), testConfig())

	_, err := svc.Promote(context.Background(), "ghost@example.com")
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.StatusCode() != http.StatusNotFound {
		t.Fatalf("Promote() error = %v, want not found", err)
	}
}

func TestPromoteSetsAdminRole(t *testing.T) {
	repo := &mockUserRepository{
		setRoleFunc: func(ctx context.Context, email string, role string) (*model.UpdateResult, error) {
			if role != model.RoleAdmin {
				t.Errorf("SetRole role = %q, want %q", role, model.RoleAdmin)
			}
			return &model.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	svc := NewUserService(repo, testTokens(), testConfig())

	result, err := svc.Promote(context.Background(), "jane@example.com")
	if err != nil {
		t.Fatalf("Promote() error = %v", err)
	}
	if result.ModifiedCount != 1 {
		t.Errorf("ModifiedCount = %d, want 1", result.ModifiedCount)
	}
}

func TestIsAdminMissingUserIsNotAdmin(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return nil, userserrors.ErrNotFound
		},
	}
	svc := NewUserService(repo, testTokens(), testConfig())

	isAdmin, err := svc.IsAdmin(context.Background(), "ghost@example.com")
	if err != nil {
		t.Fatalf("IsAdmin() error = %v", err)
	}
	if isAdmin {
		t.Error("IsAdmin() = true for a missing user")
	}
}
