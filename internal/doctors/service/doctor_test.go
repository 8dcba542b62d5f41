package service

import (
	"context"
	"io"
	"net/http"
	"testing"

	doctorserrors "drportal/internal/doctors/errors"
	"drportal/internal/doctors/validator"
	"drportal/pkg/config"
	apperrors "drportal/pkg/errors"
	"drportal/pkg/logger"
	"drportal/pkg/model"
)

type mockDoctorRepository struct {
	createFunc        func(ctx context.Context, doctor *model.Doctor) error
	findAllFunc       func(ctx context.Context) ([]*model.Doctor, error)
	deleteByEmailFunc func(ctx context.Context, email string) (*model.DeleteResult, error)
}

func (m *mockDoctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	return m.createFunc(ctx, doctor)
}

func (m *mockDoctorRepository) FindAll(ctx context.Context) ([]*model.Doctor, error) {
	return m.findAllFunc(ctx)
}

func (m *mockDoctorRepository) DeleteByEmail(ctx context.Context, email string) (*model.DeleteResult, error) {
	return m.deleteByEmailFunc(ctx, email)
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: "error", Output: io.Discard, Service: "test"}),
	}
}

func newTestService(repo *mockDoctorRepository) DoctorService {
	cfg := testConfig()
	return NewDoctorService(repo, validator.NewDoctorValidator(cfg.Log), cfg)
}

func TestCreateDoctor(t *testing.T) {
	repo := &mockDoctorRepository{
		createFunc: func(ctx context.Context, doctor *model.Doctor) error {
			doctor.ID = "doc1"
			if doctor.Email != "dr.house@example.com" {
				t.Errorf("email = %q, want normalized lowercase", doctor.Email)
			}
			return nil
		},
	}
	svc := newTestService(repo)

	result, err := svc.Create(context.Background(), &model.Doctor{
		Name:      "Gregory House",
		Email:     "Dr.House@Example.com",
		Specialty: "Diagnostics",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if result.InsertedID != "doc1" {
		t.Errorf("InsertedID = %q, want %q", result.InsertedID, "doc1")
	}
}

func TestCreateDoctorRejectsInvalid(t *testing.T) {
	svc := newTestService(&mockDoctorRepository{})

	_, err := svc.Create(context.Background(), &model.Doctor{Name: "X"})
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.StatusCode() != http.StatusUnprocessableEntity {
		t.Fatalf("Create() error = %v, want validation error", err)
	}
}

func TestDeleteDoctorNotFound(t *testing.T) {
	repo := &mockDoctorRepository{
		deleteByEmailFunc: func(ctx context.Context, email string) (*model.DeleteResult, error) {
			return nil, doctorserrors.ErrNotFound
		},
	}
	svc := newTestService(repo)

	_, err := svc.DeleteByEmail(context.Background(), "ghost@example.com")
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.StatusCode() != http.StatusNotFound {
		t.Fatalf("DeleteByEmail() error = %v, want not found", err)
	}
}

func TestDeleteDoctor(t *testing.T) {
	repo := &mockDoctorRepository{
		deleteByEmailFunc: func(ctx context.Context, email string) (*model.DeleteResult, error) {
			return &model.DeleteResult{DeletedCount: 1}, nil
		},
	}
	svc := newTestService(repo)

	result, err := svc.DeleteByEmail(context.Background(), "dr.house@example.com")
	if err != nil {
		t.Fatalf("DeleteByEmail() error = %v", err)
	}
	if result.DeletedCount != 1 {
		t.Errorf("DeletedCount = %d, want 1", result.DeletedCount)
	}
}
