package service

import (
	"context"
	"errors"

	doctorserrors "drportal/internal/doctors/errors"
	"drportal/internal/doctors/repository"
	"drportal/internal/doctors/validator"
	"drportal/pkg/config"
	apperrors "drportal/pkg/errors"
	"drportal/pkg/model"
	"drportal/pkg/sanitizer"
)

type DoctorService interface {
	Create(ctx context.Context, doctor *model.Doctor) (*model.InsertResult, error)
	GetAll(ctx context.Context) ([]*model.Doctor, error)
	DeleteByEmail(ctx context.Context, email string) (*model.DeleteResult, error)
}

type doctorService struct {
	repo      repository.DoctorRepository
	validator *validator.DoctorValidator
	cfg       *config.Config
}

func NewDoctorService(repo repository.DoctorRepository, validator *validator.DoctorValidator, cfg *config.Config) DoctorService {
	return &doctorService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *doctorService) Create(ctx context.Context, doctor *model.Doctor) (*model.InsertResult, error) {
	doctor.Name = sanitizer.NormalizeName(doctor.Name)
	doctor.Email = sanitizer.NormalizeEmail(doctor.Email)
	doctor.Specialty = sanitizer.NormalizeLabel(doctor.Specialty)
	doctor.Education = sanitizer.TrimAndNormalize(doctor.Education)

	if err := s.validator.Validate(doctor); err != nil {
		return nil, apperrors.Validation(err.Error(), nil)
	}

	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, apperrors.Internal("Failed to create doctor", err)
	}

	s.cfg.Log.Info("Doctor added", "email", doctor.Email, "specialty", doctor.Specialty)
	return &model.InsertResult{InsertedID: doctor.ID}, nil
}

func (s *doctorService) GetAll(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list doctors", err)
	}
	if doctors == nil {
		doctors = []*model.Doctor{}
	}
	return doctors, nil
}

func (s *doctorService) DeleteByEmail(ctx context.Context, email string) (*model.DeleteResult, error) {
	email = sanitizer.NormalizeEmail(email)
	if email == "" {
		return nil, apperrors.InvalidInput("email is required")
	}

	result, err := s.repo.DeleteByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, doctorserrors.ErrNotFound) {
			return nil, apperrors.NotFound("Doctor")
		}
		return nil, apperrors.Internal("Failed to delete doctor", err)
	}

	s.cfg.Log.Info("Doctor removed", "email", email)
	return result, nil
}
