package service

import (
	"context"

	"drportal/internal/catalog/repository"
	"drportal/pkg/config"
	apperrors "drportal/pkg/errors"
	"drportal/pkg/model"
)

// BookingSource supplies the bookings taken on a given date. Implemented
// by the bookings repository; kept as an interface so availability can be
// tested without Mongo.
type BookingSource interface {
	FindByDate(ctx context.Context, date string) ([]*model.Booking, error)
}

type CatalogService interface {
	ListNames(ctx context.Context) ([]*model.ServiceName, error)
	Availability(ctx context.Context, date string) ([]*model.Service, error)
}

type catalogService struct {
	repo     repository.ServiceRepository
	bookings BookingSource
	cfg      *config.Config
}

func NewCatalogService(repo repository.ServiceRepository, bookings BookingSource, cfg *config.Config) CatalogService {
	return &catalogService{
		repo:     repo,
		bookings: bookings,
		cfg:      cfg,
	}
}

func (s *catalogService) ListNames(ctx context.Context) ([]*model.ServiceName, error) {
	names, err := s.repo.FindNames(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list services", err)
	}
	if names == nil {
		names = []*model.ServiceName{}
	}
	return names, nil
}

// Availability returns every service with its slot list narrowed to the
// slots still open on the given date. Dates are opaque strings matched
// by equality, so an unknown or empty date matches no bookings and
// leaves every slot open. Stored slot order is preserved.
func (s *catalogService) Availability(ctx context.Context, date string) ([]*model.Service, error) {
	services, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to load service catalog", err)
	}

	booked, err := s.bookings.FindByDate(ctx, date)
	if err != nil {
		return nil, apperrors.Internal("Failed to load bookings for date", err)
	}

	// treatment name -> set of booked slot labels
	bookedSlots := make(map[string]map[string]struct{}, len(booked))
	for _, b := range booked {
		if bookedSlots[b.Treatment] == nil {
			bookedSlots[b.Treatment] = make(map[string]struct{})
		}
		bookedSlots[b.Treatment][b.Slot] = struct{}{}
	}

	available := make([]*model.Service, 0, len(services))
	for _, svc := range services {
		taken := bookedSlots[svc.Name]

		open := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, ok := taken[slot]; !ok {
				open = append(open, slot)
			}
		}

		available = append(available, &model.Service{
			ID:    svc.ID,
			Name:  svc.Name,
			Slots: open,
			Price: svc.Price,
		})
	}

	return available, nil
}
