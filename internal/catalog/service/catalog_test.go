package service

import (
	"context"
	"io"
	"reflect"
	"testing"

	"drportal/pkg/config"
	"drportal/pkg/logger"
	"drportal/pkg/model"
)

type mockServiceRepository struct {
	findAllFunc   func(ctx context.Context) ([]*model.Service, error)
	findNamesFunc func(ctx context.Context) ([]*model.ServiceName, error)
}

func (m *mockServiceRepository) FindAll(ctx context.Context) ([]*model.Service, error) {
	return m.findAllFunc(ctx)
}

func (m *mockServiceRepository) FindNames(ctx context.Context) ([]*model.ServiceName, error) {
	return m.findNamesFunc(ctx)
}

type mockBookingSource struct {
	findByDateFunc func(ctx context.Context, date string) ([]*model.Booking, error)
}

func (m *mockBookingSource) FindByDate(ctx context.Context, date string) ([]*model.Booking, error) {
	return m.findByDateFunc(ctx, date)
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: "error", Output: io.Discard, Service: "test"}),
	}
}

func TestAvailabilitySubtractsBookedSlots(t *testing.T) {
	repo := &mockServiceRepository{
		findAllFunc: func(ctx context.Context) ([]*model.Service, error) {
			return []*model.Service{
				{Name: "Teeth Cleaning", Slots: []string{"8:00 AM", "9:00 AM", "10:00 AM"}, Price: 80},
				{Name: "Whitening", Slots: []string{"8:00 AM", "9:00 AM"}, Price: 200},
			}, nil
		},
	}
	bookings := &mockBookingSource{
		findByDateFunc: func(ctx context.Context, date string) ([]*model.Booking, error) {
			if date != "May 16, 2026" {
				t.Errorf("FindByDate called with %q", date)
			}
			return []*model.Booking{
				{Treatment: "Teeth Cleaning", Date: "May 16, 2026", Slot: "9:00 AM"},
			}, nil
		},
	}

	svc := NewCatalogService(repo, bookings, testConfig())

	got, err := svc.Availability(context.Background(), "May 16, 2026")
	if err != nil {
		t.Fatalf("Availability() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Availability() returned %d services, want 2", len(got))
	}

	wantCleaning := []string{"8:00 AM", "10:00 AM"}
	if !reflect.DeepEqual(got[0].Slots, wantCleaning) {
		t.Errorf("cleaning slots = %v, want %v", got[0].Slots, wantCleaning)
	}

	wantWhitening := []string{"8:00 AM", "9:00 AM"}
	if !reflect.DeepEqual(got[1].Slots, wantWhitening) {
		t.Errorf("whitening slots = %v, want %v", got[1].Slots, wantWhitening)
	}
}

func TestAvailabilityOnlyMatchingTreatmentIsNarrowed(t *testing.T) {
	repo := &mockServiceRepository{
		findAllFunc: func(ctx context.Context) ([]*model.Service, error) {
			return []*model.Service{
				{Name: "Root Canal", Slots: []string{"1:00 PM", "2:00 PM"}, Price: 500},
			}, nil
		},
	}
	bookings := &mockBookingSource{
		findByDateFunc: func(ctx context.Context, date string) ([]*model.Booking, error) {
			// booked slot exists but for a different treatment
			return []*model.Booking{
				{Treatment: "Whitening", Date: date, Slot: "1:00 PM"},
			}, nil
		},
	}

	svc := NewCatalogService(repo, bookings, testConfig())

	got, err := svc.Availability(context.Background(), "May 16, 2026")
	if err != nil {
		t.Fatalf("Availability() error = %v", err)
	}
	if len(got[0].Slots) != 2 {
		t.Errorf("slots = %v, want all slots open", got[0].Slots)
	}
}

func TestAvailabilityUnknownDateLeavesEverythingOpen(t *testing.T) {
	repo := &mockServiceRepository{
		findAllFunc: func(ctx context.Context) ([]*model.Service, error) {
			return []*model.Service{
				{Name: "Teeth Cleaning", Slots: []string{"8:00 AM", "9:00 AM"}, Price: 80},
			}, nil
		},
	}
	bookings := &mockBookingSource{
		findByDateFunc: func(ctx context.Context, date string) ([]*model.Booking, error) {
			return nil, nil
		},
	}

	svc := NewCatalogService(repo, bookings, testConfig())

	got, err := svc.Availability(context.Background(), "")
	if err != nil {
		t.Fatalf("Availability() error = %v", err)
	}
	if len(got[0].Slots) != 2 {
		t.Errorf("slots = %v, want all slots open", got[0].Slots)
	}
}

func TestAvailabilityFullyBookedServiceStaysListed(t *testing.T) {
	repo := &mockServiceRepository{
		findAllFunc: func(ctx context.Context) ([]*model.Service, error) {
			return []*model.Service{
				{Name: "Whitening", Slots: []string{"8:00 AM"}, Price: 200},
			}, nil
		},
	}
	bookings := &mockBookingSource{
		findByDateFunc: func(ctx context.Context, date string) ([]*model.Booking, error) {
			return []*model.Booking{
				{Treatment: "Whitening", Date: date, Slot: "8:00 AM"},
			}, nil
		},
	}

	svc := NewCatalogService(repo, bookings, testConfig())

	got, err := svc.Availability(context.Background(), "May 16, 2026")
	if err != nil {
		t.Fatalf("Availability() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("fully booked service was dropped from the response")
	}
	if len(got[0].Slots) != 0 {
		t.Errorf("slots = %v, want empty", got[0].Slots)
	}
}

func TestListNamesReturnsEmptySliceNotNil(t *testing.T) {
	repo := &mockServiceRepository{
		findNamesFunc: func(ctx context.Context) ([]*model.ServiceName, error) {
			return nil, nil
		},
	}

	svc := NewCatalogService(repo, nil, testConfig())

	got, err := svc.ListNames(context.Background())
	if err != nil {
		t.Fatalf("ListNames() error = %v", err)
	}
	if got == nil {
		t.Error("ListNames() returned nil, want empty slice")
	}
}
