package http_test

import (
	"context"
	"time"

	"shareit-booking/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*domain.Booking, error) {
	args := m.Called(ctx, bookerID, itemID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) DecideBooking(ctx context.Context, bookingID, deciderID int64, approve bool) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, deciderID, approve)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) GetBooking(ctx context.Context, viewerID, bookingID int64) (*domain.Booking, error) {
	args := m.Called(ctx, viewerID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) ListBookerBookings(ctx context.Context, userID int64, state string, page domain.Page) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, state, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingService) ListOwnerBookings(ctx context.Context, userID int64, state string, page domain.Page) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, state, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
