package service

import (
	"context"
	"time"

	"shareit-booking/internal/domain"
)

type BookingService interface {
	CreateBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*domain.Booking, error)
	DecideBooking(ctx context.Context, bookingID, deciderID int64, approve bool) (*domain.Booking, error)
	GetBooking(ctx context.Context, viewerID, bookingID int64) (*domain.Booking, error)
	ListBookerBookings(ctx context.Context, userID int64, state string, page domain.Page) ([]domain.Booking, error)
	ListOwnerBookings(ctx context.Context, userID int64, state string, page domain.Page) ([]domain.Booking, error)
}

// EventPublisher receives booking lifecycle events after they are stored.
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, event domain.BookingEvent) error
}
