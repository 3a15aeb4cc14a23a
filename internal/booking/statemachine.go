package booking

import (
	"time"

	"shareit-booking/internal/domain"
)

// NewBooking builds a WAITING booking. Callers run ValidateAvailability first.
func NewBooking(item *domain.Item, booker *domain.User, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		Start:  start,
		End:    end,
		Item:   *item,
		Booker: *booker,
		Status: domain.BookingStatusWaiting,
	}
}

// Decide returns the status a decision moves b to. It fails with
// domain.ErrNotWaiting once b has left WAITING. The returned status must be
// persisted with a conditional update on WAITING, since b is a snapshot.
func Decide(b *domain.Booking, approve bool) (domain.BookingStatus, error) {
	target := domain.BookingStatusRejected
	if approve {
		target = domain.BookingStatusApproved
	}
	if b.Status != domain.BookingStatusWaiting || !b.Status.CanTransitionTo(target) {
		return "", domain.ErrNotWaiting
	}
	return target, nil
}

// EventType names the event published after a booking reaches status.
func EventType(status domain.BookingStatus) string {
	switch status {
	case domain.BookingStatusApproved:
		return domain.BookingEventApproved
	case domain.BookingStatusRejected:
		return domain.BookingEventRejected
	default:
		return domain.BookingEventCreated
	}
}
