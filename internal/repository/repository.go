package repository

import (
	"context"

	"shareit-booking/internal/domain"
)

// Lookups return domain.ErrNotFound (wrapped) when the row does not exist.

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	ListIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
}

type BookingRepository interface {
	// Create inserts b and assigns b.ID.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// ListByBooker and ListByItemIDs return bookings ordered by start, latest first.
	ListByBooker(ctx context.Context, bookerID int64) ([]domain.Booking, error)
	ListByItemIDs(ctx context.Context, itemIDs []int64) ([]domain.Booking, error)
	// UpdateStatusIfWaiting moves booking id to status in a single
	// conditional write. It returns domain.ErrNotWaiting when the stored
	// status is no longer WAITING, and domain.ErrNotFound when id is unknown.
	UpdateStatusIfWaiting(ctx context.Context, id int64, status domain.BookingStatus) error
}
