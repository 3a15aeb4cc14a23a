package postgres

import (
	"database/sql"

	"shareit-booking/internal/repository"
)

type Store struct {
	db       *sql.DB
	Users    repository.UserRepository
	Items    repository.ItemRepository
	Bookings repository.BookingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:       db,
		Users:    NewUserRepository(db),
		Items:    NewItemRepository(db),
		Bookings: NewBookingRepository(db),
	}
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
