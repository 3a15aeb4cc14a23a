// Package memory keeps users, items and bookings in process memory. It backs
// the "memory" store type and the concurrency tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"shareit-booking/internal/domain"
	"shareit-booking/internal/repository"
)

type bookingRow struct {
	id       int64
	start    time.Time
	end      time.Time
	itemID   int64
	bookerID int64
	status   domain.BookingStatus
}

type Store struct {
	mu       sync.RWMutex
	users    map[int64]domain.User
	items    map[int64]domain.Item
	bookings map[int64]*bookingRow
	nextID   int64
}

func NewStore() *Store {
	return &Store{
		users:    make(map[int64]domain.User),
		items:    make(map[int64]domain.Item),
		bookings: make(map[int64]*bookingRow),
	}
}

// AddUser seeds or replaces a user.
func (s *Store) AddUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// AddItem seeds or replaces an item.
func (s *Store) AddItem(it domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[it.ID] = it
}

func (s *Store) Users() repository.UserRepository       { return userRepository{s} }
func (s *Store) Items() repository.ItemRepository       { return itemRepository{s} }
func (s *Store) Bookings() repository.BookingRepository { return bookingRepository{s} }

type userRepository struct{ s *Store }

func (r userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.NotFoundf("user %d", id)
	}
	return &u, nil
}

type itemRepository struct{ s *Store }

func (r itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, domain.NotFoundf("item %d", id)
	}
	return &it, nil
}

func (r itemRepository) ListIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := []int64{}
	for id, it := range r.s.items {
		if it.OwnerID == ownerID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

type bookingRepository struct{ s *Store }

func (r bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[b.Item.ID]; !ok {
		return domain.NotFoundf("item %d", b.Item.ID)
	}
	if _, ok := r.s.users[b.Booker.ID]; !ok {
		return domain.NotFoundf("user %d", b.Booker.ID)
	}
	r.s.nextID++
	b.ID = r.s.nextID
	r.s.bookings[b.ID] = &bookingRow{
		id:       b.ID,
		start:    b.Start,
		end:      b.End,
		itemID:   b.Item.ID,
		bookerID: b.Booker.ID,
		status:   b.Status,
	}
	return nil
}

func (r bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.NotFoundf("booking %d", id)
	}
	b := r.s.hydrate(row)
	return &b, nil
}

func (r bookingRepository) ListByBooker(ctx context.Context, bookerID int64) ([]domain.Booking, error) {
	return r.list(ctx, func(row *bookingRow) bool { return row.bookerID == bookerID })
}

func (r bookingRepository) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]domain.Booking, error) {
	wanted := make(map[int64]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = struct{}{}
	}
	return r.list(ctx, func(row *bookingRow) bool {
		_, ok := wanted[row.itemID]
		return ok
	})
}

func (r bookingRepository) list(ctx context.Context, keep func(*bookingRow) bool) ([]domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []domain.Booking{}
	for _, row := range r.s.bookings {
		if keep(row) {
			out = append(out, r.s.hydrate(row))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			return out[i].ID < out[j].ID
		}
		return out[i].Start.After(out[j].Start)
	})
	return out, nil
}

func (r bookingRepository) UpdateStatusIfWaiting(ctx context.Context, id int64, status domain.BookingStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.bookings[id]
	if !ok {
		return domain.NotFoundf("booking %d", id)
	}
	if row.status != domain.BookingStatusWaiting {
		return domain.ErrNotWaiting
	}
	row.status = status
	return nil
}

// hydrate must be called with mu held.
func (s *Store) hydrate(row *bookingRow) domain.Booking {
	return domain.Booking{
		ID:     row.id,
		Start:  row.start,
		End:    row.end,
		Item:   s.items[row.itemID],
		Booker: s.users[row.bookerID],
		Status: row.status,
	}
}
