package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shareit-booking/internal/domain"
	"shareit-booking/internal/logger"
	"shareit-booking/internal/repository"

	"github.com/lib/pq"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// bookingSelect hydrates the item and booker snapshots with the booking row.
const bookingSelect = `SELECT b.id, b.start_date, b.end_date, b.status,
       i.id, i.owner_id, i.name, COALESCE(i.description, ''), i.is_available,
       u.id, u.name, u.email
FROM bookings b
JOIN items i ON i.id = b.item_id
JOIN users u ON u.id = b.booker_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner, b *domain.Booking) error {
	var status string
	err := row.Scan(
		&b.ID, &b.Start, &b.End, &status,
		&b.Item.ID, &b.Item.OwnerID, &b.Item.Name, &b.Item.Description, &b.Item.Available,
		&b.Booker.ID, &b.Booker.Name, &b.Booker.Email,
	)
	if err != nil {
		return err
	}
	b.Status, err = domain.ParseBookingStatus(status)
	return err
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	logger.DatabaseCall("bookings.Create", query, "itemID", b.Item.ID, "bookerID", b.Booker.ID)

	err := r.db.QueryRowContext(ctx, query, b.Start, b.End, b.Item.ID, b.Booker.ID, b.Status).Scan(&b.ID)
	if err != nil {
		logger.DatabaseResult("bookings.Create", 0, err)
		return fmt.Errorf("insert booking: %w", err)
	}
	logger.DatabaseResult("bookings.Create", 1, nil, "bookingID", b.ID)
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := bookingSelect + ` WHERE b.id = $1`
	logger.DatabaseCall("bookings.GetByID", query, "bookingID", id)

	b := &domain.Booking{}
	err := scanBooking(r.db.QueryRowContext(ctx, query, id), b)
	if errors.Is(err, sql.ErrNoRows) {
		logger.DatabaseResult("bookings.GetByID", 0, nil, "bookingID", id)
		return nil, domain.NotFoundf("booking %d", id)
	}
	if err != nil {
		logger.DatabaseResult("bookings.GetByID", 0, err, "bookingID", id)
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	logger.DatabaseResult("bookings.GetByID", 1, nil, "bookingID", id)
	return b, nil
}

func (r *bookingRepository) ListByBooker(ctx context.Context, bookerID int64) ([]domain.Booking, error) {
	query := bookingSelect + ` WHERE b.booker_id = $1 ORDER BY b.start_date DESC`
	return r.list(ctx, "bookings.ListByBooker", query, bookerID)
}

func (r *bookingRepository) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]domain.Booking, error) {
	if len(itemIDs) == 0 {
		return []domain.Booking{}, nil
	}
	query := bookingSelect + ` WHERE b.item_id = ANY($1) ORDER BY b.start_date DESC`
	return r.list(ctx, "bookings.ListByItemIDs", query, pq.Array(itemIDs))
}

func (r *bookingRepository) list(ctx context.Context, op, query string, args ...any) ([]domain.Booking, error) {
	logger.DatabaseCall(op, query)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult(op, 0, err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		var b domain.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	logger.DatabaseResult(op, int64(len(bookings)), nil)
	return bookings, nil
}

func (r *bookingRepository) UpdateStatusIfWaiting(ctx context.Context, id int64, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $1 WHERE id = $2 AND status = $3`
	logger.DatabaseCall("bookings.UpdateStatusIfWaiting", query, "bookingID", id, "status", status)

	result, err := r.db.ExecContext(ctx, query, status, id, domain.BookingStatusWaiting)
	if err != nil {
		logger.DatabaseResult("bookings.UpdateStatusIfWaiting", 0, err, "bookingID", id)
		return fmt.Errorf("update booking %d status: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update booking %d status: %w", id, err)
	}
	logger.DatabaseResult("bookings.UpdateStatusIfWaiting", n, nil, "bookingID", id)
	if n > 0 {
		return nil
	}

	// Nothing matched: tell a lost race apart from a missing row.
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check booking %d: %w", id, err)
	}
	if !exists {
		return domain.NotFoundf("booking %d", id)
	}
	return domain.ErrNotWaiting
}
