package booking

import (
	"time"

	"shareit-booking/internal/domain"
)

// ValidateRange fails unless end is strictly after start.
func ValidateRange(start, end time.Time) error {
	if !end.After(start) {
		return domain.ErrInvalidRange
	}
	return nil
}

// ValidateAvailability checks a proposed reservation against the item
// snapshot. The range is checked first, then availability, then ownership.
func ValidateAvailability(start, end time.Time, item *domain.Item, bookerID int64) error {
	if err := ValidateRange(start, end); err != nil {
		return err
	}
	if !item.Available {
		return domain.ErrItemUnavailable
	}
	if item.OwnerID == bookerID {
		return domain.ErrSelfBooking
	}
	return nil
}
