package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

// bookingTransitions lists the statuses reachable from each status.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusWaiting:  {BookingStatusApproved, BookingStatusRejected},
	BookingStatusApproved: {},
	BookingStatusRejected: {},
}

func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range bookingTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s. Unknown statuses are terminal.
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

func (s BookingStatus) String() string {
	return string(s)
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}

type Booking struct {
	ID     int64         `json:"id"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Item   Item          `json:"item"`
	Booker User          `json:"booker"`
	Status BookingStatus `json:"status"`
}

// OwnerID returns the id of the user who owns the booked item.
func (b *Booking) OwnerID() int64 {
	return b.Item.OwnerID
}

// Page is an offset/limit window over a listing. Limit 0 means no limit.
type Page struct {
	Offset int
	Limit  int
}

// Apply returns the window of bookings selected by p.
func (p Page) Apply(bookings []Booking) []Booking {
	if p.Offset < 0 || p.Offset >= len(bookings) {
		return []Booking{}
	}
	end := len(bookings)
	if p.Limit > 0 && p.Limit < end-p.Offset {
		end = p.Offset + p.Limit
	}
	return bookings[p.Offset:end]
}

// BookingEvent is emitted after a booking is created or decided.
type BookingEvent struct {
	Type       string        `json:"type"`
	BookingID  int64         `json:"booking_id"`
	ItemID     int64         `json:"item_id"`
	BookerID   int64         `json:"booker_id"`
	OwnerID    int64         `json:"owner_id"`
	Status     BookingStatus `json:"status"`
	Start      time.Time     `json:"start"`
	End        time.Time     `json:"end"`
	OccurredAt time.Time     `json:"occurred_at"`
}

const (
	BookingEventCreated  = "booking.created"
	BookingEventApproved = "booking.approved"
	BookingEventRejected = "booking.rejected"
)

func NewBookingEvent(eventType string, b *Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		ItemID:     b.Item.ID,
		BookerID:   b.Booker.ID,
		OwnerID:    b.Item.OwnerID,
		Status:     b.Status,
		Start:      b.Start,
		End:        b.End,
		OccurredAt: at,
	}
}
