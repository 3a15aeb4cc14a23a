package booking

import (
	"sort"
	"strings"
	"time"

	"shareit-booking/internal/domain"
)

// State is a named bucket used to list bookings relative to now.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var states = []State{StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected}

// ParseState matches token against the known states, ignoring case.
func ParseState(token string) (State, error) {
	for _, s := range states {
		if strings.EqualFold(token, string(s)) {
			return s, nil
		}
	}
	return "", &domain.UnknownStateError{State: token}
}

// Matches reports whether b belongs to state at instant now.
//
// FUTURE ignores status, while WAITING and REJECTED also require a start
// after now: a waiting booking that has already started shows up under
// CURRENT but not under WAITING.
func (s State) Matches(b *domain.Booking, now time.Time) bool {
	switch s {
	case StateAll:
		return true
	case StateCurrent:
		return !b.Start.After(now) && now.Before(b.End)
	case StatePast:
		return !b.End.After(now)
	case StateFuture:
		return b.Start.After(now)
	case StateWaiting:
		return b.Status == domain.BookingStatusWaiting && b.Start.After(now)
	case StateRejected:
		return b.Status == domain.BookingStatusRejected && b.Start.After(now)
	}
	return false
}

// Classify keeps the bookings in state and orders them by start, latest
// first. Ties keep their input order. The input slice is not modified.
func Classify(state State, bookings []domain.Booking, now time.Time) []domain.Booking {
	out := make([]domain.Booking, 0, len(bookings))
	for i := range bookings {
		if state.Matches(&bookings[i], now) {
			out = append(out, bookings[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.After(out[j].Start)
	})
	return out
}
