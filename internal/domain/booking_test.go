package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_Transitions(t *testing.T) {
	assert.True(t, BookingStatusWaiting.CanTransitionTo(BookingStatusApproved))
	assert.True(t, BookingStatusWaiting.CanTransitionTo(BookingStatusRejected))
	assert.False(t, BookingStatusApproved.CanTransitionTo(BookingStatusRejected))
	assert.False(t, BookingStatusRejected.CanTransitionTo(BookingStatusApproved))
	assert.False(t, BookingStatusWaiting.CanTransitionTo(BookingStatusWaiting))

	assert.True(t, BookingStatusApproved.IsTerminal())
	assert.False(t, BookingStatusWaiting.IsTerminal())
	assert.False(t, BookingStatus("CANCELED").IsValid())

	status, err := ParseBookingStatus("REJECTED")
	assert.NoError(t, err)
	assert.Equal(t, BookingStatusRejected, status)
	_, err = ParseBookingStatus("CANCELED")
	assert.Error(t, err)
}

func TestPage_Apply(t *testing.T) {
	bookings := []Booking{{ID: 1}, {ID: 2}, {ID: 3}}

	assert.Len(t, Page{}.Apply(bookings), 3)
	assert.Equal(t, []Booking{{ID: 2}}, Page{Offset: 1, Limit: 1}.Apply(bookings))
	assert.Equal(t, []Booking{{ID: 3}}, Page{Offset: 2, Limit: 10}.Apply(bookings))
	assert.Empty(t, Page{Offset: 3}.Apply(bookings))
	assert.Empty(t, Page{Offset: -1}.Apply(bookings))
	assert.Equal(t, []Booking{{ID: 2}, {ID: 3}}, Page{Offset: 1, Limit: math.MaxInt}.Apply(bookings))
}
