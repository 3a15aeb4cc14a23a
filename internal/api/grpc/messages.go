package grpc

import "time"

type CreateBookingRequest struct {
	ItemID int64     `json:"item_id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

type DecideBookingRequest struct {
	BookingID int64 `json:"booking_id"`
	Approved  bool  `json:"approved"`
}

type GetBookingRequest struct {
	BookingID int64 `json:"booking_id"`
}

// ListBookingsRequest pages with from/size. Size 0 selects the default.
type ListBookingsRequest struct {
	State string `json:"state"`
	From  int32  `json:"from"`
	Size  int32  `json:"size"`
}

type ItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Booking struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Item   ItemRef   `json:"item"`
	Booker UserRef   `json:"booker"`
}

type BookingResponse struct {
	Booking *Booking `json:"booking"`
}

type ListBookingsResponse struct {
	Bookings []*Booking `json:"bookings"`
}
