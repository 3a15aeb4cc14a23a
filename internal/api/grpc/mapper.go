package grpc

import "shareit-booking/internal/domain"

func MapDomainBookingToMessage(b *domain.Booking) *Booking {
	if b == nil {
		return nil
	}
	return &Booking{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status.String(),
		Item:   ItemRef{ID: b.Item.ID, Name: b.Item.Name},
		Booker: UserRef{ID: b.Booker.ID, Name: b.Booker.Name},
	}
}

func MapDomainBookingsToMessages(bookings []domain.Booking) []*Booking {
	out := make([]*Booking, 0, len(bookings))
	for i := range bookings {
		out = append(out, MapDomainBookingToMessage(&bookings[i]))
	}
	return out
}
