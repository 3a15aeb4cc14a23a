package booking

import "shareit-booking/internal/domain"

// CanView reports whether viewerID is the booker or the item owner.
func CanView(viewerID int64, b *domain.Booking) bool {
	return viewerID == b.Booker.ID || viewerID == b.OwnerID()
}

// CanDecide reports whether viewerID owns the booked item.
func CanDecide(viewerID int64, b *domain.Booking) bool {
	return viewerID == b.OwnerID()
}
