package domain

// Item is a shareable thing listed by its owner. Read only for bookings.
type Item struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"request_id,omitempty"` // Set when listed in answer to an item request
}
