package domain

// User is the subset of an account this service reads. Accounts are managed elsewhere.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
