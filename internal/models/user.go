package models

// User is an already-authenticated identity. Only the ID takes part in
// domain decisions; email and password are opaque identity data.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
