package models

// User is seeded at bootstrap and never mutated by the running service.
// Password is stored as plaintext.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
	Email    string `json:"email" db:"email"`
	FullName string `json:"full_name" db:"full_name"`
	Major    string `json:"major" db:"major"`
	Year     int    `json:"year" db:"year"`
}
