package models

// Comment.Username is free text and not tied to a User.
type Comment struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Message  string `json:"message" db:"message"`
}

type Product struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// Row is a result row as returned by a spliced query. Its shape depends on
// whatever the query text ended up selecting.
type Row map[string]any
