package models

// Account.UserID is a soft reference; nothing enforces that the user exists.
type Account struct {
	ID      int64   `json:"id" db:"id"`
	UserID  int64   `json:"user_id" db:"user_id"`
	Balance float64 `json:"balance" db:"balance"`
}

// Transaction is append-only. FromAccount and ToAccount are soft references.
type Transaction struct {
	ID          int64   `json:"id" db:"id"`
	FromAccount int64   `json:"from_account" db:"from_account"`
	ToAccount   int64   `json:"to_account" db:"to_account"`
	Amount      float64 `json:"amount" db:"amount"`
	Timestamp   string  `json:"timestamp" db:"timestamp"`
	Note        string  `json:"note" db:"note"`
}

// TimestampLayout matches the ISO-8601 form stored in Transaction.Timestamp
// and in audit lines.
const TimestampLayout = "2006-01-02T15:04:05.000Z"
