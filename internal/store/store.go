// Package store is the data-access layer. Every query is assembled by
// concatenating caller-supplied values into the query text; nothing here is
// parameterised.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ruralpay/hacklab/internal/models"
	"go.uber.org/zap"
)

type Store struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func New(db *sqlx.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger.Named("store")}
}

// LoginRow returns the id and stored password for username.
func (s *Store) LoginRow(ctx context.Context, username string) (models.Row, error) {
	return s.one(ctx, "SELECT id, password FROM users WHERE username = '"+username+"'")
}

func (s *Store) Profile(ctx context.Context, id string) (models.Row, error) {
	return s.one(ctx, "SELECT id, username, email, full_name, major, year FROM users WHERE id = "+id)
}

func (s *Store) Users(ctx context.Context) ([]models.Row, error) {
	return s.all(ctx, "SELECT id, username, email, full_name FROM users")
}

func (s *Store) SearchProducts(ctx context.Context, q string) ([]models.Row, error) {
	return s.all(ctx, "SELECT id, name, description FROM products WHERE name LIKE '%"+q+"%'")
}

func (s *Store) InsertComment(ctx context.Context, username, message string) error {
	return s.exec(ctx, "INSERT INTO comments (username, message) VALUES ('"+username+"', '"+message+"')")
}

// RecentComments returns the 50 newest comments, newest first.
func (s *Store) RecentComments(ctx context.Context) ([]models.Row, error) {
	return s.all(ctx, "SELECT username, message FROM comments ORDER BY id DESC LIMIT 50")
}

func (s *Store) Account(ctx context.Context, id string) (models.Row, error) {
	return s.one(ctx, "SELECT id, balance FROM accounts WHERE id = "+id)
}

func (s *Store) SetBalance(ctx context.Context, id string, balance float64) error {
	return s.exec(ctx, "UPDATE accounts SET balance = "+FormatNumber(balance)+" WHERE id = "+id)
}

func (s *Store) InsertTransaction(ctx context.Context, from, to string, amount float64, timestamp, note string) error {
	return s.exec(ctx, fmt.Sprintf(
		"INSERT INTO transactions (from_account, to_account, amount, timestamp, note) VALUES (%s, %s, %s, '%s', '%s')",
		from, to, FormatNumber(amount), timestamp, note,
	))
}

// Transactions lists the newest 200 transactions. A non-empty userID limits
// the list to transactions touching that user's accounts.
func (s *Store) Transactions(ctx context.Context, userID string) ([]models.Row, error) {
	q := "SELECT id, from_account, to_account, amount, timestamp, note FROM transactions ORDER BY id DESC LIMIT 200"
	if userID != "" {
		q = "SELECT t.id, t.from_account, t.to_account, t.amount, t.timestamp, t.note FROM transactions t " +
			"JOIN accounts a ON (a.id = t.from_account OR a.id = t.to_account) WHERE a.user_id = " + userID +
			" ORDER BY t.id DESC LIMIT 200"
	}
	return s.all(ctx, q)
}

func (s *Store) AccountSummary(ctx context.Context, userID string) (models.Row, error) {
	return s.one(ctx, "SELECT a.id, a.balance FROM accounts a WHERE a.user_id = "+userID+" LIMIT 1")
}

// one returns sql.ErrNoRows when the query yields nothing.
func (s *Store) one(ctx context.Context, query string) (models.Row, error) {
	s.logger.Debug("query", zap.String("sql", query))

	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, sql.ErrNoRows
	}

	row := models.Row{}
	if err := rows.MapScan(row); err != nil {
		return nil, err
	}
	return normalize(row), nil
}

func (s *Store) all(ctx context.Context, query string) ([]models.Row, error) {
	s.logger.Debug("query", zap.String("sql", query))

	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.Row{}
	for rows.Next() {
		row := models.Row{}
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		result = append(result, normalize(row))
	}
	return result, rows.Err()
}

func (s *Store) exec(ctx context.Context, query string) error {
	s.logger.Debug("exec", zap.String("sql", query))

	_, err := s.db.ExecContext(ctx, query)
	return err
}

// normalize turns driver byte slices into strings so rows encode as text.
func normalize(row models.Row) models.Row {
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			row[k] = string(b)
		}
	}
	return row
}
