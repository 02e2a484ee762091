package services

import (
	"net/http"

	"github.com/ruralpay/hacklab/internal/store"
	"go.uber.org/zap"
)

type TransactionService struct {
	store  *store.Store
	logger *zap.Logger
}

// AccountSummary is the balance view of a user's first account
type AccountSummary struct {
	ID      any `json:"id"`
	Balance any `json:"balance"`
}

func NewTransactionService(s *store.Store, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		store:  s,
		logger: logger.Named("transactions"),
	}
}

// ListTransactions lists recent transactions
// @Summary List transactions
// @Description Newest 200 transactions, optionally only those touching a user's accounts
// @Tags ledger
// @Produce json
// @Param user_id query string false "Filter by owning user id"
// @Success 200 {array} models.Transaction
// @Failure 500 {string} string "DB error"
// @Router /api/transactions [get]
func (s *TransactionService) ListTransactions(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.Transactions(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		s.logger.Error("list transactions", zap.Error(err))
		writeHTML(w, http.StatusInternalServerError, "DB error")
		return
	}
	writeJSON(w, rows)
}

// GetAccountSummary returns a user's balance
// @Summary Account summary
// @Tags ledger
// @Produce json
// @Param user_id query string false "User id (default 1)"
// @Success 200 {object} AccountSummary
// @Failure 404 {object} ErrorResponse
// @Router /api/account_summary [get]
func (s *TransactionService) GetAccountSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		userID = "1"
	}

	row, err := s.store.AccountSummary(r.Context(), userID)
	if err != nil {
		SendErrorResponse(w, "No account", http.StatusNotFound, nil)
		return
	}
	writeJSON(w, AccountSummary{ID: row["id"], Balance: row["balance"]})
}
