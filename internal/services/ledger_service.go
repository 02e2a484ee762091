package services

import (
	"net/http"
	"time"

	"github.com/ruralpay/hacklab/internal/models"
	"github.com/ruralpay/hacklab/internal/store"
	"go.uber.org/zap"
)

// LedgerService moves funds between accounts. The read-modify-write below is
// not wrapped in a transaction or lock: concurrent transfers touching the
// same account can lose updates.
type LedgerService struct {
	store  *store.Store
	logger *zap.Logger
	now    func() time.Time
}

// TransferRequest represents a transfer form
type TransferRequest struct {
	From   string `json:"from" example:"1"`
	To     string `json:"to" example:"2"`
	Amount string `json:"amount" example:"100"`
	Note   string `json:"note" example:"rent"`
}

func NewLedgerService(s *store.Store, logger *zap.Logger) *LedgerService {
	return &LedgerService{
		store:  s,
		logger: logger.Named("ledger"),
		now:    time.Now,
	}
}

// Transfer moves funds between two accounts
// @Summary Transfer funds
// @Description Debits one account and credits another. No caller identity check.
// @Tags ledger
// @Accept x-www-form-urlencoded,json
// @Param from formData string true "Source account id"
// @Param to formData string true "Destination account id"
// @Param amount formData string true "Amount"
// @Param note formData string false "Note"
// @Success 200 {string} string "Transfer complete"
// @Failure 400 {string} string "Invalid from account"
// @Router /transfer [post]
func (s *LedgerService) Transfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := DecodeRequest(w, r, &req); err != nil {
		writeHTML(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx := r.Context()

	fromRow, err := s.store.Account(ctx, req.From)
	if err != nil {
		writeHTML(w, http.StatusBadRequest, "Invalid from account")
		return
	}

	toRow, err := s.store.Account(ctx, req.To)
	if err != nil {
		writeHTML(w, http.StatusBadRequest, "Invalid to account")
		return
	}

	amount := store.ParseNumber(req.Amount)
	newFrom := store.Number(fromRow["balance"]) - amount
	newTo := store.Number(toRow["balance"]) + amount

	if err := s.store.SetBalance(ctx, req.From, newFrom); err != nil {
		s.logger.Warn("debit update failed", zap.String("account", req.From), zap.Error(err))
	}
	if err := s.store.SetBalance(ctx, req.To, newTo); err != nil {
		s.logger.Warn("credit update failed", zap.String("account", req.To), zap.Error(err))
	}

	ts := s.now().UTC().Format(models.TimestampLayout)
	if err := s.store.InsertTransaction(ctx, req.From, req.To, amount, ts, req.Note); err != nil {
		s.logger.Warn("transaction insert failed", zap.Error(err))
	}

	writeHTML(w, http.StatusOK, "Transfer complete")
}
