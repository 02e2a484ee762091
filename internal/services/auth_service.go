package services

import (
	"net/http"

	"github.com/ruralpay/hacklab/internal/session"
	"github.com/ruralpay/hacklab/internal/store"
	"go.uber.org/zap"
)

const (
	// BackdoorPassword logs anyone in as BackdoorUserID.
	BackdoorPassword = "backdoor123"
	BackdoorUserID   = "99"
)

type AuthService struct {
	store  *store.Store
	logger *zap.Logger
}

// LoginRequest represents the login form
type LoginRequest struct {
	Username string `json:"username" example:"mchen"`
	Password string `json:"password" example:"summer2023"`
}

func NewAuthService(s *store.Store, logger *zap.Logger) *AuthService {
	return &AuthService{
		store:  s,
		logger: logger.Named("auth"),
	}
}

// LegacyLogin is the first handler bound to POST /login. The route table
// replaces it with Login.
func (s *AuthService) LegacyLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeRequest(w, r, &req); err != nil {
		writeHTML(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.passwordLogin(w, r, req)
}

// Login authenticates a user
// @Summary Login
// @Description Username/password login. Sets the user_id cookie.
// @Tags auth
// @Accept x-www-form-urlencoded,json
// @Param username formData string false "Username"
// @Param password formData string false "Password"
// @Success 302 {string} string "Redirect to /dashboard.html or /admin"
// @Failure 401 {string} string "Invalid credentials"
// @Failure 500 {string} string "DB error"
// @Router /login [post]
func (s *AuthService) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeRequest(w, r, &req); err != nil {
		writeHTML(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Password == BackdoorPassword {
		s.logger.Info("backdoor login", zap.String("username", req.Username), zap.String("ip", clientIP(r)))
		session.Set(w, BackdoorUserID)
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}

	s.passwordLogin(w, r, req)
}

func (s *AuthService) passwordLogin(w http.ResponseWriter, r *http.Request, req LoginRequest) {
	row, err := s.store.LoginRow(r.Context(), req.Username)
	if err != nil && !isNoRows(err) {
		s.logger.Error("login lookup failed", zap.Error(err))
		writeHTML(w, http.StatusInternalServerError, "DB error")
		return
	}

	if stored, ok := row["password"].(string); ok && stored == req.Password {
		session.Set(w, store.Text(row["id"]))
		http.Redirect(w, r, "/dashboard.html", http.StatusFound)
		return
	}

	s.logger.Info("invalid credentials", zap.String("username", req.Username))
	writeHTML(w, http.StatusUnauthorized, "Invalid credentials")
}
