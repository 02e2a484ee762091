package services

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/ruralpay/hacklab/internal/audit"
	"github.com/ruralpay/hacklab/internal/scripting"
	"go.uber.org/zap"
)

const resetTokenTTL = 15 * time.Minute

// MiscService holds the disclosure endpoints: environment dump, host header
// built reset links, open redirect and code evaluation.
type MiscService struct {
	redis     *redis.Client
	audit     audit.Sink
	validator *ValidationHelper
	logger    *zap.Logger
}

// ForgotRequest represents the password reset form
type ForgotRequest struct {
	Email string `json:"email"`
}

// RunRequest represents a code evaluation request
type RunRequest struct {
	Code string `json:"code" validate:"required"`
}

// DebugInfo is the /debug payload
type DebugInfo struct {
	Env  map[string]string `json:"env"`
	Note string            `json:"note"`
}

func NewMiscService(redisClient *redis.Client, sink audit.Sink, logger *zap.Logger) *MiscService {
	return &MiscService{
		redis:     redisClient,
		audit:     sink,
		validator: NewValidationHelper(),
		logger:    logger.Named("misc"),
	}
}

// Debug dumps the process environment
// @Summary Debug info
// @Tags misc
// @Produce json
// @Success 200 {object} DebugInfo
// @Router /debug [get]
func (s *MiscService) Debug(w http.ResponseWriter, r *http.Request) {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		env[k] = v
	}
	writeJSON(w, DebugInfo{Env: env, Note: "Debug info (do not expose in production)"})
}

// Forgot issues a password reset link
// @Summary Forgot password
// @Description The link is built from the request Host header.
// @Tags misc
// @Accept x-www-form-urlencoded,json
// @Param email formData string false "Account email"
// @Success 200 {string} string "Reset link message"
// @Router /forgot [post]
func (s *MiscService) Forgot(w http.ResponseWriter, r *http.Request) {
	var req ForgotRequest
	if err := DecodeRequest(w, r, &req); err != nil {
		writeHTML(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token := newResetToken()
	host := r.Host
	if host == "" {
		host = "localhost:3000"
	}
	link := "http://" + host + "/reset?token=" + token

	s.audit.Log("password reset requested for " + req.Email + ", link " + link)
	s.logger.Info("reset link generated", zap.String("email", req.Email), zap.String("link", link))

	if s.redis != nil {
		if err := s.redis.Set(r.Context(), resetKey(token), req.Email, resetTokenTTL).Err(); err != nil {
			s.logger.Warn("failed to cache reset token", zap.Error(err))
		}
	}

	writeHTML(w, http.StatusOK, "If "+req.Email+" exists a reset link was sent: <a href=\""+link+"\">"+link+"</a>")
}

// Reset resolves a reset token
// @Summary Reset password
// @Tags misc
// @Produce html
// @Param token query string true "Reset token"
// @Success 200 {string} string "Token owner"
// @Failure 404 {string} string "Invalid token"
// @Router /reset [get]
func (s *MiscService) Reset(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if s.redis == nil || token == "" {
		writeHTML(w, http.StatusNotFound, "Invalid token")
		return
	}

	email, err := s.redis.Get(r.Context(), resetKey(token)).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("reset token lookup failed", zap.Error(err))
		}
		writeHTML(w, http.StatusNotFound, "Invalid token")
		return
	}

	writeHTML(w, http.StatusOK, "Reset password for "+email)
}

// Redirect forwards to any destination
// @Summary Redirect
// @Tags misc
// @Param to query string false "Destination (default /)"
// @Success 302 {string} string "Redirect"
// @Router /redirect [get]
func (s *MiscService) Redirect(w http.ResponseWriter, r *http.Request) {
	to := r.URL.Query().Get("to")
	if to == "" {
		to = "/"
	}
	s.audit.Log("redirect to: " + to + " from " + clientIP(r))

	w.Header().Set("Location", to)
	w.WriteHeader(http.StatusFound)
}

// Run evaluates JavaScript
// @Summary Run code
// @Tags misc
// @Accept x-www-form-urlencoded,json
// @Param code formData string true "JavaScript source"
// @Success 200 {string} string "Result or error message"
// @Failure 400 {string} string "Missing code"
// @Router /run [post]
func (s *MiscService) Run(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := DecodeRequest(w, r, &req); err != nil {
		writeHTML(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.ValidateStruct(&req); err != nil {
		writeHTML(w, http.StatusBadRequest, "Missing code")
		return
	}

	s.logger.Info("evaluating code", zap.Int("bytes", len(req.Code)), zap.String("ip", clientIP(r)))

	result, err := scripting.Eval(context.WithoutCancel(r.Context()), req.Code)
	if err != nil {
		writeHTML(w, http.StatusOK, "Error: "+err.Error())
		return
	}
	writeHTML(w, http.StatusOK, "Result: "+result)
}

// newResetToken returns "tok_" followed by eight lowercase alphanumerics.
func newResetToken() string {
	return "tok_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func resetKey(token string) string {
	return "reset:" + token
}
