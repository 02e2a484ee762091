package services

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ruralpay/hacklab/internal/store"
	"go.uber.org/zap"
)

// ContentService renders stored and query supplied text straight into
// markup. Nothing is escaped.
type ContentService struct {
	store  *store.Store
	logger *zap.Logger
}

// CommentRequest represents the comment form
type CommentRequest struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

func NewContentService(s *store.Store, logger *zap.Logger) *ContentService {
	return &ContentService{
		store:  s,
		logger: logger.Named("content"),
	}
}

// GetProfile returns a user's profile
// @Summary Get profile
// @Description Extended profile for any id. No authorization.
// @Tags content
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.User
// @Failure 404 {string} string "Not found"
// @Router /profile/{id} [get]
func (s *ContentService) GetProfile(w http.ResponseWriter, r *http.Request) {
	row, err := s.store.Profile(r.Context(), pathParam(r, "id"))
	if err != nil {
		if isNoRows(err) {
			writeHTML(w, http.StatusNotFound, "Not found")
			return
		}
		s.logger.Error("profile lookup", zap.Error(err))
		writeHTML(w, http.StatusInternalServerError, "Error")
		return
	}
	writeJSON(w, row)
}

// Search lists matching products
// @Summary Search products
// @Tags content
// @Produce html
// @Param q query string false "Search text"
// @Success 200 {string} string "HTML listing"
// @Router /search [get]
func (s *ContentService) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	rows, err := s.store.SearchProducts(r.Context(), q)
	if err != nil {
		s.logger.Error("search", zap.Error(err))
		writeHTML(w, http.StatusInternalServerError, "DB error")
		return
	}

	var b strings.Builder
	b.WriteString("<h1>Search results for: " + q + "</h1><ul>")
	for _, row := range rows {
		b.WriteString("<li>" + store.Text(row["name"]) + ": " + store.Text(row["description"]) + "</li>")
	}
	b.WriteString("</ul>")
	writeHTML(w, http.StatusOK, b.String())
}

// PostComment stores a comment
// @Summary Post comment
// @Tags content
// @Accept x-www-form-urlencoded,json
// @Param username formData string false "Display name"
// @Param message formData string false "Message"
// @Success 302 {string} string "Redirect to /comments.html"
// @Router /comment [post]
func (s *ContentService) PostComment(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if err := DecodeRequest(w, r, &req); err != nil {
		writeHTML(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.store.InsertComment(r.Context(), req.Username, req.Message); err != nil {
		s.logger.Error("insert comment", zap.Error(err))
		writeHTML(w, http.StatusInternalServerError, "DB error")
		return
	}
	http.Redirect(w, r, "/comments.html", http.StatusFound)
}

// ListComments renders the newest 50 comments
// @Summary List comments
// @Tags content
// @Produce html
// @Success 200 {string} string "HTML listing"
// @Router /comments [get]
func (s *ContentService) ListComments(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.RecentComments(r.Context())
	if err != nil {
		s.logger.Error("list comments", zap.Error(err))
		writeHTML(w, http.StatusInternalServerError, "DB error")
		return
	}

	var b strings.Builder
	b.WriteString("<h1>Comments</h1><ul>")
	for _, row := range rows {
		b.WriteString("<li><strong>" + store.Text(row["username"]) + "</strong>: " + store.Text(row["message"]) + "</li>")
	}
	b.WriteString("</ul>")
	writeHTML(w, http.StatusOK, b.String())
}

// Admin lists every user. The route is only gated on a session cookie being
// present.
// @Summary Admin user listing
// @Tags content
// @Produce html
// @Success 200 {string} string "HTML table"
// @Failure 403 {string} string "Access denied"
// @Router /admin [get]
func (s *ContentService) Admin(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.Users(r.Context())
	if err != nil {
		s.logger.Error("list users", zap.Error(err))
		writeHTML(w, http.StatusInternalServerError, "DB error")
		return
	}

	var b strings.Builder
	b.WriteString("<h1>Admin Panel - User Management</h1><table><tr><th>ID</th><th>Username</th><th>Email</th><th>Full Name</th></tr>")
	for _, row := range rows {
		b.WriteString("<tr><td>" + store.Text(row["id"]) + "</td><td>" + store.Text(row["username"]) +
			"</td><td>" + store.Text(row["email"]) + "</td><td>" + store.Text(row["full_name"]) + "</td></tr>")
	}
	b.WriteString("</table>")
	writeHTML(w, http.StatusOK, b.String())
}

// pathParam returns the decoded route parameter.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}
