package services

import (
	"net/http"
	"strings"

	"github.com/ruralpay/hacklab/internal/audit"
)

// AuditFeedLimit is how many raw lines of the audit log /audit considers.
const AuditFeedLimit = 200

type AuditEvent struct {
	Event  string `json:"event"`
	Detail string `json:"detail"`
}

var trainingFeed = []AuditEvent{
	{Event: "Backup found", Detail: "uploads/secret_backup.sql contains a note (FLAG{hidden_backup_file_found})"},
	{Event: "DB seed", Detail: "Weak credentials seeded for users: mchen, spatel, dkim"},
}

type AuditService struct {
	logPath string
}

func NewAuditService(logPath string) *AuditService {
	return &AuditService{logPath: logPath}
}

// TrainingFeed returns the static hint feed
// @Summary Training hint feed
// @Tags audit
// @Produce json
// @Success 200 {array} AuditEvent
// @Router /api/audit [get]
func (s *AuditService) TrainingFeed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, trainingFeed)
}

// Feed renders the audit log, newest first
// @Summary Audit feed
// @Tags audit
// @Produce html
// @Success 200 {string} string "HTML listing"
// @Router /audit [get]
func (s *AuditService) Feed(w http.ResponseWriter, r *http.Request) {
	lines, err := audit.Tail(s.logPath, AuditFeedLimit)
	if err != nil {
		writeHTML(w, http.StatusOK, "<h1>No audit log yet</h1>")
		return
	}

	var b strings.Builder
	b.WriteString("<h1>Audit Feed</h1><ul>")
	for _, l := range lines {
		b.WriteString("<li>" + l + "</li>")
	}
	b.WriteString("</ul>")
	writeHTML(w, http.StatusOK, b.String())
}
