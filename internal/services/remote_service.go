package services

import (
	"context"
	"net/http"

	"github.com/ruralpay/hacklab/internal/audit"
	"github.com/ruralpay/hacklab/internal/config"
	"github.com/ruralpay/hacklab/internal/shell"
	"go.uber.org/zap"
)

// RemoteService splices caller input into fixed command templates and runs
// the result through the shell.
type RemoteService struct {
	fetchCommand string
	pingCommand  string
	fetchLimit   int
	audit        audit.Sink
	logger       *zap.Logger
}

func NewRemoteService(cfg config.RemoteConfig, sink audit.Sink, logger *zap.Logger) *RemoteService {
	return &RemoteService{
		fetchCommand: cfg.FetchCommand,
		pingCommand:  cfg.PingCommand,
		fetchLimit:   cfg.FetchLimit,
		audit:        sink,
		logger:       logger.Named("remote"),
	}
}

// Fetch retrieves a remote URL
// @Summary Fetch URL
// @Tags remote
// @Produce html
// @Param url query string true "URL to fetch"
// @Success 200 {string} string "Fetched body or error message"
// @Failure 400 {string} string "Missing url param"
// @Router /fetch [get]
func (s *RemoteService) Fetch(w http.ResponseWriter, r *http.Request) {
	u := r.URL.Query().Get("url")
	if u == "" {
		writeHTML(w, http.StatusBadRequest, "Missing url param")
		return
	}
	s.audit.Log("remote fetch: " + u + " initiated from " + clientIP(r))

	out, err := s.run(r, s.fetchCommand+" "+u)
	if err != nil {
		writeHTML(w, http.StatusOK, "Error: "+err.Error())
		return
	}
	writeHTML(w, http.StatusOK, "<pre>"+truncate(out, s.fetchLimit)+"</pre>")
}

// Ping pings a host
// @Summary Ping host
// @Tags remote
// @Produce html
// @Param host query string false "Host (default 127.0.0.1)"
// @Success 200 {string} string "ping output or error message"
// @Router /ping [get]
func (s *RemoteService) Ping(w http.ResponseWriter, r *http.Request) {
	host := r.URL.Query().Get("host")
	if host == "" {
		host = "127.0.0.1"
	}

	out, err := s.run(r, s.pingCommand+" "+host)
	if err != nil {
		writeHTML(w, http.StatusOK, "Error: "+err.Error())
		return
	}
	writeHTML(w, http.StatusOK, "<pre>"+out+"</pre>")
}

// run blocks until the command finishes, even if the client goes away.
func (s *RemoteService) run(r *http.Request, cmdline string) (string, error) {
	s.logger.Info("exec", zap.String("cmd", cmdline), zap.String("ip", clientIP(r)))

	out, err := shell.Run(context.WithoutCancel(r.Context()), cmdline)
	if err != nil {
		s.logger.Warn("exec failed", zap.String("cmd", cmdline), zap.Error(err))
	}
	return out, err
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
