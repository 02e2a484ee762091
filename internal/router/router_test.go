package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/ruralpay/hacklab/internal/config"
	mW "github.com/ruralpay/hacklab/internal/middleware"
	"github.com/ruralpay/hacklab/internal/services"
	"github.com/ruralpay/hacklab/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type discardSink struct{}

func (discardSink) Log(string) {}

type fixture struct {
	handler http.Handler
	mock    sqlmock.Sqlmock
	limiter *mW.RateLimiter
	public  string
}

func newFixture(t *testing.T) *fixture {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	root := t.TempDir()
	public := filepath.Join(root, "public")
	uploads := filepath.Join(root, "uploads")
	require.NoError(t, os.MkdirAll(public, 0o755))
	require.NoError(t, os.MkdirAll(uploads, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(public, "dashboard.html"), []byte("<h1>Dashboard</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(public, "index.html"), []byte("<h1>Campus</h1>"), 0o644))

	log := zap.NewNop()
	st := store.New(sqlx.NewDb(db, "sqlmock"), log)
	svc := Services{
		Auth:         services.NewAuthService(st, log),
		Ledger:       services.NewLedgerService(st, log),
		Transactions: services.NewTransactionService(st, log),
		Content:      services.NewContentService(st, log),
		Files:        services.NewFileService(root, uploads, discardSink{}, log),
		Remote:       services.NewRemoteService(config.RemoteConfig{FetchCommand: "echo", PingCommand: "echo", FetchLimit: 4000}, discardSink{}, log),
		Misc:         services.NewMiscService(nil, discardSink{}, log),
		Audit:        services.NewAuditService(filepath.Join(root, "audit.log")),
	}

	limiter := mW.NewRateLimiter()
	return &fixture{
		handler: New(svc, public, limiter),
		mock:    mock,
		limiter: limiter,
		public:  public,
	}
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	return rr
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestTable_LaterRegistrationReplaces(t *testing.T) {
	var hit string
	tbl := NewTable()
	tbl.Post("/login", func(http.ResponseWriter, *http.Request) { hit = "first" })
	tbl.Get("/search", func(http.ResponseWriter, *http.Request) {})
	tbl.Post("/login", func(http.ResponseWriter, *http.Request) { hit = "second" })

	routes := tbl.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/login", routes[0].Pattern)
	assert.Equal(t, "/search", routes[1].Pattern)

	routes[0].Handler(nil, nil)
	assert.Equal(t, "second", hit)
}

func TestRoutes_SingleLoginBinding(t *testing.T) {
	tbl := Routes(Services{}, t.TempDir())

	var logins int
	for _, r := range tbl.Routes() {
		if r.Method == http.MethodPost && r.Pattern == "/login" {
			logins++
		}
	}
	assert.Equal(t, 1, logins)
}

func TestRouter_BackdoorLogin(t *testing.T) {
	f := newFixture(t)

	rr := f.do(postForm("/login", url.Values{"username": {"anyone"}, "password": {services.BackdoorPassword}}))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/admin", rr.Header().Get("Location"))
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestRouter_AdminRequiresCookie(t *testing.T) {
	f := newFixture(t)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "Access denied")

	f.mock.ExpectQuery("SELECT id, username, email, full_name FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "full_name"}).
			AddRow(int64(99), "admin", "admin@campus.edu", "Site Administrator"))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "user_id", Value: "3"})
	rr = f.do(req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "admin@campus.edu")
}

func TestRouter_RateLimit(t *testing.T) {
	f := newFixture(t)
	login := url.Values{"username": {"x"}, "password": {services.BackdoorPassword}}

	for i := 0; i < mW.RateLimitThreshold; i++ {
		rr := f.do(postForm("/login", login))
		require.Equal(t, http.StatusFound, rr.Code, "request %d", i+1)
	}

	rr := f.do(postForm("/login", login))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Contains(t, rr.Body.String(), "Rate limit exceeded")

	req := postForm("/login", login)
	req.Header.Set(mW.BypassHeader, "1")
	rr = f.do(req)
	assert.Equal(t, http.StatusFound, rr.Code)

	rr = f.do(httptest.NewRequest(http.MethodGet, "/redirect?to=/x", nil))
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, int64(mW.RateLimitThreshold+3), f.limiter.Count())
}

func TestRouter_PreflightIsCounted(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodOptions, "/transfer", nil)
	req.Header.Set("Origin", "http://attacker.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := f.do(req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://attacker.example", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, int64(1), f.limiter.Count())
}

func TestRouter_StaticFallback(t *testing.T) {
	f := newFixture(t)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/dashboard.html", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Dashboard")

	rr = f.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Campus")

	rr = f.do(httptest.NewRequest(http.MethodGet, "/nope.html", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_Health(t *testing.T) {
	f := newFixture(t)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())
}
