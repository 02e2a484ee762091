package router

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/ruralpay/hacklab/docs"
	mW "github.com/ruralpay/hacklab/internal/middleware"
	"github.com/ruralpay/hacklab/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Services struct {
	Auth         *services.AuthService
	Ledger       *services.LedgerService
	Transactions *services.TransactionService
	Content      *services.ContentService
	Files        *services.FileService
	Remote       *services.RemoteService
	Misc         *services.MiscService
	Audit        *services.AuditService
}

// Routes builds the route table. POST /login is registered twice; the
// backdoor-aware handler registered last is the one that serves traffic.
func Routes(svc Services, publicDir string) *Table {
	t := NewTable()

	t.Post("/login", svc.Auth.LegacyLogin)
	t.Get("/profile/{id}", svc.Content.GetProfile)
	t.Get("/search", svc.Content.Search)
	t.Post("/comment", svc.Content.PostComment)
	t.Get("/comments", svc.Content.ListComments)
	t.Post("/transfer", svc.Ledger.Transfer)
	t.Get("/api/transactions", svc.Transactions.ListTransactions)
	t.Get("/api/account_summary", svc.Transactions.GetAccountSummary)
	t.Get("/api/audit", svc.Audit.TrainingFeed)
	t.Get("/audit", svc.Audit.Feed)
	t.Get("/download", svc.Files.Download)
	t.Get("/redirect", svc.Misc.Redirect)
	t.Get("/fetch", svc.Remote.Fetch)
	t.Post("/upload", svc.Files.Upload)
	t.Get("/ping", svc.Remote.Ping)
	t.Post("/forgot", svc.Misc.Forgot)
	t.Get("/reset", svc.Misc.Reset)
	t.Get("/debug", svc.Misc.Debug)
	t.Get("/files", svc.Files.ListFiles)
	t.Get("/dashboard.html", func(w http.ResponseWriter, r *http.Request) {
		mW.ServeFile(w, r, filepath.Join(publicDir, "dashboard.html"))
	})
	t.Get("/admin", svc.Content.Admin, mW.SessionRequired)
	t.Get("/include", svc.Files.Include)
	t.Post("/run", svc.Misc.Run)
	t.Post("/login", svc.Auth.Login)

	return t
}

// New returns the HTTP handler. Every request, CORS preflights included, passes
// the rate limiter before reaching a route or the static file fallback.
func New(svc Services, publicDir string, limiter *mW.RateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(limiter.Handler)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", mW.BypassHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	Routes(svc, publicDir).Mount(r)

	r.NotFound(mW.StaticFileServer(publicDir).ServeHTTP)

	return r
}
