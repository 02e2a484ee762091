package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ruralpay/hacklab/docs"
	"github.com/ruralpay/hacklab/internal/audit"
	"github.com/ruralpay/hacklab/internal/config"
	"github.com/ruralpay/hacklab/internal/database"
	"github.com/ruralpay/hacklab/internal/logger"
	mW "github.com/ruralpay/hacklab/internal/middleware"
	"github.com/ruralpay/hacklab/internal/router"
	"github.com/ruralpay/hacklab/internal/services"
	"github.com/ruralpay/hacklab/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "hacklab",
	Short: "Intentionally vulnerable campus banking lab",
	Long: `hacklab serves a small campus banking and community site that is
deliberately vulnerable. Run it only in an isolated lab network.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.BindEnv()
		if err := viper.ReadInConfig(); err != nil {
			log.Printf("Config file not found, using defaults: %v", err)
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().String("root", ".", "service root directory")
	rootCmd.PersistentFlags().String("db-driver", "sqlite3", "database driver (sqlite3 or postgres)")
	serveCmd.Flags().String("port", "80", "port to listen on")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	viper.BindPFlag("server.root_dir", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("database.driver", rootCmd.PersistentFlags().Lookup("db-driver"))
	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	zl, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer zl.Sync()

	docs.SwaggerInfo.Host = "localhost:" + cfg.Server.Port

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Bootstrap(cmd.Context(), db); err != nil {
		zl.Error("database bootstrap failed", zap.Error(err))
	}

	redisClient := database.InitRedis(cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}

	if err := os.MkdirAll(cfg.Uploads, 0o755); err != nil {
		zl.Warn("could not create uploads directory", zap.String("dir", cfg.Uploads), zap.Error(err))
	}

	auditLog, err := audit.Open(cfg.AuditLog)
	if err != nil {
		return err
	}
	defer auditLog.Close()

	st := store.New(db, zl)
	handler := router.New(router.Services{
		Auth:         services.NewAuthService(st, zl),
		Ledger:       services.NewLedgerService(st, zl),
		Transactions: services.NewTransactionService(st, zl),
		Content:      services.NewContentService(st, zl),
		Files:        services.NewFileService(cfg.Server.RootDir, cfg.Uploads, auditLog, zl),
		Remote:       services.NewRemoteService(cfg.Remote, auditLog, zl),
		Misc:         services.NewMiscService(redisClient, auditLog, zl),
		Audit:        services.NewAuditService(auditLog.Path()),
	}, cfg.Server.PublicDir, mW.NewRateLimiter())

	server := &http.Server{
		Addr:        "0.0.0.0:" + cfg.Server.Port,
		Handler:     handler,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		zl.Info("Vulnerable app listening", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}

	zl.Info("Server stopped")
	return nil
}
