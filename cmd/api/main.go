package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"portfolio-blog/internal/common/pagination"
	"portfolio-blog/internal/config"
	"portfolio-blog/internal/content/htmlrender"
	pgRepo "portfolio-blog/internal/infra/adapter/persistence/postgres"
	"portfolio-blog/internal/infra/db"
	"portfolio-blog/internal/infra/storage"
	"portfolio-blog/internal/observability/logging"
	"portfolio-blog/internal/resilience/circuitbreaker"
	pkgconfig "portfolio-blog/pkg/config"

	artUC "portfolio-blog/internal/usecase/article"
	uploadUC "portfolio-blog/internal/usecase/upload"

	hhttp "portfolio-blog/internal/handler/http"
	harticle "portfolio-blog/internal/handler/http/article"
	hauth "portfolio-blog/internal/handler/http/auth"
	heditor "portfolio-blog/internal/handler/http/editor"
	hfeed "portfolio-blog/internal/handler/http/feed"
	"portfolio-blog/internal/handler/http/requestid"
	hupload "portfolio-blog/internal/handler/http/upload"
)

// @title           Portfolio Blog API
// @version         1.0
// @description     Backend for a personal portfolio blog: article CRUD with
// @description     Markdown-derived fields, cover image uploads, editor
// @description     preview/MDX endpoints and RSS/sitemap projections.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin bearer credential, "Bearer {token}".

func main() {
	logger := initLogger()
	policy := initAuthPolicy(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	store := initStorage(logger)
	version := getVersion()

	handler := setupServer(logger, database, store, policy, version)
	runServer(logger, handler, version)
}

// initLogger initializes the structured JSON logger and installs it as the
// process default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initAuthPolicy validates the admin credential against the security policy
// and builds the bearer-check policy. The server refuses to start with an
// empty, short or known-weak credential.
func initAuthPolicy(logger *slog.Logger) hauth.Policy {
	secCfg := config.DefaultSecurityConfig()
	if path := os.Getenv("SECURITY_CONFIG"); path != "" {
		loaded, err := config.LoadSecurityConfig(path)
		if err != nil {
			logger.Error("failed to load security config", slog.Any("error", err))
			os.Exit(1)
		}
		secCfg = loaded
	}

	credential := os.Getenv("ADMIN_TOKEN")
	if os.Getenv("AUTH_MODE") == "jwt" {
		credential = os.Getenv("JWT_SECRET")
	}
	if err := secCfg.ValidateAdminToken(credential); err != nil {
		logger.Error("admin credential validation failed", slog.Any("error", err))
		os.Exit(1)
	}

	policy, err := hauth.FromEnv()
	if err != nil {
		logger.Error("failed to build auth policy", slog.Any("error", err))
		os.Exit(1)
	}
	return policy
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// initStorage builds the cover image storage provider from the environment.
func initStorage(logger *slog.Logger) storage.Provider {
	store, err := storage.FromEnv(context.Background())
	if err != nil {
		logger.Error("failed to initialize storage provider", slog.Any("error", err))
		os.Exit(1)
	}
	return store
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires services, routes and the middleware chain.
func setupServer(logger *slog.Logger, database *sql.DB, store storage.Provider, policy hauth.Policy, version string) http.Handler {
	// Database calls go through a circuit breaker so a dead database fails
	// fast instead of piling up blocked requests.
	repo := pgRepo.NewArticleRepo(circuitbreaker.NewDBCircuitBreaker(database))

	renderer := htmlrender.New()
	artSvc := &artUC.Service{Repo: repo, Store: store, Logger: logger}
	upSvc := &uploadUC.Service{Store: store}

	paginationCfg := pagination.LoadFromEnv()
	siteCfg := config.LoadSiteConfig()

	mux := http.NewServeMux()
	harticle.Register(mux, artSvc, paginationCfg, renderer, policy)
	heditor.Register(mux, policy)
	hupload.Register(mux, upSvc, policy)
	hfeed.Register(mux, artSvc, siteCfg, renderer)

	mux.Handle("GET    /health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET    /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET    /live", &hhttp.LiveHandler{})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())

	// The local provider serves its uploads directory directly; with S3 the
	// object URLs point at the bucket and nothing is served here.
	if local, ok := store.(*storage.LocalProvider); ok {
		mux.Handle("GET    /uploads/", http.StripPrefix("/uploads/",
			http.FileServer(http.Dir(local.Dir()))))
		logger.Info("serving local uploads", slog.String("dir", local.Dir()))
	}

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): CORS → request ID → rate limit → recover →
// logging → timeout → input validation → body limit → metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	const (
		defaultBodyLimit = 1 << 20 // JSON routes
		uploadBodyLimit  = 6 << 20 // multipart envelope above the 5MB file cap
	)

	rl := hhttp.NewRateLimiter(
		float64(pkgconfig.GetEnvInt("RATE_LIMIT_RPS", 10)),
		pkgconfig.GetEnvInt("RATE_LIMIT_BURST", 20))
	origins := pkgconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	logger.Info("CORS enabled", slog.Any("allowed_origins", origins))

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(defaultBodyLimit, uploadBodyLimit, "/api/upload")(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Timeout(30 * time.Second)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = rl.Limit(chain)
	chain = requestid.Middleware(chain)
	chain = hhttp.CORS(origins)(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
