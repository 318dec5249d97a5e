package app

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/blogem/adminjournal/admin"
	"github.com/blogem/adminjournal/authenticator"
	"github.com/blogem/adminjournal/config"
	"github.com/blogem/adminjournal/controllers"
	"github.com/blogem/adminjournal/database"
	"github.com/blogem/adminjournal/metrics"
	"github.com/blogem/adminjournal/middleware"
	"github.com/blogem/adminjournal/persistence"
	"github.com/blogem/adminjournal/repositories"
	"github.com/blogem/adminjournal/services"
)

// App wires the journal components together
type App struct {
	Settings config.Provider
	DB       *sql.DB
	Repos    *repositories.Repositories
	Resolver *persistence.Resolver
	Services *services.Services
	Site     *admin.Site

	logger   *zap.Logger
	verifier authenticator.Verifier
	closers  []io.Closer
}

// Options tune New. Zero values pick production defaults.
type Options struct {
	// Verifier replaces OIDC discovery, for tests
	Verifier authenticator.Verifier
	// Registry replaces the built-in backend registry
	Registry *persistence.Registry
}

// New opens the store, runs migrations and builds every component. The
// returned App must be closed.
func New(ctx context.Context, provider config.Provider, logger *zap.Logger, opts Options) (*App, error) {
	settings := provider.Settings()

	dialect, err := database.ParseDialect(settings.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	db, err := database.InitializeDatabase(dialect, settings.DatabaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize database")
	}

	a := &App{
		Settings: provider,
		DB:       db,
		Repos:    repositories.NewRepositories(db, dialect),
		Site:     admin.NewSite(),
		logger:   logger,
		verifier: opts.Verifier,
		closers:  []io.Closer{db},
	}

	deps := persistence.Deps{Logger: logger, Journal: a.Repos.Journal}
	if len(settings.KafkaBrokers) > 0 {
		writer := persistence.NewKafkaWriter(settings.KafkaBrokers, settings.KafkaTopic)
		deps.Kafka = writer
		a.closers = append(a.closers, writer)
		logger.Info("Kafka journal backend available",
			zap.Strings("brokers", settings.KafkaBrokers),
			zap.String("topic", settings.KafkaTopic))
	}

	registry := opts.Registry
	if registry == nil {
		registry = persistence.DefaultRegistry()
	}
	a.Resolver = persistence.NewResolver(registry, provider, deps)

	// Fail fast on a misconfigured default backend
	if _, err := a.Resolver.Resolve(""); err != nil {
		a.Close()
		return nil, err
	}

	a.Services = services.NewServices(a.Repos, a.Resolver)

	if middleware.InstallJournal(a.Site, provider, a.Services.Journal, logger) {
		logger.Debug("Journal installed on admin site", zap.Strings("allowlist", settings.ModelAllowList))
	}

	if a.verifier == nil && settings.OIDCIssuerURL != "" {
		verifier, err := authenticator.NewOpenIDVerifier(ctx, authenticator.Config{
			IssuerURL: settings.OIDCIssuerURL,
			ClientID:  settings.OIDCClientID,
		})
		if err != nil {
			a.Close()
			return nil, errors.Wrap(err, "failed to initialize OpenID Connect verifier")
		}
		a.verifier = verifier
	}

	return a, nil
}

// Router configures all routes
func (a *App) Router() http.Handler {
	ctrl := controllers.NewControllers(a.Services, a.DB, a.logger)

	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(a.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(chimiddleware.Compress(5))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/health", ctrl.Health.Check)
	r.Handle("/metrics", metrics.Handler())

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		if a.verifier != nil {
			r.Use(middleware.RequireAuth(a.verifier, a.logger))
		} else {
			a.logger.Warn("OIDC_ISSUER_URL is not set, journal API is unauthenticated")
		}
		r.Use(middleware.JournalAccess(a.Services.Journal, a.logger))

		r.Route("/journal/entries", func(r chi.Router) {
			r.Get("/", ctrl.Journal.Index)
			r.Get("/{id}", ctrl.Journal.Show)
		})
	})

	return r
}

// Close releases the kafka writer and the database
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

// requestLogger logs every request with zap once it completes
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("Request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			)
		})
	}
}
