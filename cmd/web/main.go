package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"almil.org/almil-web/internal/catalog"
	"almil.org/almil-web/internal/cms"
	"almil.org/almil-web/internal/config"
	"almil.org/almil-web/internal/contact"
	handlersPkg "almil.org/almil-web/internal/handlers"
	"almil.org/almil-web/internal/i18n"
	"almil.org/almil-web/internal/metrics"
	mw "almil.org/almil-web/internal/middleware"
)

const (
	defaultLang     = "en"
	cmsCacheTTL     = 5 * time.Minute
	shutdownTimeout = 10 * time.Second
	requestTimeout  = 30 * time.Second
)

// site bundles the dependencies shared by all handlers.
type site struct {
	cfg       config.Config
	log       *zap.Logger
	layout    handlersPkg.Layout
	templates *templateSet
	i18n      *i18n.Bundle
	content   *cms.Client
	catalog   *catalog.Store
	metrics   *metrics.Metrics
	submitter contact.Submitter
	publicDir string

	// inflight holds the form currently submitting for each session id.
	inflight sync.Map
}

type paths struct {
	templates string
	public    string
	locales   string
}

func main() {
	var (
		addr     string
		envFile  string
		p        paths
		content  string
		logLevel = os.Getenv("LOG_LEVEL")
	)
	flag.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flag.StringVar(&addr, "addr", "", "HTTP listen address (default :$ALMIL_WEB_PORT)")
	flag.StringVar(&p.templates, "templates", "templates", "templates directory")
	flag.StringVar(&p.public, "public", "public", "public assets directory")
	flag.StringVar(&content, "content", "", "markdown content directory (default $ALMIL_WEB_CONTENT_DIR)")
	flag.StringVar(&p.locales, "locales", "locales", "locale JSON directory")
	flag.Parse()

	logger, err := mw.NewLogger(logLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := config.LoadEnvFile(envFile); err != nil {
		logger.Fatal("load env file", zap.Error(err))
	}
	cfg, err := config.Load(nil)
	if err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			logger.Fatal("invalid configuration", zap.Strings("fields", verr.Fields()))
		}
		logger.Fatal("load configuration", zap.Error(err))
	}
	if content != "" {
		cfg.Site.ContentDir = content
	}
	if addr == "" {
		addr = ":" + cfg.Server.Port
	}

	s, err := newSite(cfg, p, logger)
	if err != nil {
		logger.Fatal("initialise site", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(s),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web listening",
			zap.String("addr", addr),
			zap.Bool("dev", cfg.Server.Dev),
			zap.String("env", cfg.Server.Environment),
			zap.Bool("contact_remote", cfg.Contact.Endpoint != ""),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown", zap.Error(err))
		}
	}
}

// newSite wires configuration into the handler dependencies.
func newSite(cfg config.Config, p paths, logger *zap.Logger) (*site, error) {
	bundle, err := i18n.Load(p.locales, defaultLang, defaultLang)
	if err != nil {
		return nil, err
	}
	ts, err := newTemplateSet(p.templates, cfg.Server.Dev, bundle)
	if err != nil {
		return nil, err
	}
	var submitter contact.Submitter = contact.Simulated{Delay: cfg.Contact.Delay}
	if cfg.Contact.Endpoint != "" {
		hs, err := contact.NewHTTPSubmitter(cfg.Contact.Endpoint, cfg.Contact.Retries)
		if err != nil {
			return nil, err
		}
		submitter = hs
	}
	ttl := cmsCacheTTL
	if cfg.Server.Dev {
		ttl = 0
	}
	return &site{
		cfg: cfg,
		log: logger,
		layout: handlersPkg.Layout{
			Lang:      defaultLang,
			BaseURL:   cfg.Site.BaseURL,
			Analytics: handlersPkg.AnalyticsFrom(cfg.Analytics),
		},
		templates: ts,
		i18n:      bundle,
		content:   cms.NewClient(cfg.Site.ContentDir, ttl),
		catalog:   catalog.Default(),
		metrics:   metrics.New(),
		submitter: submitter,
		publicDir: p.public,
	}, nil
}

func newRouter(s *site) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Logger(s.log, s.metrics))
	r.Use(chimw.Recoverer)

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Handle("/assets/*", mw.AssetsWithCache(filepath.Join(s.publicDir, "assets"), "/assets"))
	r.Handle("/images/*", mw.AssetsWithCache(filepath.Join(s.publicDir, "images"), "/images"))

	// Pages carry a session for the flash message and the contact form token.
	r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(requestTimeout))
		r.Use(mw.Session(mw.SessionConfig{
			SigningKey: s.cfg.Server.SigningKey,
			Secure:     s.cfg.Server.Prod(),
			Logger:     s.log,
		}))
		r.Use(mw.CSRF)

		r.Get("/", s.HomeHandler)
		r.Get("/about", s.AboutHandler)
		r.Get("/why-almil", s.WhyHandler)
		r.Get("/products", s.ProductsHandler)
		r.Get("/products/{id}", s.ProductHandler)
		r.Get("/products/{id}/gallery", s.ProductGalleryFrag)
		r.Get("/contact", s.ContactHandler)
		r.Post("/contact", s.ContactSubmitHandler)
	})

	r.NotFound(s.NotFoundHandler)
	return r
}
