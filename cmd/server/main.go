package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dealergate/internal/account"
	"dealergate/internal/company"
	"dealergate/internal/company/models"
	"dealergate/internal/company/service"
	"dealergate/internal/company/store"
	"dealergate/internal/platform/config"
	"dealergate/internal/platform/httpserver"
	"dealergate/internal/platform/logger"
	"dealergate/internal/platform/metrics"
	"dealergate/internal/platform/middleware"
	platformredis "dealergate/internal/platform/redis"
	"dealergate/internal/registry"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New(cfg.LogFormat)
	m := metrics.New()

	var lookup service.Registry = registry.NewClient(cfg.RegistryBaseURL, log)
	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis unavailable", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		lookup = registry.NewCachedLookuper(lookup, redisClient, config.RegistryCacheTTL, log)
		defer redisClient.Close()
	}

	var (
		accounts  account.Directory
		companies store.CompanyStore
		terms     store.TermStore
	)
	if cfg.IsLocal() {
		memCompanies := store.NewMemoryCompanyStore()
		accounts = account.NewMemoryDirectory(func(ctx context.Context, u *account.User) error {
			_, err := memCompanies.CreateForOwner(ctx, u.ID)
			return err
		})
		memTerms := store.NewMemoryTermStore()
		memTerms.Put(localTerm())
		companies, terms = memCompanies, memTerms
		log.Info("running with in-memory stores", "profile", cfg.Profile)
	} else {
		pool, err := pgxpool.New(context.Background(), cfg.StoreURL)
		if err != nil {
			log.Error("store connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		accounts = account.NewPostgresDirectory(pool)
		companies = store.NewPostgresCompanyStore(pool)
		terms = store.NewPostgresTermStore(pool)
	}

	tokens := account.NewTokenService(cfg.StoreServiceKey, "dealergate")
	svc := company.NewService(lookup, accounts, companies, terms, log, m)
	wrapper := middleware.NewWrapper(log, m)
	handler := company.NewHandler(svc, tokens, wrapper, log)

	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	handler.Register(router)

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting dealergate", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// localTerm seeds a deterministic active term for the local profile.
func localTerm() models.Term {
	return models.Term{
		Hash:          "local-dev-term",
		Version:       "v0",
		Text:          "Termos de uso (ambiente local).",
		EffectiveFrom: time.Now(),
	}
}
