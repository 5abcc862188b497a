package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/api/routes"
	"github.com/malith-nethsiri/valuerpro-backend/internal/applicants"
	"github.com/malith-nethsiri/valuerpro-backend/internal/auth"
	"github.com/malith-nethsiri/valuerpro-backend/internal/comparables"
	"github.com/malith-nethsiri/valuerpro-backend/internal/legalaspects"
	"github.com/malith-nethsiri/valuerpro-backend/internal/photos"
	"github.com/malith-nethsiri/valuerpro-backend/internal/properties"
	"github.com/malith-nethsiri/valuerpro-backend/internal/reports"
	"github.com/malith-nethsiri/valuerpro-backend/internal/uploads"
	"github.com/malith-nethsiri/valuerpro-backend/internal/users"
	"github.com/malith-nethsiri/valuerpro-backend/internal/valuations"
	"github.com/malith-nethsiri/valuerpro-backend/internal/valuerprofile"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/config"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/db"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/logger"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/metrics"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/migrate"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/redis"
)

// userLoader adapts the users repository to the auth middleware, turning
// a not-found row into a nil user rather than an error.
type userLoader struct {
	repo *users.Repository
}

func (l userLoader) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := l.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return user, err
}

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, auth rate limiting disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	userRepo := users.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	reportService, err := reports.NewService(reports.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create report service", err)
		os.Exit(1)
	}

	propertyService, err := properties.NewService(properties.NewRepository(dbClient.DB()), reportService)
	if err != nil {
		logg.Error(context.Background(), "failed to create property service", err)
		os.Exit(1)
	}

	valuationService, err := valuations.NewService(valuations.NewRepository(dbClient.DB()), reportService)
	if err != nil {
		logg.Error(context.Background(), "failed to create valuation service", err)
		os.Exit(1)
	}

	comparableService, err := comparables.NewService(comparables.NewRepository(dbClient.DB()), reportService)
	if err != nil {
		logg.Error(context.Background(), "failed to create comparable service", err)
		os.Exit(1)
	}

	photoService, err := photos.NewService(photos.NewRepository(dbClient.DB()), reportService)
	if err != nil {
		logg.Error(context.Background(), "failed to create photo service", err)
		os.Exit(1)
	}

	legalAspectService, err := legalaspects.NewService(legalaspects.NewRepository(dbClient.DB()), reportService)
	if err != nil {
		logg.Error(context.Background(), "failed to create legal aspect service", err)
		os.Exit(1)
	}

	applicantService, err := applicants.NewService(applicants.NewRepository(dbClient.DB()), reportService)
	if err != nil {
		logg.Error(context.Background(), "failed to create applicant service", err)
		os.Exit(1)
	}

	profileService, err := valuerprofile.NewService(valuerprofile.NewRepository(dbClient.DB()), applicantService)
	if err != nil {
		logg.Error(context.Background(), "failed to create valuer profile service", err)
		os.Exit(1)
	}

	uploadService, err := uploads.NewService(cfg.Upload)
	if err != nil {
		logg.Error(context.Background(), "failed to create upload service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			httpMetrics,
			metricsHandler,
			userLoader{repo: userRepo},
			authService,
			reportService,
			propertyService,
			valuationService,
			comparableService,
			photoService,
			legalAspectService,
			applicantService,
			profileService,
			uploadService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
