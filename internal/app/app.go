// Package app wires configuration, storage and services into a running planner. Both the HTTP
// server and the CLI build on it.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-planner/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-planner/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-planner/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-planner/internal/config"
	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
	"github.com/comitanigiacomo/kanso-planner/internal/core/workers"
)

type Options struct {
	// Clock defaults to the system clock.
	Clock domain.Clock

	// Debounce routes slot text through the content saver. The caller must Start it.
	Debounce bool
}

type App struct {
	Config *config.Config
	Logger *zap.Logger

	DB    *sqlx.DB
	Redis *redis.Client
	Saver *workers.ContentSaver

	Calendar *services.Calendar
	Scoring  *services.ScoringService
	Slots    *services.SlotService
	Habits   *services.HabitService
	Ratings  *services.RatingService
	Planner  *services.PlannerService
	Stats    *services.StatsService
	Tokens   *services.TokenService
	Auth     *services.AuthService
}

type stores struct {
	habits  domain.HabitRepository
	slots   domain.SlotRepository
	checks  domain.CheckmarkRepository
	ratings domain.RatingRepository
}

func openStores(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, stores, error) {
	var db *sqlx.DB
	var err error

	switch cfg.Driver {
	case config.DriverMemory:
		return nil, stores{
			habits:  repository.NewInMemoryHabitRepository(),
			slots:   repository.NewInMemorySlotRepository(),
			checks:  repository.NewInMemoryCheckmarkRepository(),
			ratings: repository.NewInMemoryRatingRepository(),
		}, nil
	case config.DriverSQLite:
		db, err = repository.OpenSQLite(ctx, cfg.DataDir)
	case config.DriverPostgres:
		db, err = repository.OpenPostgres(ctx, repository.DriverPostgres, cfg.DSN())
	case config.DriverPgx:
		db, err = repository.OpenPostgres(ctx, repository.DriverPgx, cfg.DSN())
	default:
		err = fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, stores{}, err
	}

	return db, stores{
		habits:  repository.NewSQLHabitRepository(db),
		slots:   repository.NewSQLSlotRepository(db),
		checks:  repository.NewSQLCheckmarkRepository(db),
		ratings: repository.NewSQLRatingRepository(db),
	}, nil
}

// New opens storage and builds every service. A configured but unreachable Redis is logged and
// skipped.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts Options) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = domain.SystemClock{}
	}

	db, st, err := openStores(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	logger.Info("storage ready", zap.String("driver", cfg.Database.Driver))

	a := &App{Config: cfg, Logger: logger, DB: db}

	habits := st.habits
	if cfg.Redis.Enabled() {
		rdb, err := cache.NewRedisClient(ctx, cache.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Warn("redis unavailable, running without cache and rate limiting", zap.Error(err))
		} else {
			a.Redis = rdb
			habits = repository.NewCachedHabitRepository(habits, rdb, logger)
		}
	}

	layout := cfg.SlotLayout()
	a.Calendar = services.NewCalendar(clock, cfg.Location())
	a.Scoring = services.NewScoringService(st.slots, habits, st.checks, st.ratings, a.Calendar, layout, logger.Named("scoring"))

	var queue services.ContentQueue
	if opts.Debounce {
		a.Saver = workers.NewContentSaver(st.slots, cfg.Planner.SaveDelay, logger)
		queue = a.Saver
	}

	a.Slots = services.NewSlotService(st.slots, a.Scoring, a.Calendar, queue)
	a.Habits = services.NewHabitService(habits, st.checks, a.Scoring, a.Calendar)
	a.Ratings = services.NewRatingService(st.ratings)
	a.Planner = services.NewPlannerService(a.Slots, st.slots, habits, st.checks, st.ratings, a.Scoring, a.Calendar, logger.Named("planner"))
	a.Stats = services.NewStatsService(habits, st.checks, st.slots, st.ratings, a.Calendar, layout)
	a.Tokens = services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	a.Auth = services.NewAuthService(cfg.Auth.PassphraseHash, a.Tokens)

	return a, nil
}

// Router builds the HTTP API. Routes require a token only when passphrase login is configured.
func (a *App) Router(startTime time.Time) *gin.Engine {
	deps := adapterHTTP.RouterDependencies{
		AuthHandler:   adapterHTTP.NewAuthHandler(a.Auth),
		WeekHandler:   adapterHTTP.NewWeekHandler(a.Planner, a.Stats, a.Scoring),
		SlotHandler:   adapterHTTP.NewSlotHandler(a.Slots),
		HabitHandler:  adapterHTTP.NewHabitHandler(a.Habits),
		RatingHandler: adapterHTTP.NewRatingHandler(a.Ratings),
		Redis:         a.Redis,
		RateLimit:     a.Config.RateLimit.Requests,
		RateWindow:    a.Config.RateLimit.Window,
		Logger:        a.Logger,
		StartTime:     startTime,
	}
	if a.DB != nil {
		deps.DB = a.DB
	}
	if a.Auth.Enabled() {
		deps.Tokens = a.Tokens
	}
	return adapterHTTP.NewRouter(deps)
}

// Close releases storage and cache connections. Stop the saver first so its last flush lands.
func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}
