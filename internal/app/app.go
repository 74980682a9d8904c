package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/metinatakli/theatre-reservation-system/internal/auth"
	"github.com/metinatakli/theatre-reservation-system/internal/booking"
	"github.com/metinatakli/theatre-reservation-system/internal/domain"
	"github.com/metinatakli/theatre-reservation-system/internal/media"
	"github.com/metinatakli/theatre-reservation-system/internal/repository"
	"github.com/metinatakli/theatre-reservation-system/internal/telemetry"
	appvalidator "github.com/metinatakli/theatre-reservation-system/internal/validator"
	"github.com/metinatakli/theatre-reservation-system/internal/vcs"
	"github.com/metinatakli/theatre-reservation-system/migrations"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
)

const serviceName = "theatre-reservation-api"

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	redis     redis.UniversalClient
	validator *validator.Validate
	issuer    *auth.Issuer
	denylist  *auth.Denylist
	images    *media.ImageStore
	booking   *booking.Service

	userRepo        domain.UserRepository
	tokenRepo       domain.TokenRepository
	actorRepo       domain.ActorRepository
	genreRepo       domain.GenreRepository
	theatreHallRepo domain.TheatreHallRepository
	playRepo        domain.PlayRepository
	performanceRepo domain.PerformanceRepository
	reservationRepo domain.ReservationRepository
}

type Config struct {
	Port             int
	Env              string
	DB               DBConfig
	Redis            RedisConfig
	JWT              JWTConfig
	Media            MediaConfig
	OtelCollectorUrl string
	OtelSampleRatio  float64
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
	Migrate      bool
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type JWTConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type MediaConfig struct {
	Dir            string
	URLPrefix      string
	MaxUploadBytes int64
}

// Repositories groups the storage the application is built on.
type Repositories struct {
	Users        domain.UserRepository
	Tokens       domain.TokenRepository
	Actors       domain.ActorRepository
	Genres       domain.GenreRepository
	TheatreHalls domain.TheatreHallRepository
	Plays        domain.PlayRepository
	Performances domain.PerformanceRepository
	Reservations domain.ReservationRepository
}

func NewPostgresRepositories(db *pgxpool.Pool) Repositories {
	return Repositories{
		Users:        repository.NewPostgresUserRepository(db),
		Tokens:       repository.NewPostgresTokenRepository(db),
		Actors:       repository.NewPostgresActorRepository(db),
		Genres:       repository.NewPostgresGenreRepository(db),
		TheatreHalls: repository.NewPostgresTheatreHallRepository(db),
		Plays:        repository.NewPostgresPlayRepository(db),
		Performances: repository.NewPostgresPerformanceRepository(db),
		Reservations: repository.NewPostgresReservationRepository(db),
	}
}

func Run() error {
	// a missing .env is fine, flags and the environment still apply
	_ = godotenv.Load()

	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", os.Getenv("DB_DSN"), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")
	flag.BoolVar(&cfg.DB.Migrate, "db-migrate", false, "Apply pending migrations on startup")

	flag.StringVar(&cfg.Redis.URL, "redis-url", os.Getenv("REDIS_URL"), "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.JWT.Secret, "jwt-secret", os.Getenv("JWT_SECRET"), "Secret used to sign access tokens")
	flag.DurationVar(&cfg.JWT.AccessTTL, "jwt-access-ttl", 15*time.Minute, "Access token lifetime")
	flag.DurationVar(&cfg.JWT.RefreshTTL, "jwt-refresh-ttl", 24*time.Hour, "Refresh token lifetime")

	flag.StringVar(&cfg.Media.Dir, "media-dir", "media", "Directory uploaded images are stored in")
	flag.StringVar(&cfg.Media.URLPrefix, "media-url-prefix", "/media", "URL prefix uploaded images are served under")
	flag.Int64Var(&cfg.Media.MaxUploadBytes, "media-max-upload-bytes", 5<<20, "Largest accepted image upload")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", os.Getenv("OTEL_COLLECTOR_URL"), "OpenTelemetry collector gRPC endpoint")
	flag.Float64Var(&cfg.OtelSampleRatio, "otel-sample-ratio", 1, "Fraction of root traces sampled outside dev")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	if cfg.JWT.Secret == "" {
		return errors.New("jwt secret must be provided with -jwt-secret or JWT_SECRET")
	}

	shutdownTelemetry, err := telemetry.Setup(context.Background(), telemetry.Options{
		ServiceName:    serviceName,
		ServiceVersion: version,
		Environment:    cfg.Env,
		CollectorURL:   cfg.OtelCollectorUrl,
		SampleRatio:    cfg.OtelSampleRatio,
	})
	if err != nil {
		return err
	}

	logger := telemetry.NewLogger(os.Stdout, serviceName, cfg.OtelCollectorUrl != "")

	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logger.Error("failed to shut down telemetry providers", "error", err)
		}
	}()

	if cfg.OtelCollectorUrl == "" {
		logger.Info("OpenTelemetry collector URL not set, telemetry export disabled")
	}

	if cfg.DB.Migrate {
		err = migrations.Up(cfg.DB.DSN)
		if err != nil {
			return err
		}

		logger.Info("database migrations applied")
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	app := NewApp(cfg, logger, db, redisClient, appvalidator.NewValidator(), NewPostgresRepositories(db))

	return app.run()
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	repos Repositories) *Application {

	return &Application{
		config:          cfg,
		logger:          logger,
		db:              db,
		redis:           redisClient,
		validator:       validator,
		issuer:          auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.AccessTTL),
		denylist:        auth.NewDenylist(redisClient),
		images:          media.NewImageStore(cfg.Media.Dir, cfg.Media.URLPrefix, cfg.Media.MaxUploadBytes),
		booking:         booking.NewService(repos.Reservations, logger),
		userRepo:        repos.Users,
		tokenRepo:       repos.Tokens,
		actorRepo:       repos.Actors,
		genreRepo:       repos.Genres,
		theatreHallRepo: repos.TheatreHalls,
		playRepo:        repos.Plays,
		performanceRepo: repos.Performances,
		reservationRepo: repos.Reservations,
	}
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	if err := redisotel.InstrumentTracing(rdb); err != nil {
		return nil, err
	}

	if err := redisotel.InstrumentMetrics(rdb); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
