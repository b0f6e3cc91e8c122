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

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"

	"github.com/emreakdogan/cinema-booking-api/internal/domain"
	"github.com/emreakdogan/cinema-booking-api/internal/mailer"
	"github.com/emreakdogan/cinema-booking-api/internal/repository"
	appvalidator "github.com/emreakdogan/cinema-booking-api/internal/validator"
	"github.com/emreakdogan/cinema-booking-api/internal/vcs"
)

var (
	version = vcs.Version()
)

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          redis.UniversalClient
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager

	genreRepo        domain.GenreRepository
	actorRepo        domain.ActorRepository
	cinemaHallRepo   domain.CinemaHallRepository
	movieRepo        domain.MovieRepository
	movieSessionRepo domain.MovieSessionRepository
	orderRepo        domain.OrderRepository
}

type Config struct {
	Port             int
	Env              string
	DB               DBConfig
	Redis            RedisConfig
	SMTP             SMTPConfig
	OtelCollectorUrl string
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	mailer mailer.Mailer,
	sessionManager *scs.SessionManager,
	genreRepo domain.GenreRepository,
	actorRepo domain.ActorRepository,
	cinemaHallRepo domain.CinemaHallRepository,
	movieRepo domain.MovieRepository,
	movieSessionRepo domain.MovieSessionRepository,
	orderRepo domain.OrderRepository,
) *Application {
	return &Application{
		config:           cfg,
		logger:           logger,
		db:               db,
		redis:            redisClient,
		validator:        validator,
		mailer:           mailer,
		sessionManager:   sessionManager,
		genreRepo:        genreRepo,
		actorRepo:        actorRepo,
		cinemaHallRepo:   cinemaHallRepo,
		movieRepo:        movieRepo,
		movieSessionRepo: movieSessionRepo,
		orderRepo:        orderRepo,
	}
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.SMTP.Host, "smtp-host", "sandbox.smtp.mailtrap.io", "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", 2525, "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", "", "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", "", "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", "Cinema Booking <no-reply@cinema.emreakdogan.net>", "SMTP sender")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	validator := appvalidator.NewValidator()

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

	genreRepo := repository.NewPostgresGenreRepository(db)
	actorRepo := repository.NewPostgresActorRepository(db)
	cinemaHallRepo := repository.NewPostgresCinemaHallRepository(db)
	movieRepo := repository.NewPostgresMovieRepository(db)
	movieSessionRepo := repository.NewPostgresMovieSessionRepository(db)
	orderRepo := repository.NewPostgresOrderRepository(db)

	app := NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		NewSessionManager(redisClient),
		genreRepo,
		actorRepo,
		cinemaHallRepo,
		movieRepo,
		movieSessionRepo,
		orderRepo,
	)

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.serve()
}

func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := redisotel.InstrumentTracing(rdb)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
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

	config.ConnConfig.Tracer = otelpgx.NewTracer()
	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)

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

func (app *Application) serve() error {
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

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

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

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("cinema-booking-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/healthcheck", app.GetHealth)

	r.Route("/genres", func(r chi.Router) {
		r.Get("/", app.GetGenres)
		r.Post("/", app.CreateGenre)
		r.Route("/{genreId}", func(r chi.Router) {
			r.Get("/", app.GetGenreById)
			r.Put("/", app.UpdateGenre)
			r.Delete("/", app.DeleteGenre)
		})
	})

	r.Route("/actors", func(r chi.Router) {
		r.Get("/", app.GetActors)
		r.Post("/", app.CreateActor)
		r.Route("/{actorId}", func(r chi.Router) {
			r.Get("/", app.GetActorById)
			r.Put("/", app.UpdateActor)
			r.Delete("/", app.DeleteActor)
		})
	})

	r.Route("/cinema-halls", func(r chi.Router) {
		r.Get("/", app.GetCinemaHalls)
		r.Post("/", app.CreateCinemaHall)
		r.Route("/{hallId}", func(r chi.Router) {
			r.Get("/", app.GetCinemaHallById)
			r.Put("/", app.UpdateCinemaHall)
			r.Delete("/", app.DeleteCinemaHall)
		})
	})

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.GetMovies)
		r.Post("/", app.CreateMovie)
		r.Route("/{movieId}", func(r chi.Router) {
			r.Get("/", app.GetMovieById)
			r.Put("/", app.UpdateMovie)
			r.Delete("/", app.DeleteMovie)
		})
	})

	r.Route("/movie-sessions", func(r chi.Router) {
		r.Get("/", app.GetMovieSessions)
		r.Post("/", app.CreateMovieSession)
		r.Route("/{sessionId}", func(r chi.Router) {
			r.Get("/", app.GetMovieSessionById)
			r.Put("/", app.UpdateMovieSession)
			r.Delete("/", app.DeleteMovieSession)
		})
	})

	r.With(app.requireAuthentication).Route("/orders", func(r chi.Router) {
		r.Get("/", app.GetOrders)
		r.Post("/", app.CreateOrder)
		r.Get("/{orderId}", app.GetOrderById)
	})

	return r
}
