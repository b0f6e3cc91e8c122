package integration_test

import (
	"log/slog"
	"os"

	"github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emreakdogan/cinema-booking-api/internal/app"
	"github.com/emreakdogan/cinema-booking-api/internal/mailer"
	"github.com/emreakdogan/cinema-booking-api/internal/repository"
	appvalidator "github.com/emreakdogan/cinema-booking-api/internal/validator"
)

type TestApp struct {
	App            *app.Application
	DB             *pgxpool.Pool
	Mailer         *mailer.MockMailer
	SessionManager *scs.SessionManager
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	mockMailer := mailer.NewMockMailer()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	genreRepo := repository.NewPostgresGenreRepository(db)
	actorRepo := repository.NewPostgresActorRepository(db)
	cinemaHallRepo := repository.NewPostgresCinemaHallRepository(db)
	movieRepo := repository.NewPostgresMovieRepository(db)
	movieSessionRepo := repository.NewPostgresMovieSessionRepository(db)
	orderRepo := repository.NewPostgresOrderRepository(db)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mockMailer,
		sessionManager,
		genreRepo,
		actorRepo,
		cinemaHallRepo,
		movieRepo,
		movieSessionRepo,
		orderRepo,
	)

	return &TestApp{
		App:            application,
		DB:             db,
		Mailer:         mockMailer,
		SessionManager: sessionManager,
	}, nil
}
