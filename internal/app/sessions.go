package app

import (
	"errors"
	"net/http"

	"github.com/emreakdogan/cinema-booking-api/api"
	"github.com/emreakdogan/cinema-booking-api/internal/domain"
)

func (app *Application) GetMovieSessions(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	movieIDs, err := app.readCSVIntQuery(qs, "movie")
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	date, err := app.readDateQuery(qs, "date")
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.MovieSessionFilters{
		MovieIDs: movieIDs,
		Date:     date,
	}

	sessions, err := app.movieSessionRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieSessionListResponse{
		MovieSessions: toApiMovieSessionSummaries(sessions),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieSessionById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "sessionId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	session, err := app.movieSessionRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovieSessionDetail(*session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovieSession(w http.ResponseWriter, r *http.Request) {
	var input api.MovieSessionRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	session := domain.MovieSession{
		ShowTime:     input.ShowTime,
		MovieID:      input.MovieId,
		CinemaHallID: input.CinemaHallId,
	}

	err = app.movieSessionRepo.Create(r.Context(), &session)
	if err != nil {
		var validationError domain.ValidationError
		if errors.As(err, &validationError) {
			app.failedValidationResponse(w, r, err)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiMovieSession(session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovieSession(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "sessionId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.MovieSessionRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	session := domain.MovieSession{
		ID:           id,
		ShowTime:     input.ShowTime,
		MovieID:      input.MovieId,
		CinemaHallID: input.CinemaHallId,
	}

	err = app.movieSessionRepo.Update(r.Context(), &session)
	if err != nil {
		var validationError domain.ValidationError

		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.As(err, &validationError):
			app.failedValidationResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovieSession(session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovieSession(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "sessionId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.movieSessionRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toApiMovieSession(session domain.MovieSession) api.MovieSession {
	return api.MovieSession{
		Id:           session.ID,
		ShowTime:     session.ShowTime,
		MovieId:      session.MovieID,
		CinemaHallId: session.CinemaHallID,
	}
}

func toApiMovieSessionSummary(session domain.MovieSessionSummary) api.MovieSessionSummary {
	return api.MovieSessionSummary{
		Id:                 session.ID,
		ShowTime:           session.ShowTime,
		MovieTitle:         session.MovieTitle,
		CinemaHallName:     session.CinemaHallName,
		CinemaHallCapacity: session.CinemaHallCapacity,
		TicketsAvailable:   session.TicketsAvailable,
	}
}

func toApiMovieSessionSummaries(sessions []domain.MovieSessionSummary) []api.MovieSessionSummary {
	apiSessions := make([]api.MovieSessionSummary, len(sessions))

	for i, session := range sessions {
		apiSessions[i] = toApiMovieSessionSummary(session)
	}

	return apiSessions
}

func toApiMovieSessionDetail(session domain.MovieSessionDetail) api.MovieSessionDetail {
	takenSeats := make([]api.Seat, len(session.TakenSeats))
	for i, seat := range session.TakenSeats {
		takenSeats[i] = api.Seat{Row: seat.Row, Seat: seat.Seat}
	}

	return api.MovieSessionDetail{
		Id:         session.ID,
		ShowTime:   session.ShowTime,
		Movie:      toApiMovieSummary(session.Movie),
		CinemaHall: toApiCinemaHall(session.CinemaHall),
		TakenSeats: takenSeats,
	}
}
