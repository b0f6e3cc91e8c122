package app

import (
	"errors"
	"net/http"

	"github.com/emreakdogan/cinema-booking-api/api"
	"github.com/emreakdogan/cinema-booking-api/internal/domain"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	genreIDs, err := app.readCSVIntQuery(qs, "genres")
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	actorIDs, err := app.readCSVIntQuery(qs, "actors")
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.MovieFilters{
		GenreIDs: genreIDs,
		ActorIDs: actorIDs,
		Title:    qs.Get("title"),
	}

	movies, err := app.movieRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies: toApiMovieSummaries(movies),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovieDetail(*movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.MovieRequest

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

	movie := domain.Movie{
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
	}

	err = app.movieRepo.Create(r.Context(), &movie, input.GenreIds, input.ActorIds)
	if err != nil {
		var validationError domain.ValidationError
		if errors.As(err, &validationError) {
			app.failedValidationResponse(w, r, err)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiMovieDetail(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.MovieRequest

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

	movie := domain.Movie{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
	}

	err = app.movieRepo.Update(r.Context(), &movie, input.GenreIds, input.ActorIds)
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

	err = app.writeJSON(w, http.StatusOK, toApiMovieDetail(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.movieRepo.Delete(r.Context(), id)
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

func toApiMovieSummary(movie domain.MovieSummary) api.MovieSummary {
	return api.MovieSummary{
		Id:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		Genres:      movie.Genres,
		Actors:      movie.Actors,
	}
}

func toApiMovieSummaries(movies []domain.MovieSummary) []api.MovieSummary {
	apiMovies := make([]api.MovieSummary, len(movies))

	for i, movie := range movies {
		apiMovies[i] = toApiMovieSummary(movie)
	}

	return apiMovies
}

func toApiMovieDetail(movie domain.Movie) api.MovieDetail {
	return api.MovieDetail{
		Id:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		Genres:      toApiGenres(movie.Genres),
		Actors:      toApiActors(movie.Actors),
	}
}
