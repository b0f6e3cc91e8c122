package app

import (
	"errors"
	"net/http"

	"github.com/emreakdogan/cinema-booking-api/api"
	"github.com/emreakdogan/cinema-booking-api/internal/domain"
)

func (app *Application) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := app.genreRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.GenreListResponse{
		Genres: toApiGenres(genres),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetGenreById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "genreId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	genre, err := app.genreRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiGenre(*genre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var input api.GenreRequest

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

	genre := domain.Genre{Name: input.Name}

	err = app.genreRepo.Create(r.Context(), &genre)
	if err != nil {
		var validationError domain.ValidationError
		if errors.As(err, &validationError) {
			app.failedValidationResponse(w, r, err)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiGenre(genre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "genreId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.GenreRequest

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

	genre := domain.Genre{ID: id, Name: input.Name}

	err = app.genreRepo.Update(r.Context(), &genre)
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

	err = app.writeJSON(w, http.StatusOK, toApiGenre(genre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "genreId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.genreRepo.Delete(r.Context(), id)
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

func toApiGenre(genre domain.Genre) api.Genre {
	return api.Genre{
		Id:   genre.ID,
		Name: genre.Name,
	}
}

func toApiGenres(genres []domain.Genre) []api.Genre {
	apiGenres := make([]api.Genre, len(genres))

	for i, genre := range genres {
		apiGenres[i] = toApiGenre(genre)
	}

	return apiGenres
}
