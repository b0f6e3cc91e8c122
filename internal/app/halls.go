package app

import (
	"errors"
	"net/http"

	"github.com/emreakdogan/cinema-booking-api/api"
	"github.com/emreakdogan/cinema-booking-api/internal/domain"
)

func (app *Application) GetCinemaHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := app.cinemaHallRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CinemaHallListResponse{
		CinemaHalls: toApiCinemaHalls(halls),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCinemaHallById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "hallId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	hall, err := app.cinemaHallRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiCinemaHall(*hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateCinemaHall(w http.ResponseWriter, r *http.Request) {
	var input api.CinemaHallRequest

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

	hall := domain.CinemaHall{
		Name:       input.Name,
		Rows:       input.Rows,
		SeatsInRow: input.SeatsInRow,
	}

	err = app.cinemaHallRepo.Create(r.Context(), &hall)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiCinemaHall(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateCinemaHall(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "hallId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.CinemaHallRequest

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

	hall := domain.CinemaHall{
		ID:         id,
		Name:       input.Name,
		Rows:       input.Rows,
		SeatsInRow: input.SeatsInRow,
	}

	err = app.cinemaHallRepo.Update(r.Context(), &hall)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiCinemaHall(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteCinemaHall(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "hallId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.cinemaHallRepo.Delete(r.Context(), id)
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

func toApiCinemaHall(hall domain.CinemaHall) api.CinemaHall {
	return api.CinemaHall{
		Id:         hall.ID,
		Name:       hall.Name,
		Rows:       hall.Rows,
		SeatsInRow: hall.SeatsInRow,
		Capacity:   hall.Capacity(),
	}
}

func toApiCinemaHalls(halls []domain.CinemaHall) []api.CinemaHall {
	apiHalls := make([]api.CinemaHall, len(halls))

	for i, hall := range halls {
		apiHalls[i] = toApiCinemaHall(hall)
	}

	return apiHalls
}
