package app

import (
	"errors"
	"net/http"

	"github.com/emreakdogan/cinema-booking-api/api"
	"github.com/emreakdogan/cinema-booking-api/internal/domain"
)

func (app *Application) GetActors(w http.ResponseWriter, r *http.Request) {
	actors, err := app.actorRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ActorListResponse{
		Actors: toApiActors(actors),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetActorById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "actorId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	actor, err := app.actorRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiActor(*actor), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateActor(w http.ResponseWriter, r *http.Request) {
	var input api.ActorRequest

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

	actor := domain.Actor{
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	err = app.actorRepo.Create(r.Context(), &actor)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiActor(actor), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateActor(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "actorId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.ActorRequest

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

	actor := domain.Actor{
		ID:        id,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	err = app.actorRepo.Update(r.Context(), &actor)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiActor(actor), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteActor(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "actorId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.actorRepo.Delete(r.Context(), id)
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

func toApiActor(actor domain.Actor) api.Actor {
	return api.Actor{
		Id:        actor.ID,
		FirstName: actor.FirstName,
		LastName:  actor.LastName,
		FullName:  actor.FullName(),
	}
}

func toApiActors(actors []domain.Actor) []api.Actor {
	apiActors := make([]api.Actor, len(actors))

	for i, actor := range actors {
		apiActors[i] = toApiActor(actor)
	}

	return apiActors
}
