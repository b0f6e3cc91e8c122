package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	playgroundvalidator "github.com/go-playground/validator/v10"

	"github.com/emreakdogan/cinema-booking-api/api"
	"github.com/emreakdogan/cinema-booking-api/internal/domain"
	appvalidator "github.com/emreakdogan/cinema-booking-api/internal/validator"
)

const (
	ErrInternalServer   = "The server encountered a problem and could not process your request"
	ErrNotFound         = "The requested resource not found"
	ErrUnauthorized     = "You must be authenticated to access this resource"
	ErrForbidden        = "You do not have permission to access this resource"
	ErrValidationFailed = "One or more fields have invalid values"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// failedValidationResponse renders field-tagged validation failures, whether
// they come from the request validator or from the domain layer.
func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	details := make([]api.ValidationErrorDetail, 0)

	var fieldErrors playgroundvalidator.ValidationErrors
	var validationError domain.ValidationError

	switch {
	case errors.As(err, &fieldErrors):
		for _, fieldError := range fieldErrors {
			details = append(details, api.ValidationErrorDetail{
				Field: fieldError.Field(),
				Issue: appvalidator.ValidationMessage(fieldError),
			})
		}
	case errors.As(err, &validationError):
		details = append(details, api.ValidationErrorDetail{
			Field: validationError.Field,
			Issue: validationError.Message,
		})
	default:
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Message:          ErrValidationFailed,
		ValidationErrors: details,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
	}

	writeErr := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if writeErr != nil {
		app.logError(r, writeErr)
		w.WriteHeader(500)
	}
}

// seatConflictResponse reports a seat lost to a concurrent order. The caller
// must pick another seat; nothing is retried automatically.
func (app *Application) seatConflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusConflict, err.Error())
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrUnauthorized)
}

func (app *Application) notPermittedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusForbidden, ErrForbidden)
}
