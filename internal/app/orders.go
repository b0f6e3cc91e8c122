package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emreakdogan/cinema-booking-api/api"
	"github.com/emreakdogan/cinema-booking-api/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

func (app *Application) GetOrders(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	qs := r.URL.Query()

	page, err := app.readIntQuery(qs, "page", DefaultPage)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	pageSize, err := app.readIntQuery(qs, "pageSize", DefaultPageSize)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	pagination := domain.Pagination{Page: page, PageSize: pageSize}

	err = app.validator.Struct(pagination)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	orders, metadata, err := app.orderRepo.GetAllByUserId(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.OrderListResponse{
		Orders:   toApiOrders(orders),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetOrderById(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	id, err := app.readIDParam(r, "orderId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if order.UserID != userId {
		app.notPermittedResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiOrder(*order), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	var input api.CreateOrderRequest

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

	ticketRequests := make([]domain.TicketRequest, len(input.Tickets))
	for i, ticket := range input.Tickets {
		ticketRequests[i] = domain.TicketRequest{
			MovieSessionID: ticket.MovieSessionId,
			Row:            ticket.Row,
			Seat:           ticket.Seat,
		}
	}

	order := domain.Order{UserID: userId}

	err = app.orderRepo.Create(r.Context(), &order, ticketRequests)
	if err != nil {
		var validationError domain.ValidationError

		switch {
		case errors.As(err, &validationError):
			app.failedValidationResponse(w, r, err)
		case errors.Is(err, domain.ErrSeatAlreadyTaken):
			app.seatConflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.sendOrderConfirmation(r, order)

	err = app.writeJSON(w, http.StatusCreated, toApiOrder(order), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// sendOrderConfirmation emails the buyer in the background. Delivery failures
// are logged and never affect the response.
func (app *Application) sendOrderConfirmation(r *http.Request, order domain.Order) {
	email := app.sessionManager.GetString(r.Context(), SessionKeyUserEmail.String())
	if email == "" {
		return
	}

	go func() {
		defer func() {
			if err := recover(); err != nil {
				app.logError(r, fmt.Errorf("%v", err))
			}
		}()

		data := map[string]any{
			"orderId":     order.ID,
			"createdAt":   order.CreatedAt,
			"ticketCount": len(order.Tickets),
		}

		err := app.mailer.Send(email, "order_confirmation.tmpl", data)
		if err != nil {
			app.logError(r, err)
		}
	}()
}

func toApiOrder(order domain.Order) api.OrderResponse {
	tickets := make([]api.Ticket, len(order.Tickets))
	for i, ticket := range order.Tickets {
		tickets[i] = api.Ticket{
			Id:             ticket.ID,
			Row:            ticket.Row,
			Seat:           ticket.Seat,
			MovieSessionId: ticket.MovieSessionID,
		}
	}

	return api.OrderResponse{
		Id:        order.ID,
		CreatedAt: order.CreatedAt,
		Tickets:   tickets,
	}
}

func toApiOrders(orders []domain.Order) []api.OrderResponse {
	apiOrders := make([]api.OrderResponse, len(orders))

	for i, order := range orders {
		apiOrders[i] = toApiOrder(order)
	}

	return apiOrders
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
