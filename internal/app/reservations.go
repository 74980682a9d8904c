package app

import (
	"errors"
	"math"
	"net/http"

	"github.com/metinatakli/theatre-reservation-system/api"
	"github.com/metinatakli/theatre-reservation-system/internal/domain"
)

const (
	DefaultPage                = 1
	DefaultReservationPageSize = 3
	MaxReservationPageSize     = 20

	// MaxReservationPage keeps the row offset of the last page within int32.
	MaxReservationPage = math.MaxInt32 / MaxReservationPageSize
)

func (app *Application) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var input api.CreateReservationRequest

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

	user := app.contextGetUser(r)

	requests := make([]domain.TicketRequest, len(input.Tickets))
	for i, t := range input.Tickets {
		requests[i] = domain.TicketRequest{
			Row:           t.Row,
			Seat:          t.Seat,
			PerformanceID: t.Performance,
		}
	}

	reservation, err := app.booking.CreateReservation(r.Context(), user.ID, requests)
	if err != nil {
		var ticketErrs domain.TicketErrors

		switch {
		case errors.As(err, &ticketErrs):
			app.ticketErrorsResponse(w, r, ticketErrs)
		case errors.Is(err, domain.ErrNoTickets):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toReservationResponse(*reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetReservations lists the caller's reservations, newest first. page_size above the
// maximum is capped and a non-positive one falls back to the default.
func (app *Application) GetReservations(w http.ResponseWriter, r *http.Request, params api.GetReservationsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	user := app.contextGetUser(r)
	pagination := toPagination(params)

	reservations, metadata, err := app.reservationRepo.GetAllByUserId(r.Context(), user.ID, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ReservationListResponse{
		Reservations: make([]api.ReservationResponse, len(reservations)),
		Metadata:     toApiMetadata(metadata),
	}

	for i, v := range reservations {
		resp.Reservations[i] = toReservationResponse(v)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toPagination(params api.GetReservationsParams) domain.Pagination {
	pagination := domain.Pagination{
		Page:     valueOr(params.Page, DefaultPage),
		PageSize: valueOr(params.PageSize, DefaultReservationPageSize),
	}

	if pagination.PageSize < 1 {
		pagination.PageSize = DefaultReservationPageSize
	}
	pagination.PageSize = min(pagination.PageSize, MaxReservationPageSize)

	return pagination
}

func toReservationResponse(reservation domain.Reservation) api.ReservationResponse {
	resp := api.ReservationResponse{
		Id:        reservation.ID,
		CreatedAt: reservation.CreatedAt,
		Tickets:   make([]api.TicketResponse, len(reservation.Tickets)),
	}

	for i, t := range reservation.Tickets {
		ticket := api.TicketResponse{
			Id:   t.ID,
			Row:  t.Row,
			Seat: t.Seat,
			Performance: api.TicketPerformance{
				Id: t.PerformanceID,
			},
		}

		if p := t.Performance; p != nil {
			showTime := p.ShowTime
			ticket.Performance.PlayTitle = p.PlayTitle
			ticket.Performance.TheatreHallName = p.TheatreHall.Name
			ticket.Performance.ShowTime = &showTime
		}

		resp.Tickets[i] = ticket
	}

	return resp
}

func toApiMetadata(metadata *domain.Metadata) api.Metadata {
	if metadata == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
