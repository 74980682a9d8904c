package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/theatre-reservation-system/api"
	"github.com/metinatakli/theatre-reservation-system/internal/domain"
)

func (app *Application) GetPerformances(w http.ResponseWriter, r *http.Request) {
	performances, err := app.performanceRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.PerformanceListItem, len(performances))
	for i, p := range performances {
		resp[i] = api.PerformanceListItem{
			Id:                  p.ID,
			ShowTime:            p.ShowTime,
			PlayTitle:           p.PlayTitle,
			PlayImage:           p.PlayImageURL,
			TheatreHallName:     p.TheatreHall.Name,
			TheatreHallCapacity: p.TheatreHall.Capacity(),
			TicketsAvailable:    p.TicketsAvailable(),
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPerformance(w http.ResponseWriter, r *http.Request, performanceId api.PerformanceId) {
	if performanceId < 1 {
		app.badRequestResponse(w, r, invalidIDError("performance"))
		return
	}

	detail, err := app.performanceRepo.GetById(r.Context(), performanceId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.PerformanceDetailResponse{
		Id:               detail.ID,
		ShowTime:         detail.ShowTime,
		Play:             toPlayDetailResponse(detail.Play),
		TheatreHall:      toTheatreHallResponse(detail.TheatreHall),
		TicketsAvailable: detail.TicketsAvailable(),
		TakenPlaces:      make([]api.TakenPlace, len(detail.TakenPlaces)),
	}

	for i, s := range detail.TakenPlaces {
		resp.TakenPlaces[i] = api.TakenPlace{Row: s.Row, Seat: s.Seat}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreatePerformance(w http.ResponseWriter, r *http.Request) {
	performance, ok := app.readPerformance(w, r)
	if !ok {
		return
	}

	err := app.performanceRepo.Create(r.Context(), performance)
	if err != nil {
		app.performanceWriteError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toPerformanceResponse(performance), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdatePerformance(w http.ResponseWriter, r *http.Request, performanceId api.PerformanceId) {
	if performanceId < 1 {
		app.badRequestResponse(w, r, invalidIDError("performance"))
		return
	}

	performance, ok := app.readPerformance(w, r)
	if !ok {
		return
	}
	performance.ID = performanceId

	err := app.performanceRepo.Update(r.Context(), performance)
	if err != nil {
		app.performanceWriteError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toPerformanceResponse(performance), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeletePerformance also removes every ticket sold for it.
func (app *Application) DeletePerformance(w http.ResponseWriter, r *http.Request, performanceId api.PerformanceId) {
	if performanceId < 1 {
		app.badRequestResponse(w, r, invalidIDError("performance"))
		return
	}

	err := app.performanceRepo.Delete(r.Context(), performanceId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("performance deleted", "performance_id", performanceId)

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) readPerformance(w http.ResponseWriter, r *http.Request) (*domain.Performance, bool) {
	var input api.PerformanceRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return nil, false
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return nil, false
	}

	return &domain.Performance{
		PlayID:      input.Play,
		TheatreHall: domain.TheatreHall{ID: input.TheatreHall},
		ShowTime:    input.ShowTime,
	}, true
}

func (app *Application) performanceWriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidReference):
		app.errorResponse(w, r, http.StatusBadRequest, ErrUnknownReference)
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func toPerformanceResponse(performance *domain.Performance) api.PerformanceResponse {
	return api.PerformanceResponse{
		Id:          performance.ID,
		Play:        performance.PlayID,
		TheatreHall: performance.TheatreHall.ID,
		ShowTime:    performance.ShowTime,
	}
}
