package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/theatre-reservation-system/api"
	"github.com/metinatakli/theatre-reservation-system/internal/domain"
	"github.com/metinatakli/theatre-reservation-system/internal/media"
	appvalidator "github.com/metinatakli/theatre-reservation-system/internal/validator"
)

const multipartOverheadBytes = 1 << 20

// GetPlays lists plays, optionally narrowed by a title substring and comma separated
// genre and actor ids.
func (app *Application) GetPlays(w http.ResponseWriter, r *http.Request, params api.GetPlaysParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters, err := toPlayFilters(params)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	plays, err := app.playRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.PlayListItem, len(plays))
	for i, p := range plays {
		resp[i] = toPlayListItem(p)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toPlayFilters(params api.GetPlaysParams) (domain.PlayFilters, error) {
	genreIDs, err := appvalidator.ParseIDList(valueOr(params.Genres, ""))
	if err != nil {
		return domain.PlayFilters{}, err
	}

	actorIDs, err := appvalidator.ParseIDList(valueOr(params.Actors, ""))
	if err != nil {
		return domain.PlayFilters{}, err
	}

	return domain.PlayFilters{
		Title:    valueOr(params.Title, ""),
		GenreIDs: genreIDs,
		ActorIDs: actorIDs,
	}, nil
}

func (app *Application) GetPlay(w http.ResponseWriter, r *http.Request, playId api.PlayId) {
	if playId < 1 {
		app.badRequestResponse(w, r, invalidIDError("play"))
		return
	}

	play, err := app.playRepo.GetById(r.Context(), playId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toPlayDetailResponse(*play), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreatePlay(w http.ResponseWriter, r *http.Request) {
	var input api.PlayRequest

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

	play := domain.Play{
		Title:       input.Title,
		Description: input.Description,
		Actors:      make([]domain.Actor, len(input.Actors)),
		Genres:      make([]domain.Genre, len(input.Genres)),
	}

	for i, id := range input.Actors {
		play.Actors[i].ID = id
	}

	for i, id := range input.Genres {
		play.Genres[i].ID = id
	}

	err = app.playRepo.Create(r.Context(), &play)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidReference):
			app.errorResponse(w, r, http.StatusBadRequest, ErrUnknownReference)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("play created", "play_id", play.ID)

	err = app.writeJSON(w, http.StatusCreated, toPlayDetailResponse(play), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UploadPlayImage replaces the image of a play with the multipart "image" file.
func (app *Application) UploadPlayImage(w http.ResponseWriter, r *http.Request, playId api.PlayId) {
	if playId < 1 {
		app.badRequestResponse(w, r, invalidIDError("play"))
		return
	}

	play, err := app.playRepo.GetById(r.Context(), playId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, app.config.Media.MaxUploadBytes+multipartOverheadBytes)

	file, _, err := r.FormFile("image")
	if err != nil {
		var maxBytesErr *http.MaxBytesError

		switch {
		case errors.As(err, &maxBytesErr):
			app.badRequestResponse(w, r, media.ErrNotAnImage)
		default:
			app.badRequestResponse(w, r, errors.New("multipart field image is required"))
		}

		return
	}
	defer file.Close()

	url, err := app.images.SavePlayImage(play.Title, file)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrNotAnImage):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.playRepo.UpdateImage(r.Context(), play.ID, url)
	if err != nil {
		if rmErr := app.images.Remove(url); rmErr != nil {
			app.contextGetLogger(r).Warn("failed to remove orphaned play image", "image", url, "error", rmErr)
		}

		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("play image uploaded", "play_id", play.ID, "image", url)

	err = app.writeJSON(w, http.StatusOK, api.PlayImageResponse{Id: play.ID, Image: url}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toPlayListItem(play domain.Play) api.PlayListItem {
	item := api.PlayListItem{
		Id:          play.ID,
		Title:       play.Title,
		Description: play.Description,
		Image:       play.ImageURL,
		Genres:      make([]string, len(play.Genres)),
		Actors:      make([]string, len(play.Actors)),
	}

	for i, g := range play.Genres {
		item.Genres[i] = g.Name
	}

	for i, a := range play.Actors {
		item.Actors[i] = a.FullName()
	}

	return item
}

func toPlayDetailResponse(play domain.Play) api.PlayDetailResponse {
	resp := api.PlayDetailResponse{
		Id:          play.ID,
		Title:       play.Title,
		Description: play.Description,
		Image:       play.ImageURL,
		Actors:      make([]api.ActorResponse, len(play.Actors)),
		Genres:      make([]api.GenreResponse, len(play.Genres)),
	}

	for i, a := range play.Actors {
		resp.Actors[i] = toActorResponse(a)
	}

	for i, g := range play.Genres {
		resp.Genres[i] = toGenreResponse(g)
	}

	return resp
}
