package book

import (
	"errors"
	"io"
	"net/http"

	"bookshelf/internal/httpx"

	"github.com/rs/zerolog"
)

const (
	msgAdded          = "Book successfully added"
	msgAddFailed      = "Failed to add book"
	msgNotFound       = "Book not found"
	msgUpdated        = "Book successfully updated"
	msgUpdateNotFound = "Failed to update book. Id not found"
	msgDeleted        = "Book successfully deleted"
	msgDeleteNotFound = "Failed to delete book. Id not found"
	msgInternal       = "Internal server error"
)

type HTTPHandler struct {
	service *Service
	log     zerolog.Logger
}

func NewHTTPHandler(service *Service, log zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := h.decodePayload(w, r, ModeCreate)
	if !ok {
		return
	}

	id, err := h.service.Create(r.Context(), p)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			httpx.JSONFail(w, http.StatusBadRequest, vErr.Error())
			return
		}
		h.log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("create book failed")
		httpx.JSONFail(w, http.StatusInternalServerError, msgAddFailed)
		return
	}

	httpx.JSONSuccess(w, http.StatusCreated, msgAdded, map[string]any{
		"bookId": id,
	})
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := Filter{
		Name:     query.Get("name"),
		Reading:  ParseFlag(query.Get("reading")),
		Finished: ParseFlag(query.Get("finished")),
	}

	books, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("list books failed")
		httpx.JSONFail(w, http.StatusInternalServerError, msgInternal)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "", map[string]any{
		"books": books,
	})
}

// Get handles GET /books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, msgNotFound)
			return
		}
		h.log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("get book failed")
		httpx.JSONFail(w, http.StatusInternalServerError, msgInternal)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "", map[string]any{
		"book": b,
	})
}

// Update handles PUT /books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := h.decodePayload(w, r, ModeUpdate)
	if !ok {
		return
	}

	err := h.service.Update(r.Context(), r.PathValue("id"), p)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			httpx.JSONFail(w, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, ErrNotFound):
			httpx.JSONFail(w, http.StatusNotFound, msgUpdateNotFound)
		default:
			h.log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("update book failed")
			httpx.JSONFail(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, msgUpdated, nil)
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, msgDeleteNotFound)
			return
		}
		h.log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("delete book failed")
		httpx.JSONFail(w, http.StatusInternalServerError, msgInternal)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, msgDeleted, nil)
}

// decodePayload reads the JSON body. An empty body decodes to an empty
// payload so that validation reports the missing name.
func (h *HTTPHandler) decodePayload(w http.ResponseWriter, r *http.Request, mode Mode) (Payload, bool) {
	var p Payload
	err := httpx.DecodeJSON(r, &p)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		httpx.JSONFail(w, http.StatusRequestEntityTooLarge, httpx.MsgBodyTooLarge)
		return Payload{}, false
	}
	if err != nil && !errors.Is(err, io.EOF) {
		h.log.Debug().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("decode payload failed")
		httpx.JSONFail(w, http.StatusBadRequest, NewInvalidBodyError(mode).Error())
		return Payload{}, false
	}
	return p, true
}
