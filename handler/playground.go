package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"portfolio-server/model"
	"portfolio-server/playground"
)

// ListExamples godoc
// @Summary List code examples
// @Description Returns the playground catalog filtered by category, difficulty, framework and free-text search
// @Tags playground
// @Produce json
// @Param category query string false "Category filter"
// @Param difficulty query string false "Difficulty filter" Enums(beginner, intermediate, advanced)
// @Param framework query string false "Framework filter"
// @Param search query string false "Free-text search over title, description and tags"
// @Success 200 {array} model.CodeExample
// @Router /api/playground/examples [get]
func (h *Handler) ListExamples(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := playground.Filter{
		Category:   q.Get("category"),
		Difficulty: model.Difficulty(q.Get("difficulty")),
		Framework:  model.Framework(q.Get("framework")),
		Search:     q.Get("search"),
	}

	SendJSONSuccess(w, http.StatusOK, h.playground.List(filter))
}

// GetExample godoc
// @Summary Get a code example
// @Description Returns a single example and counts the view
// @Tags playground
// @Produce json
// @Param id path string true "Example ID"
// @Success 200 {object} model.CodeExample
// @Failure 404 {object} ErrorResponse
// @Router /api/playground/examples/{id} [get]
func (h *Handler) GetExample(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	example, err := h.playground.View(id)
	if err != nil {
		SendJSONError(w, http.StatusNotFound, err, "No example with that ID exists")
		return
	}

	SendJSONSuccess(w, http.StatusOK, example)
}

// LikeExample godoc
// @Summary Like a code example
// @Tags playground
// @Produce json
// @Param id path string true "Example ID"
// @Success 200 {object} map[string]int64
// @Failure 404 {object} ErrorResponse
// @Router /api/playground/examples/{id}/like [post]
func (h *Handler) LikeExample(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	likes, err := h.playground.Like(id)
	if err != nil {
		SendJSONError(w, http.StatusNotFound, err, "No example with that ID exists")
		return
	}

	SendJSONSuccess(w, http.StatusOK, map[string]int64{"likes": likes})
}

// ForkExample godoc
// @Summary Fork a code example
// @Description Creates an editable copy with fresh stats; the original's fork count goes up
// @Tags playground
// @Produce json
// @Param id path string true "Example ID"
// @Success 201 {object} model.CodeExample
// @Failure 404 {object} ErrorResponse
// @Router /api/playground/examples/{id}/fork [post]
func (h *Handler) ForkExample(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	fork, err := h.playground.Fork(id)
	if err != nil {
		SendJSONError(w, http.StatusNotFound, err, "No example with that ID exists")
		return
	}

	log.Info().Str("parent_id", id).Str("fork_id", fork.ID).Msg("Example forked")
	SendJSONSuccess(w, http.StatusCreated, fork)
}

// AddExampleFile godoc
// @Summary Add a file to an example
// @Tags playground
// @Accept json
// @Produce json
// @Param id path string true "Example ID"
// @Param file body model.CodeFile true "File to add"
// @Success 201 {object} model.CodeExample
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/playground/examples/{id}/files [post]
func (h *Handler) AddExampleFile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var file model.CodeFile
	if err := json.NewDecoder(r.Body).Decode(&file); err != nil {
		SendJSONError(w, http.StatusBadRequest, errors.New("invalid request body"), "Request body must be valid JSON")
		return
	}
	if file.ID == "" || file.Name == "" {
		SendJSONError(w, http.StatusBadRequest, errors.New("file id and name are required"), "")
		return
	}

	example, err := h.playground.AddFile(id, file)
	if err != nil {
		switch {
		case errors.Is(err, playground.ErrExampleNotFound):
			SendJSONError(w, http.StatusNotFound, err, "No example with that ID exists")
		case errors.Is(err, playground.ErrFileExists):
			SendJSONError(w, http.StatusConflict, err, "A file with that ID already exists")
		default:
			SendJSONError(w, http.StatusInternalServerError, err, "")
		}
		return
	}

	SendJSONSuccess(w, http.StatusCreated, example)
}

// RemoveExampleFile godoc
// @Summary Remove a file from an example
// @Description Read-only files and the last remaining file cannot be removed
// @Tags playground
// @Produce json
// @Param id path string true "Example ID"
// @Param fileID path string true "File ID"
// @Success 200 {object} model.CodeExample
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/playground/examples/{id}/files/{fileID} [delete]
func (h *Handler) RemoveExampleFile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	example, err := h.playground.RemoveFile(vars["id"], vars["fileID"])
	if err != nil {
		switch {
		case errors.Is(err, playground.ErrExampleNotFound), errors.Is(err, playground.ErrFileNotFound):
			SendJSONError(w, http.StatusNotFound, err, "")
		case errors.Is(err, playground.ErrLastFile):
			SendJSONError(w, http.StatusBadRequest, err, "An example must keep at least one file")
		case errors.Is(err, playground.ErrFileReadOnly):
			SendJSONError(w, http.StatusForbidden, err, "This file is read-only")
		default:
			SendJSONError(w, http.StatusInternalServerError, err, "")
		}
		return
	}

	SendJSONSuccess(w, http.StatusOK, example)
}
