package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	qrcode "github.com/skip2/go-qrcode"

	"portfolio-server/projects"
)

// ListProjects godoc
// @Summary List portfolio projects
// @Description Returns the project catalog, optionally filtered by category or featured flag
// @Tags projects
// @Produce json
// @Param category query string false "Category filter"
// @Param featured query bool false "Only featured projects"
// @Success 200 {array} model.Project
// @Router /api/projects [get]
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	featured, _ := strconv.ParseBool(r.URL.Query().Get("featured"))

	SendJSONSuccess(w, http.StatusOK, h.projects.List(category, featured))
}

// GetProject godoc
// @Summary Get a single project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} model.Project
// @Failure 404 {object} ErrorResponse
// @Router /api/projects/{id} [get]
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	project, err := h.projects.Get(id)
	if err != nil {
		SendJSONError(w, http.StatusNotFound, err, "No project with that ID exists")
		return
	}

	SendJSONSuccess(w, http.StatusOK, project)
}

// RelatedProjects godoc
// @Summary Related projects
// @Description Ranks the remaining catalog by category match and shared technologies
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Param limit query int false "Maximum results" default(6)
// @Success 200 {array} model.Project
// @Failure 404 {object} ErrorResponse
// @Router /api/projects/{id}/related [get]
func (h *Handler) RelatedProjects(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	limit := projects.DefaultRelatedLimit
	if h.cfg.Features.RelatedProjectLimit > 0 {
		limit = h.cfg.Features.RelatedProjectLimit
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	related, err := h.projects.Related(id, limit)
	if err != nil {
		SendJSONError(w, http.StatusNotFound, err, "No project with that ID exists")
		return
	}

	SendJSONSuccess(w, http.StatusOK, related)
}

// ProjectQR godoc
// @Summary Project QR code
// @Description Renders a QR code pointing at the project's live URL, falling back to its repository
// @Tags projects
// @Produce png
// @Param id path string true "Project ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /api/projects/{id}/qr [get]
func (h *Handler) ProjectQR(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	project, err := h.projects.Get(id)
	if err != nil {
		SendJSONError(w, http.StatusNotFound, err, "No project with that ID exists")
		return
	}

	target := project.LiveURL
	if target == "" {
		target = project.GithubURL
	}
	if target == "" {
		SendJSONError(w, http.StatusNotFound, errors.New("project has no public URL"), "This project has neither a live URL nor a repository URL")
		return
	}

	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		log.Error().Err(err).Str("project_id", id).Msg("Failed to generate QR code")
		SendJSONError(w, http.StatusInternalServerError, errors.New("failed to generate QR code"), "")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		log.Error().Err(err).Msg("Failed to write QR code response")
	}
}
