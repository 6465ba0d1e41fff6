package handler

import (
	"errors"
	"net/http"
	"time"

	"portfolio-server/cache"
	"portfolio-server/config"
	"portfolio-server/metrics"
	"portfolio-server/model"
	"portfolio-server/playground"
	"portfolio-server/projects"
	"portfolio-server/store"
)

// Mailer relays contact submissions to the site owner. Satisfied by
// email.Service; handler tests substitute a fake.
type Mailer interface {
	SendContactMessage(submission model.ContactSubmission) error
	SendContactConfirmation(submission model.ContactSubmission) error
}

// Handler holds every dependency the HTTP layer needs. All fields are
// set once at startup and read-only afterwards.
type Handler struct {
	cfg        config.Config
	metrics    *metrics.Service
	projects   *projects.Repository
	playground *playground.Repository
	mailer     Mailer
	store      *store.SubmissionStore
	cache      *cache.Cache
	startedAt  time.Time
}

// New creates a Handler wired to the given services.
func New(cfg config.Config, svc *metrics.Service, prj *projects.Repository, pg *playground.Repository, mailer Mailer, st *store.SubmissionStore, c *cache.Cache) *Handler {
	return &Handler{
		cfg:        cfg,
		metrics:    svc,
		projects:   prj,
		playground: pg,
		mailer:     mailer,
		store:      st,
		cache:      c,
		startedAt:  time.Now(),
	}
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports service liveness and dependency status
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":        "ok",
		"uptimeSeconds": int(time.Since(h.startedAt).Seconds()),
		"redis":         "disabled",
	}

	if h.store.Enabled() {
		if err := h.store.Ping(r.Context()); err != nil {
			status["status"] = "degraded"
			status["redis"] = "unreachable"
		} else {
			status["redis"] = "ok"
		}
	}

	SendJSONSuccess(w, http.StatusOK, status)
}

// CacheMetrics godoc
// @Summary Cache metrics
// @Description Returns hit/miss counters for the in-memory payload cache
// @Tags system
// @Produce json
// @Success 200 {object} cache.MetricsSnapshot
// @Router /api/cache/metrics [get]
func (h *Handler) CacheMetrics(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		SendJSONError(w, http.StatusServiceUnavailable, errors.New("cache disabled"), "The payload cache is not enabled")
		return
	}
	SendJSONSuccess(w, http.StatusOK, h.cache.GetMetricsSnapshot())
}
