package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"portfolio-server/model"
	"portfolio-server/utils"
)

// SubmitFeedback godoc
// @Summary Submit anonymous feedback
// @Description Accepts a feedback report from any page; email is optional
// @Tags contact
// @Accept json
// @Produce json
// @Param request body model.Feedback true "Feedback report"
// @Success 200 {object} SubmissionResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/feedback [post]
func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var fb model.Feedback
	if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
		SendJSONError(w, http.StatusBadRequest, errors.New("invalid request body"), "Request body must be valid JSON")
		return
	}

	if err := utils.ValidateFeedback(fb); err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid feedback report")
		return
	}

	if fb.Timestamp.IsZero() {
		fb.Timestamp = time.Now().UTC()
	}
	if fb.UserAgent == "" {
		fb.UserAgent = r.UserAgent()
	}

	if err := h.store.LogFeedback(r.Context(), fb); err != nil {
		log.Warn().Err(err).Str("type", string(fb.Type)).Msg("Failed to log feedback")
	}

	// Small pause so rapid repeat submissions from the same client
	// arrive with distinct timestamps.
	if h.cfg.Features.FeedbackDelayMillis > 0 {
		time.Sleep(time.Duration(h.cfg.Features.FeedbackDelayMillis) * time.Millisecond)
	}

	log.Info().Str("type", string(fb.Type)).Str("page", fb.Page).Msg("Feedback received")

	SendJSONSuccess(w, http.StatusOK, SubmissionResponse{
		Success: true,
		Message: "Feedback received, thank you",
	})
}
