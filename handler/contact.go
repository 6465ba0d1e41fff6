package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"portfolio-server/model"
	"portfolio-server/utils"
)

// contactRequest wraps the submission the way the frontend sends it.
type contactRequest struct {
	Submission model.ContactSubmission `json:"submission"`
}

// SubmitContact godoc
// @Summary Submit a contact message
// @Description Validates the submission, relays it to the site owner by email and acknowledges the sender
// @Tags contact
// @Accept json
// @Produce json
// @Param request body contactRequest true "Contact submission"
// @Success 200 {object} SubmissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/contact [post]
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendJSONError(w, http.StatusBadRequest, errors.New("invalid request body"), "Request body must be valid JSON")
		return
	}

	sub := req.Submission
	if err := utils.ValidateSubmission(sub); err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Please fill in all required fields")
		return
	}

	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.ReceivedAt.IsZero() {
		sub.ReceivedAt = time.Now().UTC()
	}

	// Audit trail only; a failed write never blocks the submission.
	if err := h.store.LogSubmission(r.Context(), sub); err != nil {
		log.Warn().Err(err).Str("submission_id", sub.ID).Msg("Failed to log contact submission")
	}

	if err := h.mailer.SendContactMessage(sub); err != nil {
		log.Error().Err(err).Str("submission_id", sub.ID).Msg("Failed to relay contact message")
		SendJSONError(w, http.StatusInternalServerError, errors.New("failed to send message"), "Could not deliver your message, please try again later")
		return
	}

	if err := h.mailer.SendContactConfirmation(sub); err != nil {
		// Owner already has the message; confirmation is best effort.
		log.Warn().Err(err).Str("submission_id", sub.ID).Msg("Failed to send confirmation email")
	}

	log.Info().Str("submission_id", sub.ID).Str("subject", sub.Subject).Msg("Contact submission received")

	SendJSONSuccess(w, http.StatusOK, SubmissionResponse{
		Success:      true,
		Message:      "Message sent successfully",
		SubmissionID: sub.ID,
	})
}
