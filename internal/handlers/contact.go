package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"sendaboop-backend/internal/models"
	"sendaboop-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// ContactHandler handles contact form submissions
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// SendMessage handles POST /api/contact
func (h *ContactHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.contactService.Relay(ctx, req); err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			respondError(w, vErr.Message, http.StatusBadRequest)
			return
		}

		log.Error().Err(err).Msg("Failed to send contact email")
		respondError(w, "Failed to send message", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Message sent successfully!",
	})
}
