package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"sendaboop-backend/internal/models"
	"sendaboop-backend/internal/services"
	"sendaboop-backend/internal/token"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// BoopHandler handles the two-phase boop endpoints
type BoopHandler struct {
	boopService *services.BoopService
}

// NewBoopHandler creates a new boop handler
func NewBoopHandler(boopService *services.BoopService) *BoopHandler {
	return &BoopHandler{
		boopService: boopService,
	}
}

// SendBoop handles POST /api/send-boop
func (h *BoopHandler) SendBoop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SendBoopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.boopService.RequestSend(ctx, req); err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			respondError(w, vErr.Message, http.StatusBadRequest)
			return
		}

		var dErr *services.DeliveryError
		if errors.As(err, &dErr) {
			log.Error().Err(err).Str("dog_id", req.Dog.ID).Msg("Failed to send verification email")
			respondError(w, "Failed to send verification email", http.StatusInternalServerError)
			return
		}

		log.Error().Err(err).Msg("Failed to request boop")
		respondError(w, "Failed to send boop. Please try again.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.SendBoopResponse{
		Success:             true,
		PendingVerification: true,
		Message:             "Verification email sent! Check your inbox.",
	})
}

// VerifyBoop handles GET /api/verify-boop/{token}
func (h *BoopHandler) VerifyBoop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tokenString := chi.URLParam(r, "token")
	if tokenString == "" {
		respondVerifyError(w, "No token provided", http.StatusBadRequest)
		return
	}

	result, err := h.boopService.ConfirmSend(ctx, tokenString)
	if err != nil {
		switch {
		case errors.Is(err, token.ErrExpired):
			respondVerifyError(w, "Token expired", http.StatusBadRequest)
		case errors.Is(err, services.ErrTokenAlreadyUsed):
			respondVerifyError(w, "Token already used", http.StatusBadRequest)
		case errors.Is(err, token.ErrInvalid):
			respondVerifyError(w, "Invalid token", http.StatusBadRequest)
		default:
			var dErr *services.DeliveryError
			if errors.As(err, &dErr) {
				log.Error().Err(err).Msg("Failed to deliver boop")
				respondVerifyError(w, "Failed to send boop", http.StatusInternalServerError)
				return
			}
			log.Error().Err(err).Msg("Failed to verify boop")
			respondVerifyError(w, "Verification failed", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.VerifyBoopResponse{
		Success:       true,
		RecipientName: result.RecipientName,
		DogID:         result.DogID,
	})
}
