package handlers

import (
	"encoding/json"
	"net/http"

	"sendaboop-backend/internal/models"
	"sendaboop-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// DogHandler handles dog catalog requests
type DogHandler struct {
	dogService *services.DogService
}

// NewDogHandler creates a new dog handler
func NewDogHandler(dogService *services.DogService) *DogHandler {
	return &DogHandler{
		dogService: dogService,
	}
}

// GetDogs handles GET /api/dogs
func (h *DogHandler) GetDogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dogs, err := h.dogService.ListDogs(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list dogs")
		respondError(w, "Failed to load dogs", http.StatusInternalServerError)
		return
	}

	response := map[string][]models.Dog{
		"dogs": dogs,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
