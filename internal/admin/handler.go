// Package admin exposes the operator surface: engine statistics and a
// training-data reset. All routes sit behind the auth middleware.
package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mathquest/backend/internal/engine"
	"github.com/mathquest/backend/internal/models"
	"github.com/mathquest/backend/internal/quiz"
)

type Handler struct {
	store  *quiz.Store
	engine *engine.Engine
}

func NewHandler(store *quiz.Store, eng *engine.Engine) *Handler {
	return &Handler{store: store, engine: eng}
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	players, err := h.store.CountPlayers()
	if err != nil {
		log.Printf("[admin] Stats error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get stats"})
		return
	}

	samples, trained := h.engine.Stats()
	writeJSON(w, http.StatusOK, models.AdminStats{
		Players:          players,
		TrainingSamples:  samples,
		PredictorTrained: trained,
	})
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.engine.Reset()
	log.Println("[admin] engine training data and streaks reset")
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
