package quiz

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/mathquest/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(mux.Vars(r)["player"])
	if name == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Player name is required"})
		return
	}

	resp, err := h.service.Register(name)
	if err != nil {
		log.Printf("[handler] Register error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to register player"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["player"]

	resp, err := h.service.NextQuestion(name)
	if errors.Is(err, ErrPlayerNotFound) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Player not found"})
		return
	}
	if err != nil {
		log.Printf("[handler] NextQuestion error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get question"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Player == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "player is required"})
		return
	}

	resp, err := h.service.SubmitAnswer(req)
	if errors.Is(err, ErrPlayerNotFound) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Player not found"})
		return
	}
	if errors.Is(err, ErrNoPendingQuestion) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "No pending question — fetch a question first"})
		return
	}
	if err != nil {
		log.Printf("[handler] SubmitAnswer error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to grade answer"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Leaderboard()
	if err != nil {
		log.Printf("[handler] Leaderboard error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get leaderboard"})
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
