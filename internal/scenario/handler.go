package scenario

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"BM11/internal/calc/tetra"
	"BM11/internal/repo"
)

type Handler struct {
	Repo repo.Repository
}

type SaveRequest struct {
	Name  string                `json:"name"`
	Input tetra.InputParameters `json:"input"`
}

type SaveResponse struct {
	ID int `json:"id"`
}

type GetResponse struct {
	Scenario repo.Scenario          `json:"scenario"`
	Input    tetra.InputParameters  `json:"input"`
	Output   tetra.OutputParameters `json:"output"`
}

// Save stores a named input record for the current user. The input is
// evaluated first so only consistent structures get saved.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int)
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "Scenario name required", http.StatusBadRequest)
		return
	}
	if _, err := tetra.Evaluate(req.Input); err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	raw, err := json.Marshal(req.Input)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	id, err := h.Repo.CreateScenario(r.Context(), userID, req.Name, raw)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SaveResponse{ID: id})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int)
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	scenarios, err := h.Repo.ListScenarios(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scenarios)
}

// Get loads a saved scenario and re-evaluates it, so the caller always
// sees outputs produced by the current model.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int)
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid scenario id", http.StatusBadRequest)
		return
	}

	s, err := h.Repo.GetScenario(r.Context(), id)
	if err != nil || s.UserID != userID {
		http.Error(w, "Scenario not found", http.StatusNotFound)
		return
	}

	var input tetra.InputParameters
	if err := json.Unmarshal(s.Input, &input); err != nil {
		http.Error(w, "Corrupt scenario", http.StatusInternalServerError)
		return
	}
	out, err := tetra.Evaluate(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GetResponse{Scenario: s, Input: input, Output: out})
}
