package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/lexicheck/symspell/internal/symspell"
)

// Handler exposes the corrector over HTTP. DB access in the original
// handlers is replaced here by a *symspell.Corrector reference: the API
// surface is lookup/correct/stats, not record CRUD.
type Handler struct {
	Corrector *symspell.Corrector
}

type suggestionResponse struct {
	Term     string `json:"term"`
	Distance int    `json:"distance"`
	Count    uint64 `json:"count"`
}

type lookupResponse struct {
	Input       string                `json:"input"`
	Verbosity   string                `json:"verbosity"`
	Suggestions []suggestionResponse `json:"suggestions"`
}

// Lookup handles GET /api/lookup?term=...&verbosity=top|closest|all&maxEditDistance=2
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	if term == "" {
		http.Error(w, "missing term parameter", http.StatusBadRequest)
		return
	}

	verbosity, err := symspell.ParseVerbosity(r.URL.Query().Get("verbosity"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	maxEditDistance := h.Corrector.MaxDictionaryEditDistance()
	if raw := r.URL.Query().Get("maxEditDistance"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid maxEditDistance", http.StatusBadRequest)
			return
		}
		maxEditDistance = parsed
	}

	suggestions, err := h.Corrector.Lookup(term, verbosity, maxEditDistance)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := lookupResponse{Input: term, Verbosity: verbosity.String()}
	resp.Suggestions = make([]suggestionResponse, len(suggestions))
	for i, s := range suggestions {
		resp.Suggestions[i] = suggestionResponse{Term: s.Term, Distance: s.Distance, Count: s.Count}
	}

	writeJSON(w, http.StatusOK, resp)
}

type correctResponse struct {
	Input    string  `json:"input"`
	Text     string  `json:"text"`
	Distance int     `json:"distance"`
	Score    float64 `json:"score"`
}

// Correct handles POST /api/correct with a JSON body {"sentence": "..."}.
func (h *Handler) Correct(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Sentence        string `json:"sentence"`
		MaxEditDistance int    `json:"maxEditDistance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if body.Sentence == "" {
		http.Error(w, "missing sentence", http.StatusBadRequest)
		return
	}

	maxEditDistance := body.MaxEditDistance
	if maxEditDistance == 0 {
		maxEditDistance = h.Corrector.MaxDictionaryEditDistance()
	}

	result, err := h.Corrector.LookupCompound(body.Sentence, maxEditDistance, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, correctResponse{
		Input:    body.Sentence,
		Text:     result.Text,
		Distance: result.Distance,
		Score:    result.Score,
	})
}

// Stats handles GET /api/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Corrector.Stats())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
