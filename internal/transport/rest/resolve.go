package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wikisynset/internal/domain"
)

// resolverService defines the minimal interface needed by ResolveHandler.
type resolverService interface {
	Resolve(ctx context.Context, term string) (string, error)
}

// synsetReader looks up synset details for response enrichment.
type synsetReader interface {
	SynsetByName(name string) (*domain.Synset, error)
}

// ResolveHandler serves term resolution REST endpoints.
type ResolveHandler struct {
	svc     resolverService
	synsets synsetReader
	log     *slog.Logger
}

// NewResolveHandler creates a ResolveHandler.
func NewResolveHandler(svc resolverService, synsets synsetReader, logger *slog.Logger) *ResolveHandler {
	return &ResolveHandler{svc: svc, synsets: synsets, log: logger.With("handler", "resolve")}
}

type resolveResponse struct {
	Term   string   `json:"term"`
	Synset string   `json:"synset"`
	Words  []string `json:"words,omitempty"`
	Gloss  string   `json:"gloss,omitempty"`
}

// Resolve handles GET /v1/resolve?term=<term>.
func (h *ResolveHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")

	name, err := h.svc.Resolve(r.Context(), term)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := resolveResponse{Term: term, Synset: name}
	if syn, err := h.synsets.SynsetByName(name); err == nil {
		resp.Words = syn.Words
		resp.Gloss = syn.Gloss
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ResolveHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoMatch):
		writeError(w, http.StatusNotFound, "no matching synset")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
