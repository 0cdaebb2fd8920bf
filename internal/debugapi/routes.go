// Package debugapi serves a small diagnostics endpoint next to the terminal
// UI: liveness plus the current derived view as JSON. It carries no game
// semantics and mutates nothing.
package debugapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/torafjell/holdem-client/internal/client"
)

// Querier is the read-only window into the dispatch loop.
type Querier interface {
	Snapshot(ctx context.Context) (client.Snapshot, error)
}

func Routes(q Querier) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", Healthz)
	r.Get("/state", State(q))
	return r
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func State(q Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		snap, err := q.Snapshot(ctx)
		if err != nil {
			http.Error(w, "state unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(snap)
	}
}
