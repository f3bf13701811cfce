package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/cbodonnell/spinwheel/pkg/feed"
	"github.com/cbodonnell/spinwheel/pkg/log"
	"github.com/cbodonnell/spinwheel/pkg/messages"
	"github.com/cbodonnell/spinwheel/pkg/random"
	"github.com/cbodonnell/spinwheel/pkg/repositories"
	"github.com/cbodonnell/spinwheel/pkg/repositories/models"
	"github.com/cbodonnell/spinwheel/pkg/spin"
	"github.com/cbodonnell/spinwheel/pkg/wheel"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	DefaultSpinDurationMs = 4000
	MaxSpinDurationMs     = 60000
	DefaultListLimit      = 50
	MaxListLimit          = 500
)

type CreateSpinRequest struct {
	Labels     []string `json:"labels"`
	DurationMs int      `json:"duration_ms"`
}

// HandleCreateSpin runs a spin over the requested labels to completion
// with synthetic timestamps, persists the outcome, and broadcasts it to
// feed subscribers.
func HandleCreateSpin(repository repositories.Repository, spinFeed *feed.Feed, rand random.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &CreateSpinRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			http.Error(w, "Failed to decode request body", http.StatusBadRequest)
			return
		}

		durationMs := req.DurationMs
		if durationMs <= 0 {
			durationMs = DefaultSpinDurationMs
		}
		if durationMs > MaxSpinDurationMs {
			http.Error(w, "Duration too long", http.StatusBadRequest)
			return
		}
		duration := time.Duration(durationMs) * time.Millisecond

		start := time.Now()
		engine := spin.NewEngine()
		handle, err := engine.Start(start, req.Labels, duration, rand)
		if err != nil {
			if wheel.IsInvalidLabelCount(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("failed to start spin: %v", err)
			http.Error(w, "Failed to start spin", http.StatusInternalServerError)
			return
		}

		// The API has no animation to pace, so the timeline is collapsed
		// by polling directly at the spin's deadline.
		result := handle.Poll(start.Add(duration))

		record := &models.Spin{
			ID:          uuid.New().String(),
			Labels:      req.Labels,
			Winner:      result.Winner,
			WinnerIndex: wheel.ResolveIndex(result.Rotation, len(req.Labels)),
			Rotation:    result.Rotation,
			Timestamp:   start.UnixMilli(),
		}

		if err := repository.SaveSpin(r.Context(), record); err != nil {
			log.Error("failed to save spin: %v", err)
			http.Error(w, "Failed to save spin", http.StatusInternalServerError)
			return
		}

		spinFeed.Broadcast(r.Context(), &messages.SpinResult{
			ID:          record.ID,
			Labels:      record.Labels,
			Winner:      record.Winner,
			WinnerIndex: record.WinnerIndex,
			Rotation:    record.Rotation,
			Timestamp:   record.Timestamp,
		})

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(record); err != nil {
			log.Error("failed to encode spin: %v", err)
			http.Error(w, "Failed to encode spin", http.StatusInternalServerError)
			return
		}
	}
}

// HandleListSpins lists recent spins, newest first.
func HandleListSpins(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := DefaultListLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed < 1 || parsed > MaxListLimit {
				http.Error(w, "Invalid limit", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		spins, err := repository.ListSpins(r.Context(), limit)
		if err != nil {
			log.Error("failed to list spins: %v", err)
			http.Error(w, "Failed to list spins", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(spins); err != nil {
			log.Error("failed to encode spins: %v", err)
			http.Error(w, "Failed to encode spins", http.StatusInternalServerError)
			return
		}
	}
}

// HandleGetSpin fetches one spin by ID.
func HandleGetSpin(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["spinID"]
		if _, err := uuid.Parse(id); err != nil {
			http.Error(w, "Invalid spin ID", http.StatusBadRequest)
			return
		}

		record, err := repository.GetSpin(r.Context(), id)
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "Spin not found", http.StatusNotFound)
				return
			}
			log.Error("failed to get spin: %v", err)
			http.Error(w, "Failed to get spin", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(record); err != nil {
			log.Error("failed to encode spin: %v", err)
			http.Error(w, "Failed to encode spin", http.StatusInternalServerError)
			return
		}
	}
}
