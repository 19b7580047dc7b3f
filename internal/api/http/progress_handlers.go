package http

import (
	"encoding/json"
	"errors"

	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/med-learn/medlearn-quiz/internal/quiz"
)

func GetProgressHandler(store *quiz.ProgressStore) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		courseID := chi.URLParam(r, "courseID")
		seriesID := chi.URLParam(r, "seriesID")
		prog, ok := store.GetProgress(r.Context(), courseID, seriesID)
		if !ok {
			writeError(w, nethttp.StatusNotFound, errors.New("no progress recorded"))
			return
		}
		writeJSON(w, nethttp.StatusOK, prog)
	}
}

// SaveProgressHandler records a finished run. The percentage and timestamp
// are computed server-side from (score, total); progress is best-effort, so
// this always answers 204 once the payload parses.
func SaveProgressHandler(store *quiz.ProgressStore) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		courseID := chi.URLParam(r, "courseID")
		seriesID := chi.URLParam(r, "seriesID")
		var req struct {
			Score int `json:"score"`
			Total int `json:"total"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, nethttp.StatusBadRequest, errors.New("bad json"))
			return
		}
		if req.Total <= 0 || req.Score < 0 || req.Score > req.Total {
			writeError(w, nethttp.StatusBadRequest, errors.New("score out of range"))
			return
		}
		store.SaveProgress(r.Context(), courseID, seriesID, quiz.NewProgress(req.Score, req.Total))
		w.WriteHeader(nethttp.StatusNoContent)
	}
}
