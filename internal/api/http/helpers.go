package http

import (
	"encoding/json"
	"errors"

	nethttp "net/http"

	"github.com/med-learn/medlearn-quiz/internal/quiz"
)

func writeJSON(w nethttp.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w nethttp.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

var errBadKind = errors.New("unknown question kind")

// statusFor maps editor/store errors onto HTTP codes: validation and guard
// violations are the client's to fix, everything else is a server fault.
func statusFor(err error) int {
	switch {
	case errors.Is(err, quiz.ErrSeriesNotFound), errors.Is(err, quiz.ErrBadIndex):
		return nethttp.StatusNotFound
	case errors.Is(err, quiz.ErrLastSeries):
		return nethttp.StatusConflict
	case errors.Is(err, errBadKind),
		errors.Is(err, quiz.ErrBlankSeriesName),
		errors.Is(err, quiz.ErrBlankQuestion),
		errors.Is(err, quiz.ErrOptionCount),
		errors.Is(err, quiz.ErrMissingImage),
		errors.Is(err, quiz.ErrMissingText),
		errors.Is(err, quiz.ErrNoCorrectOption):
		return nethttp.StatusBadRequest
	default:
		return nethttp.StatusInternalServerError
	}
}
