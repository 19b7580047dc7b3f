package http

import (
	"encoding/json"
	"errors"
	"io"

	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/med-learn/medlearn-quiz/internal/kv"
	"github.com/med-learn/medlearn-quiz/internal/notify"
	"github.com/med-learn/medlearn-quiz/internal/quiz"
)

// Draft slots are scratch storage for open authoring forms: written through
// on every field change, cleared only on submit or explicit reset. They are
// not authoritative series data, so the handlers pass the payload through
// opaquely (it just has to be JSON).

func GetDraftHandler(store *quiz.SeriesStore, drafts kv.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		ed, kind, err := draftEditor(r, store, drafts)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		raw, ok := ed.LoadDraft(r.Context(), kind)
		if !ok {
			writeError(w, nethttp.StatusNotFound, errors.New("no draft"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(raw))
	}
}

func PutDraftHandler(store *quiz.SeriesStore, drafts kv.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		ed, kind, err := draftEditor(r, store, drafts)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil || !json.Valid(body) {
			writeError(w, nethttp.StatusBadRequest, errors.New("bad json"))
			return
		}
		if err := ed.SaveDraft(r.Context(), kind, string(body)); err != nil {
			writeError(w, nethttp.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(nethttp.StatusNoContent)
	}
}

func DeleteDraftHandler(store *quiz.SeriesStore, drafts kv.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		ed, kind, err := draftEditor(r, store, drafts)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		ed.ClearDraft(r.Context(), kind)
		w.WriteHeader(nethttp.StatusNoContent)
	}
}

func draftEditor(r *nethttp.Request, store *quiz.SeriesStore, drafts kv.Store) (*quiz.Editor, quiz.QuestionKind, error) {
	courseID := chi.URLParam(r, "courseID")
	seriesID := chi.URLParam(r, "seriesID")
	kind := quiz.QuestionKind(chi.URLParam(r, "kind"))
	if kind != quiz.KindImage && kind != quiz.KindText {
		return nil, "", errBadKind
	}
	ed := quiz.NewEditor(courseID, store.Load(r.Context(), courseID), drafts, notify.Discard{})
	if err := ed.SelectSeries(seriesID); err != nil {
		return nil, "", err
	}
	return ed, kind, nil
}
