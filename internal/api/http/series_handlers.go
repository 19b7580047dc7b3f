package http

import (
	"encoding/json"
	"errors"
	"strconv"

	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/med-learn/medlearn-quiz/internal/kv"
	"github.com/med-learn/medlearn-quiz/internal/notify"
	"github.com/med-learn/medlearn-quiz/internal/quiz"
)

// Handlers only; routes live in router.go.

func ListSeriesHandler(store *quiz.SeriesStore) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		courseID := chi.URLParam(r, "courseID")
		writeJSON(w, nethttp.StatusOK, store.Load(r.Context(), courseID))
	}
}

// ReplaceSeriesHandler persists a full series list for a course. This is the
// editor session's save path; a storage failure must reach the user, so it
// maps to 500 with the error in the body.
func ReplaceSeriesHandler(store *quiz.SeriesStore) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		courseID := chi.URLParam(r, "courseID")
		var series []quiz.Series
		if err := json.NewDecoder(r.Body).Decode(&series); err != nil {
			writeError(w, nethttp.StatusBadRequest, errors.New("bad json"))
			return
		}
		for i := range series {
			series[i].CourseID = courseID
		}
		if err := store.Save(r.Context(), courseID, series); err != nil {
			writeError(w, nethttp.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(nethttp.StatusNoContent)
	}
}

func CreateSeriesHandler(store *quiz.SeriesStore, drafts kv.Store, sink notify.Sink) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		courseID := chi.URLParam(r, "courseID")
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, nethttp.StatusBadRequest, errors.New("bad json"))
			return
		}
		ed := quiz.NewEditor(courseID, store.Load(r.Context(), courseID), drafts, sink)
		s, err := ed.AddSeries(req.Name)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		if err := store.Save(r.Context(), courseID, ed.Series()); err != nil {
			writeError(w, nethttp.StatusInternalServerError, err)
			return
		}
		writeJSON(w, nethttp.StatusCreated, s)
	}
}

func DeleteSeriesHandler(store *quiz.SeriesStore, drafts kv.Store, sink notify.Sink) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		courseID := chi.URLParam(r, "courseID")
		seriesID := chi.URLParam(r, "seriesID")
		ed := quiz.NewEditor(courseID, store.Load(r.Context(), courseID), drafts, sink)
		if err := ed.DeleteSeries(seriesID); err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		if err := store.Save(r.Context(), courseID, ed.Series()); err != nil {
			writeError(w, nethttp.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(nethttp.StatusNoContent)
	}
}

// SubmitQuestionHandler appends or replaces one question of a series. The
// kind URL param selects the image or text list; edit_index in the body
// selects replace (absent means append).
func SubmitQuestionHandler(store *quiz.SeriesStore, drafts kv.Store, sink notify.Sink) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		courseID := chi.URLParam(r, "courseID")
		seriesID := chi.URLParam(r, "seriesID")
		kind := quiz.QuestionKind(chi.URLParam(r, "kind"))

		var req struct {
			Question  string             `json:"question"`
			Images    []quiz.ImageOption `json:"image_options,omitempty"`
			Texts     []quiz.TextOption  `json:"text_options,omitempty"`
			EditIndex *int               `json:"edit_index,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, nethttp.StatusBadRequest, errors.New("bad json"))
			return
		}
		editIndex := -1
		if req.EditIndex != nil {
			editIndex = *req.EditIndex
		}

		ed := quiz.NewEditor(courseID, store.Load(r.Context(), courseID), drafts, sink)
		if err := ed.SelectSeries(seriesID); err != nil {
			writeError(w, statusFor(err), err)
			return
		}

		var err error
		switch kind {
		case quiz.KindImage:
			err = ed.SubmitImageQuestion(r.Context(), quiz.ImageQuestionForm{Question: req.Question, Options: req.Images}, editIndex)
		case quiz.KindText:
			err = ed.SubmitTextQuestion(r.Context(), quiz.TextQuestionForm{Question: req.Question, Options: req.Texts}, editIndex)
		default:
			writeError(w, nethttp.StatusBadRequest, errBadKind)
			return
		}
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		if err := store.Save(r.Context(), courseID, ed.Series()); err != nil {
			writeError(w, nethttp.StatusInternalServerError, err)
			return
		}
		sel, _ := ed.Selected()
		writeJSON(w, nethttp.StatusOK, sel)
	}
}

func DeleteQuestionHandler(store *quiz.SeriesStore, drafts kv.Store, sink notify.Sink) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		courseID := chi.URLParam(r, "courseID")
		seriesID := chi.URLParam(r, "seriesID")
		kind := quiz.QuestionKind(chi.URLParam(r, "kind"))
		idx, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			writeError(w, nethttp.StatusBadRequest, errors.New("bad index"))
			return
		}

		ed := quiz.NewEditor(courseID, store.Load(r.Context(), courseID), drafts, sink)
		if err := ed.SelectSeries(seriesID); err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		switch kind {
		case quiz.KindImage:
			err = ed.DeleteImageQuestion(idx)
		case quiz.KindText:
			err = ed.DeleteTextQuestion(idx)
		default:
			writeError(w, nethttp.StatusBadRequest, errBadKind)
			return
		}
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		if err := store.Save(r.Context(), courseID, ed.Series()); err != nil {
			writeError(w, nethttp.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(nethttp.StatusNoContent)
	}
}
