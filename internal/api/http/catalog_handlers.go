package http

import (
	"errors"

	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/med-learn/medlearn-quiz/internal/catalog"
)

func ListCoursesHandler() nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		writeJSON(w, nethttp.StatusOK, catalog.List())
	}
}

func GetCourseHandler() nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		c, ok := catalog.Get(chi.URLParam(r, "courseID"))
		if !ok {
			writeError(w, nethttp.StatusNotFound, errors.New("course not found"))
			return
		}
		writeJSON(w, nethttp.StatusOK, c)
	}
}
