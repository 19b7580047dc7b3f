package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/med-learn/medlearn-quiz/internal/kv"
	"github.com/med-learn/medlearn-quiz/internal/notify"
	"github.com/med-learn/medlearn-quiz/internal/quiz"
)

// Mount wires the quiz routes onto a chi router. Middleware and CORS stay in
// main, same split as the routes/handlers layering elsewhere.
func Mount(r chi.Router, series *quiz.SeriesStore, progress *quiz.ProgressStore, drafts kv.Store, sink notify.Sink) {
	r.Get("/courses", ListCoursesHandler())
	r.Get("/courses/{courseID}", GetCourseHandler())

	r.Route("/courses/{courseID}/series", func(sr chi.Router) {
		sr.Get("/", ListSeriesHandler(series))
		sr.Put("/", ReplaceSeriesHandler(series))
		sr.Post("/", CreateSeriesHandler(series, drafts, sink))
		sr.Delete("/{seriesID}", DeleteSeriesHandler(series, drafts, sink))

		sr.Post("/{seriesID}/questions/{kind}", SubmitQuestionHandler(series, drafts, sink))
		sr.Delete("/{seriesID}/questions/{kind}/{index}", DeleteQuestionHandler(series, drafts, sink))

		sr.Get("/{seriesID}/drafts/{kind}", GetDraftHandler(series, drafts))
		sr.Put("/{seriesID}/drafts/{kind}", PutDraftHandler(series, drafts))
		sr.Delete("/{seriesID}/drafts/{kind}", DeleteDraftHandler(series, drafts))

		sr.Get("/{seriesID}/progress", GetProgressHandler(progress))
		sr.Put("/{seriesID}/progress", SaveProgressHandler(progress))
	})
}
