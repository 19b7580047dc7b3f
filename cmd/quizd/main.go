package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/med-learn/medlearn-quiz/internal/api/http"
	"github.com/med-learn/medlearn-quiz/internal/config"
	"github.com/med-learn/medlearn-quiz/internal/kv"
	"github.com/med-learn/medlearn-quiz/internal/notify"
	"github.com/med-learn/medlearn-quiz/internal/quiz"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := kv.Open(ctx, kv.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("kv open failed: %v", err)
	}
	defer store.Close()

	seriesStore := quiz.NewSeriesStore(store)
	progressStore := quiz.NewProgressStore(store)
	sink := notify.LogSink{}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	api.Mount(r, seriesStore, progressStore, store, sink)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
