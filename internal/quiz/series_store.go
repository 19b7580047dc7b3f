package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/med-learn/medlearn-quiz/internal/kv"
)

// SeriesStore owns the canonical persisted form of a course's series list.
// Editor and player hold working copies; everything flows back through Save.
type SeriesStore struct {
	store kv.Store
}

func NewSeriesStore(store kv.Store) *SeriesStore {
	return &SeriesStore{store: store}
}

// Load returns the persisted series list for a course. Any value that parses
// as a JSON array is authoritative, including an explicitly saved empty array.
// Absent or corrupt data falls back to the seeded defaults for known courses
// (empty for unknown ones); defaults are never written back, so a pristine
// course stays pristine until the user saves.
func (s *SeriesStore) Load(ctx context.Context, courseID string) []Series {
	raw, ok, err := s.store.Get(ctx, seriesKey(courseID))
	if err != nil {
		log.Printf("series load %s: %v", courseID, err)
		return s.defaults(courseID)
	}
	if !ok {
		return s.defaults(courseID)
	}
	var series []Series
	if err := json.Unmarshal([]byte(raw), &series); err != nil {
		log.Printf("series load %s: corrupt payload: %v", courseID, err)
		return s.defaults(courseID)
	}
	if series == nil {
		// JSON "null" parses without error but is not a saved array.
		return s.defaults(courseID)
	}
	return series
}

func (s *SeriesStore) defaults(courseID string) []Series {
	if def, ok := defaultSeriesFor(courseID); ok {
		return def
	}
	return []Series{}
}

// Save serializes and persists the full list, replacing any prior value.
// Failures are returned to the caller: the in-memory list stays authoritative
// for the session and the user is told persistence failed.
func (s *SeriesStore) Save(ctx context.Context, courseID string, series []Series) error {
	if series == nil {
		series = []Series{}
	}
	buf, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("marshal series for %s: %w", courseID, err)
	}
	if err := s.store.Put(ctx, seriesKey(courseID), string(buf)); err != nil {
		return fmt.Errorf("save series for %s: %w", courseID, err)
	}
	return nil
}

// CreateDefaultSeries returns the first existing series for the course if any
// are saved (never resets existing content), else the course's seeded default,
// else a fresh empty series with the "default" ID. The optional question lists
// only apply to the fresh-series case.
func (s *SeriesStore) CreateDefaultSeries(ctx context.Context, courseID string, imgs []ImageQuestion, texts []TextQuestion) Series {
	if existing := s.Load(ctx, courseID); len(existing) > 0 {
		return existing[0]
	}
	if def, ok := defaultSeriesFor(courseID); ok && len(def) > 0 {
		return def[0]
	}
	if imgs == nil {
		imgs = []ImageQuestion{}
	}
	if texts == nil {
		texts = []TextQuestion{}
	}
	return Series{
		ID:             DefaultSeriesID,
		Name:           "Quiz",
		CourseID:       courseID,
		ImageQuestions: imgs,
		TextQuestions:  texts,
	}
}
