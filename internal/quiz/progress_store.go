package quiz

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"time"

	"github.com/med-learn/medlearn-quiz/internal/kv"
)

// ProgressStore keeps the last completed attempt per (course, series) pair.
// Progress is best-effort: write failures are logged, never fatal.
type ProgressStore struct {
	store kv.Store
}

func NewProgressStore(store kv.Store) *ProgressStore {
	return &ProgressStore{store: store}
}

func (p *ProgressStore) SaveProgress(ctx context.Context, courseID, seriesID string, prog Progress) {
	buf, err := json.Marshal(prog)
	if err != nil {
		log.Printf("progress marshal %s/%s: %v", courseID, seriesID, err)
		return
	}
	if err := p.store.Put(ctx, progressKey(courseID, seriesID), string(buf)); err != nil {
		log.Printf("progress save %s/%s: %v", courseID, seriesID, err)
	}
}

func (p *ProgressStore) GetProgress(ctx context.Context, courseID, seriesID string) (Progress, bool) {
	raw, ok, err := p.store.Get(ctx, progressKey(courseID, seriesID))
	if err != nil || !ok {
		return Progress{}, false
	}
	var prog Progress
	if err := json.Unmarshal([]byte(raw), &prog); err != nil {
		return Progress{}, false
	}
	return prog, true
}

// NewProgress builds a record for a finished run, stamping the current time.
func NewProgress(score, total int) Progress {
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(score) / float64(total) * 100))
	}
	return Progress{
		Score:       score,
		Total:       total,
		Percentage:  pct,
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
