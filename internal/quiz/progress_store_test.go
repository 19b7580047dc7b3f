package quiz

import (
	"context"
	"testing"

	"github.com/med-learn/medlearn-quiz/internal/kv"
)

func TestProgressSaveThenGet(t *testing.T) {
	ctx := context.Background()
	store := NewProgressStore(kv.NewMemoryStore())

	in := Progress{Score: 7, Total: 10, Percentage: 70, CompletedAt: "2026-01-10T12:00:00Z"}
	store.SaveProgress(ctx, "neuroanatomy", "default", in)

	got, ok := store.GetProgress(ctx, "neuroanatomy", "default")
	if !ok {
		t.Fatal("no progress found after save")
	}
	if got != in {
		t.Fatalf("got %+v, want %+v", got, in)
	}
}

func TestProgressOverwriteKeepsOnlyLatest(t *testing.T) {
	ctx := context.Background()
	store := NewProgressStore(kv.NewMemoryStore())

	store.SaveProgress(ctx, "neuroanatomy", "default", Progress{Score: 7, Total: 10, Percentage: 70, CompletedAt: "2026-01-10T12:00:00Z"})
	latest := Progress{Score: 9, Total: 10, Percentage: 90, CompletedAt: "2026-01-11T08:30:00Z"}
	store.SaveProgress(ctx, "neuroanatomy", "default", latest)

	got, ok := store.GetProgress(ctx, "neuroanatomy", "default")
	if !ok || got != latest {
		t.Fatalf("got %+v, want the latest record %+v", got, latest)
	}
}

func TestProgressKeysAreScopedPerSeries(t *testing.T) {
	ctx := context.Background()
	store := NewProgressStore(kv.NewMemoryStore())

	store.SaveProgress(ctx, "neuroanatomy", "a", Progress{Score: 1, Total: 2, Percentage: 50, CompletedAt: "t"})
	if _, ok := store.GetProgress(ctx, "neuroanatomy", "b"); ok {
		t.Fatal("progress for series a leaked into series b")
	}
	if _, ok := store.GetProgress(ctx, "cardiovascular", "a"); ok {
		t.Fatal("progress leaked across courses")
	}
}

func TestProgressAbsentOrCorrupt(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	store := NewProgressStore(mem)

	if _, ok := store.GetProgress(ctx, "neuroanatomy", "default"); ok {
		t.Fatal("expected absence signal for unrecorded progress")
	}

	_ = mem.Put(ctx, "quizProgress::neuroanatomy::default", "][")
	if _, ok := store.GetProgress(ctx, "neuroanatomy", "default"); ok {
		t.Fatal("corrupt record should read as absent")
	}
}

func TestNewProgressPercentageRounding(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{7, 10, 70},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds half away from zero
		{0, 5, 0},
		{5, 5, 100},
	}
	for _, tt := range tests {
		got := NewProgress(tt.score, tt.total)
		if got.Percentage != tt.want {
			t.Errorf("NewProgress(%d,%d).Percentage = %d, want %d", tt.score, tt.total, got.Percentage, tt.want)
		}
		if got.Score != tt.score || got.Total != tt.total {
			t.Errorf("NewProgress(%d,%d) carried (%d,%d)", tt.score, tt.total, got.Score, got.Total)
		}
		if got.CompletedAt == "" {
			t.Error("CompletedAt not stamped")
		}
	}
}
