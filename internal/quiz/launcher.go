package quiz

import (
	"context"
	"errors"

	"github.com/med-learn/medlearn-quiz/internal/catalog"
	"github.com/med-learn/medlearn-quiz/internal/notify"
	"github.com/med-learn/medlearn-quiz/internal/viewer"
)

var ErrNoSeries = errors.New("no series available for this course")

// Launcher is the thin shell around a playing session: it picks a series,
// feeds its question lists into a Player, routes the completion callback into
// the progress store and drives the model-viewer side channel. It holds no
// quiz logic of its own.
type Launcher struct {
	series   *SeriesStore
	progress *ProgressStore
	view     viewer.Viewer
	sink     notify.Sink

	courseID string
	current  string
	loaded   []Series
	player   *Player

	playerOpts []PlayerOption
}

func NewLauncher(series *SeriesStore, progress *ProgressStore, view viewer.Viewer, sink notify.Sink, playerOpts ...PlayerOption) *Launcher {
	if view == nil {
		view = viewer.Noop{}
	}
	if sink == nil {
		sink = notify.Discard{}
	}
	return &Launcher{
		series:     series,
		progress:   progress,
		view:       view,
		sink:       sink,
		playerOpts: playerOpts,
	}
}

// Open loads the course's series, selects seriesID (or the first series when
// empty), starts a player for it and opens the course's 3D model if it has
// one. Completion is routed into the progress store.
func (l *Launcher) Open(ctx context.Context, courseID, seriesID string) (*Player, error) {
	l.Close()

	loaded := l.series.Load(ctx, courseID)
	if len(loaded) == 0 {
		return nil, ErrNoSeries
	}
	sel := loaded[0]
	if seriesID != "" {
		found := false
		for _, s := range loaded {
			if s.ID == seriesID {
				sel, found = s, true
				break
			}
		}
		if !found {
			return nil, ErrSeriesNotFound
		}
	}

	l.courseID = courseID
	l.current = sel.ID
	l.loaded = loaded

	opts := append([]PlayerOption{WithCompletion(func(score, total int) {
		l.progress.SaveProgress(context.Background(), courseID, sel.ID, NewProgress(score, total))
		l.sink.Success("quiz completed")
	})}, l.playerOpts...)

	l.player = NewPlayer(sel.ImageQuestions, sel.TextQuestions, opts...)
	l.player.Start()

	if c, ok := catalog.Get(courseID); ok && c.ModelID != "" {
		l.view.Open(c.ModelID, viewer.PartToggles{})
	}
	return l.player, nil
}

// OnSeriesChange swaps the running player to another series of the already
// opened course.
func (l *Launcher) OnSeriesChange(ctx context.Context, seriesID string) (*Player, error) {
	if l.courseID == "" {
		return nil, ErrSeriesNotFound
	}
	return l.Open(ctx, l.courseID, seriesID)
}

// LastProgress returns the stored record for the open series, if any.
func (l *Launcher) LastProgress(ctx context.Context) (Progress, bool) {
	if l.courseID == "" || l.current == "" {
		return Progress{}, false
	}
	return l.progress.GetProgress(ctx, l.courseID, l.current)
}

// CurrentSeries returns the series the open player was built from.
func (l *Launcher) CurrentSeries() (Series, bool) {
	for _, s := range l.loaded {
		if s.ID == l.current {
			return s, true
		}
	}
	return Series{}, false
}

// Close tears down the player (cancelling its timers) and closes the viewer.
func (l *Launcher) Close() {
	if l.player != nil {
		l.player.Close()
		l.player = nil
	}
	l.view.Close()
	l.courseID = ""
	l.current = ""
	l.loaded = nil
}
