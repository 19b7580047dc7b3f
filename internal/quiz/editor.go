package quiz

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/med-learn/medlearn-quiz/internal/kv"
	"github.com/med-learn/medlearn-quiz/internal/notify"
)

// Validation and guard errors. The messages are user-facing.
var (
	ErrBlankSeriesName = errors.New("series name is required")
	ErrLastSeries      = errors.New("cannot delete the last series of a course")
	ErrSeriesNotFound  = errors.New("series not found")
	ErrBlankQuestion   = errors.New("question text is required")
	ErrOptionCount     = errors.New("exactly four options are required")
	ErrMissingImage    = errors.New("every option needs an image")
	ErrMissingText     = errors.New("every option needs text")
	ErrNoCorrectOption = errors.New("select at least one correct option")
	ErrBadIndex        = errors.New("no question at that position")
)

// ImageQuestionForm is the authoring input for an image question. Option
// order is the authored order; the player shuffles its own copy.
type ImageQuestionForm struct {
	Question string        `json:"question"`
	Options  []ImageOption `json:"options"`
}

type TextQuestionForm struct {
	Question string       `json:"question"`
	Options  []TextOption `json:"options"`
}

const noEdit = -1

// Editor mutates one course's series list in memory. Every question mutation
// is written into the owning series immediately, so a surrounding session can
// persist the whole list through SeriesStore.Save at any point. Drafts of
// open forms are mirrored into scratch kv slots so navigation never loses
// in-progress input.
type Editor struct {
	courseID string
	drafts   kv.Store
	sink     notify.Sink

	series   []Series
	selected int

	editingImage int
	editingText  int
}

// NewEditor wraps an already loaded series list. The list is the working
// copy; callers keep a reference to it via Series().
func NewEditor(courseID string, series []Series, drafts kv.Store, sink notify.Sink) *Editor {
	if sink == nil {
		sink = notify.Discard{}
	}
	return &Editor{
		courseID:     courseID,
		drafts:       drafts,
		sink:         sink,
		series:       series,
		selected:     0,
		editingImage: noEdit,
		editingText:  noEdit,
	}
}

// Series returns the in-memory working list. Mutations made through the
// editor are already reflected here.
func (e *Editor) Series() []Series { return e.series }

// Selected returns the series currently being edited, or false when the
// course has none.
func (e *Editor) Selected() (Series, bool) {
	if e.selected < 0 || e.selected >= len(e.series) {
		return Series{}, false
	}
	return e.series[e.selected], true
}

// SelectSeries switches the editing target and drops any in-progress edit
// selection.
func (e *Editor) SelectSeries(seriesID string) error {
	for i := range e.series {
		if e.series[i].ID == seriesID {
			e.selected = i
			e.editingImage = noEdit
			e.editingText = noEdit
			return nil
		}
	}
	return ErrSeriesNotFound
}

// AddSeries creates a new empty series with the given name, appends it and
// selects it.
func (e *Editor) AddSeries(name string) (Series, error) {
	if strings.TrimSpace(name) == "" {
		e.sink.Error(ErrBlankSeriesName.Error())
		return Series{}, ErrBlankSeriesName
	}
	s := Series{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(name),
		CourseID:       e.courseID,
		ImageQuestions: []ImageQuestion{},
		TextQuestions:  []TextQuestion{},
	}
	e.series = append(e.series, s)
	e.selected = len(e.series) - 1
	e.editingImage = noEdit
	e.editingText = noEdit
	e.sink.Success("series added")
	return s, nil
}

// DeleteSeries removes a series. The last remaining series of a course can
// never be deleted; the course must always keep at least one.
func (e *Editor) DeleteSeries(seriesID string) error {
	if len(e.series) <= 1 {
		e.sink.Error(ErrLastSeries.Error())
		return ErrLastSeries
	}
	idx := -1
	for i := range e.series {
		if e.series[i].ID == seriesID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrSeriesNotFound
	}
	e.series = append(e.series[:idx], e.series[idx+1:]...)
	if idx == e.selected || e.selected >= len(e.series) {
		e.selected = 0
		e.editingImage = noEdit
		e.editingText = noEdit
	} else if idx < e.selected {
		e.selected--
	}
	e.sink.Success("series deleted")
	return nil
}

func validateImageForm(f ImageQuestionForm) error {
	if strings.TrimSpace(f.Question) == "" {
		return ErrBlankQuestion
	}
	if len(f.Options) != OptionsPerQuestion {
		return ErrOptionCount
	}
	correct := false
	for _, o := range f.Options {
		if strings.TrimSpace(o.Image) == "" {
			return ErrMissingImage
		}
		if o.IsCorrect {
			correct = true
		}
	}
	if !correct {
		return ErrNoCorrectOption
	}
	return nil
}

func validateTextForm(f TextQuestionForm) error {
	if strings.TrimSpace(f.Question) == "" {
		return ErrBlankQuestion
	}
	if len(f.Options) != OptionsPerQuestion {
		return ErrOptionCount
	}
	correct := false
	for _, o := range f.Options {
		if strings.TrimSpace(o.Text) == "" {
			return ErrMissingText
		}
		if o.IsCorrect {
			correct = true
		}
	}
	if !correct {
		return ErrNoCorrectOption
	}
	return nil
}

// SubmitImageQuestion validates the form and either replaces the question at
// editIndex (keeping its ID) or appends a new one with the next free ID. On
// success the image-form draft slot is cleared. Pass editIndex < 0 to append.
func (e *Editor) SubmitImageQuestion(ctx context.Context, f ImageQuestionForm, editIndex int) error {
	s, ok := e.Selected()
	if !ok {
		return ErrSeriesNotFound
	}
	if err := validateImageForm(f); err != nil {
		e.sink.Error(err.Error())
		return err
	}
	list := s.ImageQuestions
	if editIndex >= 0 {
		if editIndex >= len(list) {
			return ErrBadIndex
		}
		list[editIndex] = ImageQuestion{ID: list[editIndex].ID, Question: f.Question, Options: f.Options}
		e.sink.Success("question updated")
	} else {
		list = append(list, ImageQuestion{ID: nextImageID(list), Question: f.Question, Options: f.Options})
		e.sink.Success("question added")
	}
	e.series[e.selected].ImageQuestions = list
	e.editingImage = noEdit
	e.ClearDraft(ctx, KindImage)
	return nil
}

func (e *Editor) SubmitTextQuestion(ctx context.Context, f TextQuestionForm, editIndex int) error {
	s, ok := e.Selected()
	if !ok {
		return ErrSeriesNotFound
	}
	if err := validateTextForm(f); err != nil {
		e.sink.Error(err.Error())
		return err
	}
	list := s.TextQuestions
	if editIndex >= 0 {
		if editIndex >= len(list) {
			return ErrBadIndex
		}
		list[editIndex] = TextQuestion{ID: list[editIndex].ID, Question: f.Question, Options: f.Options}
		e.sink.Success("question updated")
	} else {
		list = append(list, TextQuestion{ID: nextTextID(list), Question: f.Question, Options: f.Options})
		e.sink.Success("question added")
	}
	e.series[e.selected].TextQuestions = list
	e.editingText = noEdit
	e.ClearDraft(ctx, KindText)
	return nil
}

// BeginEditImage marks question i as the one being edited and returns a form
// prefilled with its current content.
func (e *Editor) BeginEditImage(i int) (ImageQuestionForm, error) {
	s, ok := e.Selected()
	if !ok {
		return ImageQuestionForm{}, ErrSeriesNotFound
	}
	if i < 0 || i >= len(s.ImageQuestions) {
		return ImageQuestionForm{}, ErrBadIndex
	}
	e.editingImage = i
	q := s.ImageQuestions[i]
	return ImageQuestionForm{Question: q.Question, Options: append([]ImageOption(nil), q.Options...)}, nil
}

func (e *Editor) BeginEditText(i int) (TextQuestionForm, error) {
	s, ok := e.Selected()
	if !ok {
		return TextQuestionForm{}, ErrSeriesNotFound
	}
	if i < 0 || i >= len(s.TextQuestions) {
		return TextQuestionForm{}, ErrBadIndex
	}
	e.editingText = i
	q := s.TextQuestions[i]
	return TextQuestionForm{Question: q.Question, Options: append([]TextOption(nil), q.Options...)}, nil
}

// EditingImage reports the index currently under edit, or -1.
func (e *Editor) EditingImage() int { return e.editingImage }
func (e *Editor) EditingText() int  { return e.editingText }

// DeleteImageQuestion removes the question at position i. If it was the one
// being edited the edit selection is cleared.
func (e *Editor) DeleteImageQuestion(i int) error {
	s, ok := e.Selected()
	if !ok {
		return ErrSeriesNotFound
	}
	if i < 0 || i >= len(s.ImageQuestions) {
		return ErrBadIndex
	}
	e.series[e.selected].ImageQuestions = append(s.ImageQuestions[:i], s.ImageQuestions[i+1:]...)
	if e.editingImage == i {
		e.editingImage = noEdit
	} else if e.editingImage > i {
		e.editingImage--
	}
	e.sink.Success("question deleted")
	return nil
}

func (e *Editor) DeleteTextQuestion(i int) error {
	s, ok := e.Selected()
	if !ok {
		return ErrSeriesNotFound
	}
	if i < 0 || i >= len(s.TextQuestions) {
		return ErrBadIndex
	}
	e.series[e.selected].TextQuestions = append(s.TextQuestions[:i], s.TextQuestions[i+1:]...)
	if e.editingText == i {
		e.editingText = noEdit
	} else if e.editingText > i {
		e.editingText--
	}
	e.sink.Success("question deleted")
	return nil
}

// SaveDraft mirrors the open form's current state into its scratch slot. The
// payload is the raw form JSON; it is scratch, not authoritative, and only a
// successful submit or an explicit reset clears it.
func (e *Editor) SaveDraft(ctx context.Context, kind QuestionKind, raw string) error {
	s, ok := e.Selected()
	if !ok {
		return ErrSeriesNotFound
	}
	return e.drafts.Put(ctx, draftKey(kind, s.ID), raw)
}

func (e *Editor) LoadDraft(ctx context.Context, kind QuestionKind) (string, bool) {
	s, ok := e.Selected()
	if !ok {
		return "", false
	}
	raw, ok, err := e.drafts.Get(ctx, draftKey(kind, s.ID))
	if err != nil || !ok {
		return "", false
	}
	return raw, true
}

func (e *Editor) ClearDraft(ctx context.Context, kind QuestionKind) {
	s, ok := e.Selected()
	if !ok {
		return
	}
	_ = e.drafts.Delete(ctx, draftKey(kind, s.ID))
}

func nextImageID(list []ImageQuestion) int {
	max := 0
	for _, q := range list {
		if q.ID > max {
			max = q.ID
		}
	}
	return max + 1
}

func nextTextID(list []TextQuestion) int {
	max := 0
	for _, q := range list {
		if q.ID > max {
			max = q.ID
		}
	}
	return max + 1
}
