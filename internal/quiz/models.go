// Package quiz holds the quiz core: series and question entities, the
// course-scoped series and progress stores, the authoring editor and the
// shuffle-and-score player.
package quiz

// OptionsPerQuestion is fixed by the authoring UI: every question carries
// exactly four choices.
const OptionsPerQuestion = 4

type ImageOption struct {
	Image     string `json:"image"` // URL or data URI
	Alt       string `json:"alt,omitempty"`
	IsCorrect bool   `json:"is_correct"`
}

type TextOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type ImageQuestion struct {
	ID       int           `json:"id"`
	Question string        `json:"question"`
	Options  []ImageOption `json:"options"`
}

type TextQuestion struct {
	ID       int          `json:"id"`
	Question string       `json:"question"`
	Options  []TextOption `json:"options"`
}

// Series is the unit of persistence: a named pair of question lists owned by a
// course. The "current" series of an editing or playing session is tracked by
// the caller as a selected ID, not inside the entity.
type Series struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CourseID       string          `json:"course_id"`
	ImageQuestions []ImageQuestion `json:"image_questions"`
	TextQuestions  []TextQuestion  `json:"text_questions"`
}

// QuestionCount is the run length a player would see for this series.
func (s Series) QuestionCount() int {
	return len(s.ImageQuestions) + len(s.TextQuestions)
}

// Progress records the most recent completed attempt for a (course, series)
// pair. Each save overwrites the previous record; there is no history.
type Progress struct {
	Score       int    `json:"score"`
	Total       int    `json:"total"`
	Percentage  int    `json:"percentage"`
	CompletedAt string `json:"completed_at"` // RFC3339
}

type QuestionKind string

const (
	KindImage QuestionKind = "image"
	KindText  QuestionKind = "text"
)

// RunQuestion is the tagged union the player plays through: exactly one of
// Image or Text is set, matching Kind.
type RunQuestion struct {
	Kind  QuestionKind
	Image *ImageQuestion
	Text  *TextQuestion
}

func (r RunQuestion) ID() int {
	if r.Kind == KindImage {
		return r.Image.ID
	}
	return r.Text.ID
}

func (r RunQuestion) Prompt() string {
	if r.Kind == KindImage {
		return r.Image.Question
	}
	return r.Text.Question
}

func (r RunQuestion) OptionCount() int {
	if r.Kind == KindImage {
		return len(r.Image.Options)
	}
	return len(r.Text.Options)
}

// OptionCorrect reports whether option i is a correct answer. Out-of-range
// indexes are never correct.
func (r RunQuestion) OptionCorrect(i int) bool {
	switch r.Kind {
	case KindImage:
		if i < 0 || i >= len(r.Image.Options) {
			return false
		}
		return r.Image.Options[i].IsCorrect
	default:
		if i < 0 || i >= len(r.Text.Options) {
			return false
		}
		return r.Text.Options[i].IsCorrect
	}
}
