package quiz

import "fmt"

// Persisted key layout. The shapes are part of the external contract and must
// stay stable: front-end builds and the Go stores read the same slots.
func seriesKey(courseID string) string {
	return fmt.Sprintf("quizSeries::%s", courseID)
}

func progressKey(courseID, seriesID string) string {
	return fmt.Sprintf("quizProgress::%s::%s", courseID, seriesID)
}

func draftKey(kind QuestionKind, seriesID string) string {
	return fmt.Sprintf("quizFormDraft::%s::%s", kind, seriesID)
}
