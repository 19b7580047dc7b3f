package quiz

import "math/rand"

// buildRun merges both question lists into one tagged run. Every question's
// own option list is shuffled first, then the merged list as a whole, so both
// option order and question order change between runs. Copies are shuffled,
// never the caller's slices.
func buildRun(rng *rand.Rand, imgs []ImageQuestion, texts []TextQuestion) []RunQuestion {
	run := make([]RunQuestion, 0, len(imgs)+len(texts))
	for _, q := range imgs {
		q := q
		q.Options = append([]ImageOption(nil), q.Options...)
		rng.Shuffle(len(q.Options), func(i, j int) {
			q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
		})
		run = append(run, RunQuestion{Kind: KindImage, Image: &q})
	}
	for _, q := range texts {
		q := q
		q.Options = append([]TextOption(nil), q.Options...)
		rng.Shuffle(len(q.Options), func(i, j int) {
			q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
		})
		run = append(run, RunQuestion{Kind: KindText, Text: &q})
	}
	rng.Shuffle(len(run), func(i, j int) {
		run[i], run[j] = run[j], run[i]
	})
	return run
}
