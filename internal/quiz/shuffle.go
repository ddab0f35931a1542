package quiz

import "math/rand/v2"

// Source yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// NewSource returns a deterministic source seeded with seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle returns a uniformly permuted copy of items using Fisher-Yates.
// The input slice is left untouched. A nil src uses the process-wide source.
func Shuffle[T any](items []T, src Source) []T {
	if src == nil {
		src = globalSource{}
	}
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// ShuffleAnswers returns copies of questions with each option list permuted.
func ShuffleAnswers(questions []Question, src Source) []Question {
	out := make([]Question, len(questions))
	for i, question := range questions {
		question.Options = Shuffle(question.Options, src)
		out[i] = question
	}
	return out
}
