package domain

import (
	"math/rand"
	"sort"
	"sync"
	"time"
)

// Permuter produces a permutation p of [0, n): position i of the shuffled
// option sequence takes the option at original index p[i]. Injecting a fixed
// Permuter makes shuffling deterministic for tests.
type Permuter func(n int) []int

// Shuffler re-orders a question's options while keeping the recorded answer
// pointing at the same option content. Correctness is tracked through the
// index permutation itself, so duplicate option text cannot misdirect the
// answer.
type Shuffler struct {
	perm Permuter
}

// NewShuffler creates a Shuffler backed by the given Permuter. A nil Permuter
// selects a process-wide uniformly random source.
func NewShuffler(perm Permuter) *Shuffler {
	if perm == nil {
		perm = randomPermuter()
	}
	return &Shuffler{perm: perm}
}

// randomPermuter returns a Permuter over a dedicated rand source. rand.Perm
// draws every permutation, the identity included, with equal probability.
// The mutex makes the source safe for concurrent exports.
func randomPermuter() Permuter {
	var mu sync.Mutex
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return func(n int) []int {
		mu.Lock()
		defer mu.Unlock()
		return rng.Perm(n)
	}
}

// Shuffle returns a new question with permuted options and the answer
// re-derived in canonical sorted-letter form. The input is never mutated.
// Fill-in questions pass through unchanged, and a choice question with no
// options comes back with empty options and an empty answer.
func (s *Shuffler) Shuffle(q Question) Question {
	if q.Type == FillIn {
		return q.Clone()
	}

	out := q.Clone()
	n := len(q.Options)
	if n == 0 {
		out.Answer = ""
		return out
	}

	correct := AnswerIndices(q.Answer, n)

	p := s.perm(n)
	if !isPermutation(p, n) {
		// A broken injected Permuter must not corrupt the paper; fall back
		// to the identity order.
		p = make([]int, n)
		for i := range p {
			p[i] = i
		}
	}

	newOptions := make([]string, n)
	newIndex := make([]int, n) // original index -> shuffled index
	for i, orig := range p {
		newOptions[i] = q.Options[orig]
		newIndex[orig] = i
	}

	moved := make([]int, 0, len(correct))
	for _, orig := range correct {
		moved = append(moved, newIndex[orig])
	}
	sort.Ints(moved)

	out.Options = newOptions
	out.Answer = AnswerLetters(moved)
	return out
}

func isPermutation(p []int, n int) bool {
	if len(p) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
