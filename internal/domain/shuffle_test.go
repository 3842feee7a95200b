package domain

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedPerm returns a Permuter that always yields the given permutation.
func fixedPerm(p []int) Permuter {
	return func(n int) []int {
		out := make([]int, len(p))
		copy(out, p)
		return out
	}
}

func identityPerm() Permuter {
	return func(n int) []int {
		p := make([]int, n)
		for i := range p {
			p[i] = i
		}
		return p
	}
}

// resolve maps answer letters back to the option texts they point at.
func resolve(answer string, options []string) []string {
	var texts []string
	for _, idx := range AnswerIndices(answer, len(options)) {
		texts = append(texts, options[idx])
	}
	sort.Strings(texts)
	return texts
}

func TestShuffle_SingleChoicePreservesAnswer(t *testing.T) {
	q := Question{
		ID:      "q1",
		Type:    SingleChoice,
		Body:    "雙狹縫干涉實驗中，縫距變小時條紋間距如何變化？",
		Options: []string{"變大", "變小", "不變"},
		Answer:  "A",
	}

	// New order: 不變, 變大, 變小 — "變大" lands at index 1.
	s := NewShuffler(fixedPerm([]int{2, 0, 1}))
	got := s.Shuffle(q)

	assert.Equal(t, []string{"不變", "變大", "變小"}, got.Options)
	assert.Equal(t, "B", got.Answer)
	assert.Equal(t, []string{"變大"}, resolve(got.Answer, got.Options))
}

func TestShuffle_MultiChoicePreservesAnswerSet(t *testing.T) {
	q := Question{
		ID:      "q2",
		Type:    MultiChoice,
		Options: []string{"X", "Y", "Z", "W"},
		Answer:  "BD", // texts {Y, W}
	}

	s := NewShuffler(fixedPerm([]int{3, 2, 1, 0}))
	got := s.Shuffle(q)

	assert.Equal(t, []string{"W", "Z", "Y", "X"}, got.Options)
	assert.Equal(t, "AC", got.Answer)
	assert.Equal(t, []string{"W", "Y"}, resolve(got.Answer, got.Options))
}

func TestShuffle_CanonicalAnswerOrdering(t *testing.T) {
	q := Question{
		ID:      "q3",
		Type:    MultiChoice,
		Options: []string{"one", "two", "three"},
		Answer:  "CA",
	}

	got := NewShuffler(identityPerm()).Shuffle(q)
	assert.Equal(t, "AC", got.Answer)
}

func TestShuffle_DropsUnrecognizedLetters(t *testing.T) {
	q := Question{
		ID:      "q4",
		Type:    SingleChoice,
		Options: []string{"a", "b", "c"},
		Answer:  "AZ", // Z does not index into three options
	}

	got := NewShuffler(identityPerm()).Shuffle(q)
	assert.Equal(t, "A", got.Answer)
	assert.LessOrEqual(t, len(got.Answer), 1)
}

func TestShuffle_NormalizesWhitespaceAndDuplicates(t *testing.T) {
	q := Question{
		ID:      "q5",
		Type:    MultiChoice,
		Options: []string{"p", "q", "r"},
		Answer:  " b a A",
	}

	got := NewShuffler(identityPerm()).Shuffle(q)
	assert.Equal(t, "AB", got.Answer)
}

func TestShuffle_FillInIsIdentity(t *testing.T) {
	q := Question{
		ID:     "q6",
		Seq:    4,
		Type:   FillIn,
		Body:   "光速為每秒 ______ 公尺。",
		Answer: "3x10^8",
		Class:  Classification{Source: "課本", Chapter: "3", Unit: "光學"},
	}

	got := NewShuffler(nil).Shuffle(q)
	assert.Equal(t, q, got)
	assert.Empty(t, got.Options)
}

func TestShuffle_ZeroOptionsChoice(t *testing.T) {
	q := Question{
		ID:     "q7",
		Type:   SingleChoice,
		Body:   "malformed entry",
		Answer: "A",
	}

	got := NewShuffler(nil).Shuffle(q)
	assert.Empty(t, got.Options)
	assert.Equal(t, "", got.Answer)
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	q := Question{
		ID:      "q8",
		Type:    MultiChoice,
		Options: []string{"alpha", "beta", "gamma", "delta"},
		Answer:  "AD",
	}
	snapshot := q.Clone()

	s := NewShuffler(fixedPerm([]int{3, 1, 0, 2}))
	_ = s.Shuffle(q)
	_ = s.Shuffle(q)

	assert.Equal(t, snapshot, q)
}

func TestShuffle_DuplicateOptionTextFollowsIndex(t *testing.T) {
	// Two options share the same text; the answer must follow the original
	// option's position through the permutation, not a text search.
	q := Question{
		ID:      "q9",
		Type:    SingleChoice,
		Options: []string{"X", "X", "Y"},
		Answer:  "B",
	}

	got := NewShuffler(fixedPerm([]int{2, 0, 1})).Shuffle(q)
	assert.Equal(t, []string{"Y", "X", "X"}, got.Options)
	assert.Equal(t, "C", got.Answer)
}

func TestShuffle_InvalidPermuterFallsBackToIdentity(t *testing.T) {
	q := Question{
		ID:      "q10",
		Type:    SingleChoice,
		Options: []string{"a", "b", "c"},
		Answer:  "C",
	}

	for _, bad := range []Permuter{
		fixedPerm([]int{0, 1}),       // wrong length
		fixedPerm([]int{0, 0, 1}),    // repeated index
		fixedPerm([]int{0, 1, 5}),    // out of range
		func(n int) []int { return nil },
	} {
		got := NewShuffler(bad).Shuffle(q)
		assert.Equal(t, q.Options, got.Options)
		assert.Equal(t, "C", got.Answer)
	}
}

func TestShuffle_CarriesIdentityMetadataAndImage(t *testing.T) {
	img := []byte{0x89, 0x50, 0x4e, 0x47}
	q := Question{
		ID:      "q11",
		Seq:     7,
		Type:    SingleChoice,
		Body:    "body",
		Options: []string{"a", "b"},
		Answer:  "B",
		Image:   img,
		Class:   Classification{Source: "段考", Chapter: "2", Unit: "力學"},
	}

	got := NewShuffler(fixedPerm([]int{1, 0})).Shuffle(q)
	assert.Equal(t, "q11", got.ID)
	assert.Equal(t, 7, got.Seq)
	assert.Equal(t, q.Type, got.Type)
	assert.Equal(t, q.Body, got.Body)
	assert.Equal(t, q.Class, got.Class)
	assert.Equal(t, img, got.Image)
	assert.Equal(t, "A", got.Answer)
}

func TestShuffle_RandomizedPermutationValidity(t *testing.T) {
	q := Question{
		ID:      "q12",
		Type:    MultiChoice,
		Options: []string{"東", "南", "西", "北", "中"},
		Answer:  "BE", // texts {南, 中}
	}
	want := resolve(q.Answer, q.Options)

	s := NewShuffler(nil)
	for i := 0; i < 200; i++ {
		got := s.Shuffle(q)

		// Same multiset of option strings, same length.
		require.Len(t, got.Options, len(q.Options))
		sortedGot := append([]string(nil), got.Options...)
		sortedWant := append([]string(nil), q.Options...)
		sort.Strings(sortedGot)
		sort.Strings(sortedWant)
		require.Equal(t, sortedWant, sortedGot)

		// The answer letters still point at the same texts, sorted.
		require.Equal(t, want, resolve(got.Answer, got.Options))
		require.True(t, sort.StringsAreSorted(splitLetters(got.Answer)))
	}
}

func splitLetters(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func TestShuffle_IndependentShufflesPerExport(t *testing.T) {
	// Re-exporting the same pool must draw a fresh permutation each time:
	// over many draws of 6 options, at least two orders must differ.
	q := Question{
		ID:      "q13",
		Type:    SingleChoice,
		Options: []string{"1", "2", "3", "4", "5", "6"},
		Answer:  "A",
	}

	s := NewShuffler(nil)
	first := s.Shuffle(q).Options
	varied := false
	for i := 0; i < 50; i++ {
		if !assert.ObjectsAreEqual(first, s.Shuffle(q).Options) {
			varied = true
			break
		}
	}
	assert.True(t, varied, "50 shuffles of 6 options never varied")
}
