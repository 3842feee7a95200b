package render

import (
	"strings"
	"testing"

	"github.com/ooh112526-sudo/physics-exam-generator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:      "q1",
			Seq:     1,
			Type:    domain.SingleChoice,
			Body:    "縫距變小時條紋間距如何變化？",
			Options: []string{"變大", "變小", "不變"},
			Answer:  "A",
			Class:   domain.Classification{Source: "課本", Chapter: "3", Unit: "波動"},
		},
		{
			ID:     "q2",
			Seq:    2,
			Type:   domain.FillIn,
			Body:   "真空中光速約為每秒 ______ 公尺。",
			Answer: "3x10^8",
		},
	}
}

func TestRenderExam(t *testing.T) {
	r := NewRenderer("物理科")
	exam := string(r.RenderExam(sampleQuestions()))

	assert.True(t, strings.HasPrefix(exam, "物理科 試題卷\n"))
	assert.Contains(t, exam, identityLine)
	assert.Contains(t, exam, "1. (單選) 縫距變小時條紋間距如何變化？")
	assert.Contains(t, exam, "(A) 變大")
	assert.Contains(t, exam, "(B) 變小")
	assert.Contains(t, exam, "(C) 不變")
	assert.Contains(t, exam, "2. (填充) 真空中光速約為每秒 ______ 公尺。")
	assert.Contains(t, exam, fillInBlank)

	// The exam paper must not leak the recorded answers.
	assert.NotContains(t, exam, "3x10^8")
}

func TestRenderExam_OptionOrderIsRenderedVerbatim(t *testing.T) {
	q := domain.Question{
		Type:    domain.SingleChoice,
		Body:    "order check",
		Options: []string{"third", "first", "second"},
		Answer:  "B",
	}
	exam := string(NewRenderer("試").RenderExam([]domain.Question{q}))

	a := strings.Index(exam, "(A) third")
	b := strings.Index(exam, "(B) first")
	c := strings.Index(exam, "(C) second")
	require.True(t, a >= 0 && b >= 0 && c >= 0)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestRenderExam_ImagePlaceholder(t *testing.T) {
	q := domain.Question{
		Type:    domain.SingleChoice,
		Body:    "with figure",
		Options: []string{"a", "b"},
		Answer:  "A",
		Image:   []byte{0x01},
	}
	exam := string(NewRenderer("物理科").RenderExam([]domain.Question{q}))
	assert.Contains(t, exam, imageNote)

	q.Image = nil
	exam = string(NewRenderer("物理科").RenderExam([]domain.Question{q}))
	assert.NotContains(t, exam, imageNote)
}

func TestRenderAnswerKey(t *testing.T) {
	r := NewRenderer("物理科")
	key := string(r.RenderAnswerKey(sampleQuestions()))

	assert.True(t, strings.HasPrefix(key, "物理科 答案卷\n"))
	assert.Contains(t, key, "1. A  [出處:課本 章:3 單元:波動]")
	assert.Contains(t, key, "2. 3x10^8")
}

func TestRenderAnswerKey_OmitsEmptyClassification(t *testing.T) {
	qs := []domain.Question{{
		Type:    domain.SingleChoice,
		Body:    "no class",
		Options: []string{"a", "b"},
		Answer:  "B",
	}}
	key := string(NewRenderer("物理科").RenderAnswerKey(qs))
	assert.Contains(t, key, "1. B\n")
	assert.NotContains(t, key, "出處")
	assert.NotContains(t, key, "[")
}

func TestRender_EmptySelection(t *testing.T) {
	r := NewRenderer("物理科")
	exam := string(r.RenderExam(nil))
	key := string(r.RenderAnswerKey(nil))

	assert.Contains(t, exam, "試題卷")
	assert.Contains(t, key, "答案卷")
}
