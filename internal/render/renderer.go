package render

import (
	"fmt"
	"strings"

	"github.com/ooh112526-sudo/physics-exam-generator/internal/domain"
)

const (
	examHeading   = "試題卷"
	answerHeading = "答案卷"
	identityLine  = "班級：__________  姓名：__________  座號：__________"
	fillInBlank   = "______________________"
	imageNote     = "【附圖】"
)

// Renderer lays out questions into the two export artifacts: the
// learner-facing exam paper and the matching answer key. It renders exactly
// the option order and answer strings it is given; shuffling happens before
// rendering, never here.
type Renderer struct {
	title string
}

// NewRenderer creates a renderer whose artifacts carry the given subject
// title (e.g. "物理科").
func NewRenderer(title string) *Renderer {
	return &Renderer{title: title}
}

// RenderExam produces the exam paper: heading, identification line, and the
// numbered questions with lettered options or a blank line for fill-ins.
func (r *Renderer) RenderExam(questions []domain.Question) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", r.title, examHeading)
	b.WriteString(identityLine)
	b.WriteString("\n\n")

	for i, q := range questions {
		fmt.Fprintf(&b, "%d. (%s) %s\n", i+1, q.Type.Label(), strings.TrimSpace(q.Body))
		if len(q.Image) > 0 {
			b.WriteString(imageNote)
			b.WriteString("\n")
		}
		if q.Type == domain.FillIn {
			b.WriteString(fillInBlank)
			b.WriteString("\n")
		} else {
			for j, opt := range q.Options {
				fmt.Fprintf(&b, "(%c) %s\n", 'A'+j, opt)
			}
		}
		b.WriteString("\n")
	}

	return []byte(b.String())
}

// RenderAnswerKey produces the answer key: the recorded answer string per
// question, in the same order as the exam paper, annotated with any
// classification metadata.
func (r *Renderer) RenderAnswerKey(questions []domain.Question) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", r.title, answerHeading)

	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s", i+1, q.Answer)
		if note := classNote(q.Class); note != "" {
			fmt.Fprintf(&b, "  %s", note)
		}
		b.WriteString("\n")
	}

	return []byte(b.String())
}

// classNote formats the classification annotation, omitting empty fields.
func classNote(c domain.Classification) string {
	var parts []string
	if c.Source != "" {
		parts = append(parts, "出處:"+c.Source)
	}
	if c.Chapter != "" {
		parts = append(parts, "章:"+c.Chapter)
	}
	if c.Unit != "" {
		parts = append(parts, "單元:"+c.Unit)
	}
	if len(parts) == 0 {
		return ""
	}
	return "[" + strings.Join(parts, " ") + "]"
}
