package domain

import (
	"sort"
	"strings"
)

// QuestionType identifies the kind of exam item.
type QuestionType string

const (
	SingleChoice QuestionType = "single"
	MultiChoice  QuestionType = "multi"
	FillIn       QuestionType = "fill"
)

// ParseQuestionType maps the import-tag spelling (Single/Multi/Fill) to a
// QuestionType. The second return value is false for unknown spellings.
func ParseQuestionType(s string) (QuestionType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return SingleChoice, true
	case "multi":
		return MultiChoice, true
	case "fill":
		return FillIn, true
	}
	return "", false
}

// IsChoice reports whether the type carries an option list.
func (t QuestionType) IsChoice() bool {
	return t == SingleChoice || t == MultiChoice
}

// Label returns the type label printed on the exam paper.
func (t QuestionType) Label() string {
	switch t {
	case SingleChoice:
		return "單選"
	case MultiChoice:
		return "多選"
	case FillIn:
		return "填充"
	}
	return "未知"
}

// Classification is the source/chapter/unit metadata carried with a question.
// The shuffler passes it through unchanged.
type Classification struct {
	Source  string
	Chapter string
	Unit    string
}

// Question is one exam item. ID is the permanent pool identity; Seq is the
// entry order within the pool. For choice types Answer holds option letters
// (A = first option); for fill-in it holds free text.
type Question struct {
	ID      string
	Seq     int
	Type    QuestionType
	Body    string
	Options []string
	Answer  string
	Image   []byte
	Class   Classification
}

// Clone returns a copy of the question with its own option slice. The image
// attachment is carried by reference; nothing in the system mutates it.
func (q Question) Clone() Question {
	out := q
	if q.Options != nil {
		out.Options = make([]string, len(q.Options))
		copy(out.Options, q.Options)
	}
	return out
}

// Validate checks the data-model invariants for a manually entered or
// edited question. Imported records are accepted best-effort and are not
// routed through here.
func (q *Question) Validate() ValidationErrors {
	var errs ValidationErrors

	switch q.Type {
	case SingleChoice, MultiChoice, FillIn:
	default:
		errs = append(errs, NewInvalidFormatError("type", string(q.Type)))
	}
	if strings.TrimSpace(q.Body) == "" {
		errs = append(errs, NewMissingFieldError("body"))
	}

	switch {
	case q.Type.IsChoice():
		if len(q.Options) == 0 {
			errs = append(errs, NewMissingFieldError("options"))
			break
		}
		letters := AnswerIndices(q.Answer, len(q.Options))
		if len(letters) == 0 {
			errs = append(errs, NewMissingFieldError("answer"))
		} else if q.Type == SingleChoice && len(letters) > 1 {
			errs = append(errs, NewOutOfRangeError("answer", len(letters), 1, 1))
		}
		// Every recorded letter must index into the option list.
		for _, r := range strings.ToUpper(q.Answer) {
			if r == ' ' || r == '\t' || r == ',' {
				continue
			}
			if r < 'A' || int(r-'A') >= len(q.Options) {
				errs = append(errs, NewInvalidFormatError("answer", q.Answer))
				break
			}
		}
	case q.Type == FillIn:
		if len(q.Options) > 0 {
			errs = append(errs, NewInvalidFormatError("options", "fill-in questions carry no options"))
		}
		if strings.TrimSpace(q.Answer) == "" {
			errs = append(errs, NewMissingFieldError("answer"))
		}
	}

	return errs
}

// AnswerIndices normalizes an answer string against an option count: letters
// are uppercased, whitespace and characters that do not map to a valid option
// index are dropped, duplicates collapse. The result is ascending.
func AnswerIndices(answer string, optionCount int) []int {
	seen := make(map[int]bool)
	var indices []int
	for _, r := range strings.ToUpper(answer) {
		if r < 'A' || r > 'Z' {
			continue
		}
		idx := int(r - 'A')
		if idx >= optionCount || seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices
}

// AnswerLetters renders option indices as the canonical sorted letter string.
func AnswerLetters(indices []int) string {
	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Ints(sorted)
	var b strings.Builder
	for _, idx := range sorted {
		b.WriteByte(byte('A' + idx))
	}
	return b.String()
}
