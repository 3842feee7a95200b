package importer

import (
	"regexp"
	"strings"

	"github.com/ooh112526-sudo/physics-exam-generator/internal/domain"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/logger"

	"go.uber.org/zap"
)

// parseState tracks which section unmarked paragraphs append to.
type parseState int

const (
	stateNone parseState = iota
	stateBody
	stateOptions
	stateAnswer
)

// optionMarker strips the leading (A) / A. / A、 style label from an option
// line. The label must carry a delimiter so option text that merely starts
// with a capital letter is left alone.
var optionMarker = regexp.MustCompile(`^\s*(?:\([A-Ea-e]\)|[A-Ea-e][.、])\s*`)

// Parser converts a tagged plain-text document into question records.
// One Parser may be reused; all parse state is local to a single Parse call.
type Parser struct{}

// NewParser creates a document parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse walks the document paragraph by paragraph. Control markers switch
// the parse state; classification markers persist across questions until
// overridden. When no marker in the whole document is recognized, Parse
// returns no questions and an EMPTY_IMPORT diagnostic.
func (p *Parser) Parse(doc string) ([]domain.Question, error) {
	var (
		questions   []domain.Question
		current     *domain.Question
		body        strings.Builder
		answer      strings.Builder
		state       = stateNone
		class       domain.Classification
		markersSeen bool
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Body = strings.TrimSpace(body.String())
		current.Answer = strings.TrimSpace(answer.String())
		questions = append(questions, *current)
		current = nil
		body.Reset()
		answer.Reset()
	}

	for _, line := range strings.Split(doc, "\n") {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}

		switch {
		case strings.HasPrefix(text, "[Src:"):
			class.Source = markerValue(text, "[Src:")
			markersSeen = true
			continue
		case strings.HasPrefix(text, "[Chap:"):
			class.Chapter = markerValue(text, "[Chap:")
			markersSeen = true
			continue
		case strings.HasPrefix(text, "[Unit:"):
			class.Unit = markerValue(text, "[Unit:")
			markersSeen = true
			continue
		case strings.HasPrefix(text, "[Type:"):
			flush()
			markersSeen = true
			state = stateNone
			qType, ok := domain.ParseQuestionType(markerValue(text, "[Type:"))
			if !ok {
				// Unknown type opens nothing; following paragraphs are
				// ignored until the next recognized [Type:] marker.
				logger.Get().Warn("Skipping question with unknown type marker",
					zap.String("marker", text))
				continue
			}
			current = &domain.Question{Type: qType, Class: class}
			continue
		case strings.HasPrefix(text, "[Q]"):
			state = stateBody
			markersSeen = true
			continue
		case strings.HasPrefix(text, "[Opt]"):
			state = stateOptions
			markersSeen = true
			continue
		case strings.HasPrefix(text, "[Ans]"):
			markersSeen = true
			if remain := strings.TrimSpace(strings.TrimPrefix(text, "[Ans]")); remain != "" && current != nil {
				answer.WriteString(remain)
			}
			state = stateAnswer
			continue
		}

		if current == nil {
			continue
		}
		switch state {
		case stateBody:
			body.WriteString(text)
			body.WriteString("\n")
		case stateOptions:
			current.Options = append(current.Options, optionMarker.ReplaceAllString(text, ""))
		case stateAnswer:
			answer.WriteString(text)
		}
	}
	flush()

	if !markersSeen {
		return nil, domain.NewEmptyImportError()
	}
	return questions, nil
}

// markerValue extracts the payload of a [Key:value] marker.
func markerValue(text, prefix string) string {
	v := strings.TrimPrefix(text, prefix)
	v = strings.TrimSuffix(v, "]")
	return strings.TrimSpace(v)
}
