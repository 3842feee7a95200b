package validation

import (
	"regexp"
	"strings"

	"github.com/ooh112526-sudo/physics-exam-generator/internal/domain"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/dto"
)

const (
	maxBodyLength   = 10000
	maxOptionCount  = 26 // option letters are A..Z
	maxTitleLength  = 200
	maxAnswerLength = 2000
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuestionRequest checks the shape of a manual-entry or edit request
// before it is turned into a domain record.
func (v *Validator) ValidateQuestionRequest(req *dto.QuestionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if _, ok := domain.ParseQuestionType(req.Type); !ok {
		errors = append(errors, domain.NewInvalidFormatError("type", req.Type))
	}
	if strings.TrimSpace(req.Body) == "" {
		errors = append(errors, domain.NewMissingFieldError("body"))
	} else if len(req.Body) > maxBodyLength {
		errors = append(errors, domain.NewOutOfRangeError("body", len(req.Body), 1, maxBodyLength))
	}
	if len(req.Options) > maxOptionCount {
		errors = append(errors, domain.NewOutOfRangeError("options", len(req.Options), 0, maxOptionCount))
	}
	for _, opt := range req.Options {
		if strings.TrimSpace(opt) == "" {
			errors = append(errors, domain.NewMissingFieldError("options"))
			break
		}
	}
	if len(req.Answer) > maxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("answer", len(req.Answer), 1, maxAnswerLength))
	}

	return errors
}

// ValidateExportRequest validates the export selection parameters.
func (v *Validator) ValidateExportRequest(req *dto.ExportRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	for _, id := range req.QuestionIDs {
		if !isValidULID(id) {
			errors = append(errors, domain.NewInvalidFormatError("question_ids", id))
			break
		}
	}
	if len(req.Title) > maxTitleLength {
		errors = append(errors, domain.NewOutOfRangeError("title", len(req.Title), 0, maxTitleLength))
	}

	return errors
}

// ValidateQuestionID validates a path identifier.
func (v *Validator) ValidateQuestionID(id string) domain.ValidationErrors {
	if isValidULID(id) {
		return nil
	}
	return domain.ValidationErrors{domain.NewInvalidFormatError("id", id)}
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	// Check if all characters are valid base32 (Crockford's Base32)
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
