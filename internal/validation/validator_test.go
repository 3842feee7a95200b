package validation

import (
	"strings"
	"testing"

	"github.com/ooh112526-sudo/physics-exam-generator/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateQuestionRequest(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name    string
		req     *dto.QuestionRequest
		wantErr bool
	}{
		{
			name: "Valid single choice",
			req: &dto.QuestionRequest{
				Type:    "single",
				Body:    "縫距變小時條紋間距如何變化？",
				Options: []string{"變大", "變小", "不變"},
				Answer:  "A",
			},
			wantErr: false,
		},
		{
			name: "Valid fill in",
			req: &dto.QuestionRequest{
				Type:   "fill",
				Body:   "光速為何？",
				Answer: "3x10^8",
			},
			wantErr: false,
		},
		{
			name: "Unknown type",
			req: &dto.QuestionRequest{
				Type:   "essay",
				Body:   "body",
				Answer: "A",
			},
			wantErr: true,
		},
		{
			name: "Missing body",
			req: &dto.QuestionRequest{
				Type:    "single",
				Body:    "   ",
				Options: []string{"a", "b"},
				Answer:  "A",
			},
			wantErr: true,
		},
		{
			name: "Body too long",
			req: &dto.QuestionRequest{
				Type:   "fill",
				Body:   strings.Repeat("x", maxBodyLength+1),
				Answer: "a",
			},
			wantErr: true,
		},
		{
			name: "Blank option",
			req: &dto.QuestionRequest{
				Type:    "single",
				Body:    "body",
				Options: []string{"a", "  "},
				Answer:  "A",
			},
			wantErr: true,
		},
		{
			name: "Too many options",
			req: &dto.QuestionRequest{
				Type:    "multi",
				Body:    "body",
				Options: make([]string, maxOptionCount+1),
				Answer:  "A",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validator.ValidateQuestionRequest(tt.req)
			if tt.wantErr {
				assert.NotEmpty(t, errs)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestValidateExportRequest(t *testing.T) {
	validator := NewValidator()

	assert.Empty(t, validator.ValidateExportRequest(&dto.ExportRequest{}))
	assert.Empty(t, validator.ValidateExportRequest(&dto.ExportRequest{
		QuestionIDs: []string{"01ARZ3NDEKTSV4RRFFQ69G5FAV"},
		Title:       "期中考",
	}))

	errs := validator.ValidateExportRequest(&dto.ExportRequest{
		QuestionIDs: []string{"not-a-ulid"},
	})
	assert.NotEmpty(t, errs)

	errs = validator.ValidateExportRequest(&dto.ExportRequest{
		Title: strings.Repeat("長", maxTitleLength+1),
	})
	assert.NotEmpty(t, errs)
}

func TestValidateQuestionID(t *testing.T) {
	validator := NewValidator()

	assert.Empty(t, validator.ValidateQuestionID("01ARZ3NDEKTSV4RRFFQ69G5FAV"))
	assert.NotEmpty(t, validator.ValidateQuestionID("short"))
	assert.NotEmpty(t, validator.ValidateQuestionID("01ARZ3NDEKTSV4RRFFQ69G5FAI")) // I is not Crockford base32
}
