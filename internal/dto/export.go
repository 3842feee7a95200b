package dto

// ExportRequest selects a subset of the pool and stages the two export
// artifacts. Empty QuestionIDs selects the whole pool in entry order.
// Shuffle defaults to true when omitted.
type ExportRequest struct {
	QuestionIDs []string `json:"question_ids,omitempty"`
	Shuffle     *bool    `json:"shuffle,omitempty"`
	Title       string   `json:"title,omitempty"`
}

// ShuffleEnabled resolves the tri-state flag.
func (r *ExportRequest) ShuffleEnabled() bool {
	return r.Shuffle == nil || *r.Shuffle
}

// ExportResponse identifies a staged export and where to fetch its
// artifacts.
type ExportResponse struct {
	ExportID      string `json:"export_id"`
	QuestionCount int    `json:"question_count"`
	ExamURL       string `json:"exam_url"`
	AnswerKeyURL  string `json:"answer_key_url"`
}
