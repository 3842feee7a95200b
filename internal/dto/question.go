package dto

// QuestionRequest is the body for manual entry and for replacing a stored
// question. Image carries an optional attachment as base64 in JSON.
type QuestionRequest struct {
	Type    string   `json:"type"` // single | multi | fill
	Body    string   `json:"body"`
	Options []string `json:"options,omitempty"`
	Answer  string   `json:"answer"`
	Image   []byte   `json:"image,omitempty"`
	Source  string   `json:"source,omitempty"`
	Chapter string   `json:"chapter,omitempty"`
	Unit    string   `json:"unit,omitempty"`
}

// QuestionResponse represents one pool record in API responses.
type QuestionResponse struct {
	ID       string   `json:"id"`
	Seq      int      `json:"seq"`
	Type     string   `json:"type"`
	Body     string   `json:"body"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer"`
	HasImage bool     `json:"has_image"`
	Source   string   `json:"source,omitempty"`
	Chapter  string   `json:"chapter,omitempty"`
	Unit     string   `json:"unit,omitempty"`
}

// PoolResponse lists the pool contents with the sidebar-style count.
type PoolResponse struct {
	Count     int                `json:"count"`
	Questions []QuestionResponse `json:"questions"`
}

// ImportResponse reports how many questions a document import appended.
type ImportResponse struct {
	Imported int `json:"imported"`
	Count    int `json:"count"` // pool size after the import
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
