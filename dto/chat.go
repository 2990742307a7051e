package dto

type ChatRequest struct {
	Message string `json:"message" binding:"required,max=4000"`
}

// CompanionRequest carries the form fields of one companion tool invocation.
// Which fields are required depends on the tool; the tool template validates.
type CompanionRequest struct {
	Subject     string `json:"subject,omitempty"`
	Topic       string `json:"topic,omitempty"`
	Description string `json:"description,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	KeyPoints   string `json:"keyPoints,omitempty"`
	Level       string `json:"level,omitempty"`
}
