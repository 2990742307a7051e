package model

// Task is one copilot task. Deadline is the naive local date string the
// form submits ("2006-01-02"); no timezone normalization is applied.
type Task struct {
	TaskID       string    `bson:"_id,omitempty" json:"id"`
	UserID       string    `bson:"userId" json:"userId"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Deadline     string    `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Completed    bool      `bson:"completed" json:"completed"`
	AISuggestion string    `bson:"aiSuggestion,omitempty" json:"aiSuggestion,omitempty"`
	Timestamp    Timestamp `bson:"timestamp" json:"timestamp"`
}
