package dto

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description,omitempty"`
	Deadline    string `json:"deadline,omitempty"` // naive local date, "2006-01-02"
}

type UpdateTaskRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
}
