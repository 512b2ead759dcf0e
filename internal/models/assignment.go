package models

// AssignmentStatus enumerates the states of a student assignment.
type AssignmentStatus string

const (
	AssignmentStatusPending   AssignmentStatus = "pending"
	AssignmentStatusSubmitted AssignmentStatus = "submitted"
	AssignmentStatusOverdue   AssignmentStatus = "overdue"
	AssignmentStatusGraded    AssignmentStatus = "graded"
)

// Assignment represents homework handed out to a class.
type Assignment struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Subject   string           `json:"subject"`
	Teacher   string           `json:"teacher"`
	ClassName string           `json:"class_name"`
	DueDate   string           `json:"due_date"`
	Score     *int             `json:"score,omitempty"`
	Status    AssignmentStatus `json:"status"`
}
