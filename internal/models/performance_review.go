package models

// ReviewStatus enumerates the stages of a performance review cycle.
type ReviewStatus string

const (
	ReviewStatusScheduled    ReviewStatus = "scheduled"
	ReviewStatusInProgress   ReviewStatus = "in_progress"
	ReviewStatusCompleted    ReviewStatus = "completed"
	ReviewStatusAcknowledged ReviewStatus = "acknowledged"
)

// PerformanceReview represents one employee appraisal.
type PerformanceReview struct {
	ID         string       `json:"id"`
	Employee   string       `json:"employee"`
	Reviewer   string       `json:"reviewer"`
	Department string       `json:"department"`
	Period     string       `json:"period"`
	Rating     *float64     `json:"rating,omitempty"`
	Status     ReviewStatus `json:"status"`
}
