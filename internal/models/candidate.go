package models

// CandidateStatus enumerates the hiring pipeline stages.
type CandidateStatus string

const (
	CandidateStatusApplied   CandidateStatus = "Applied"
	CandidateStatusScreening CandidateStatus = "Screening"
	CandidateStatusInterview CandidateStatus = "Interview"
	CandidateStatusOffered   CandidateStatus = "Offered"
	CandidateStatusHired     CandidateStatus = "Hired"
	CandidateStatusRejected  CandidateStatus = "Rejected"
)

// Candidate represents a job applicant tracked by HR.
type Candidate struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Position   string          `json:"position"`
	Source     string          `json:"source"`
	Experience int             `json:"experience"`
	AppliedAt  string          `json:"applied_at"`
	Status     CandidateStatus `json:"status"`
}
