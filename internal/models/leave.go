package models

// LeaveStatus enumerates the lifecycle of a leave request.
type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "Pending"
	LeaveStatusApproved  LeaveStatus = "Approved"
	LeaveStatusRejected  LeaveStatus = "Rejected"
	LeaveStatusCancelled LeaveStatus = "Cancelled"
)

// LeaveRequest represents an employee's request for time off.
type LeaveRequest struct {
	ID         string      `json:"id"`
	Employee   string      `json:"employee"`
	Department string      `json:"department"`
	LeaveType  string      `json:"leave_type"`
	StartDate  string      `json:"start_date"`
	EndDate    string      `json:"end_date"`
	Days       int         `json:"days"`
	Reason     string      `json:"reason"`
	Status     LeaveStatus `json:"status"`
}
