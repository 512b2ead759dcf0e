package service

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-dashboard-api/internal/models"
	"github.com/noah-isme/sma-dashboard-api/pkg/listview"
)

// Resource slugs exposed under /resources/:resource.
const (
	ResourceLeaveRequests      = "leave-requests"
	ResourceExpenses           = "expenses"
	ResourceAssignments        = "assignments"
	ResourceCandidates         = "candidates"
	ResourceDocuments          = "documents"
	ResourceAssets             = "assets"
	ResourcePerformanceReviews = "performance-reviews"
	ResourcePayroll            = "payroll"
	ResourceAttendance         = "attendance"
	ResourceUsers              = "users"
)

// RegisterResources builds a RecordService for every dashboard resource and adds it to the catalog.
func RegisterResources(catalog *Catalog, store recordStore, audit auditStore, pageSize int, logger *zap.Logger, opts ...RecordServiceOption) error {
	resources := []Resource{
		NewRecordService(LeaveRequestDefinition(pageSize), store, audit, logger, opts...),
		NewRecordService(ExpenseDefinition(pageSize), store, audit, logger, opts...),
		NewRecordService(AssignmentDefinition(pageSize), store, audit, logger, opts...),
		NewRecordService(CandidateDefinition(pageSize), store, audit, logger, opts...),
		NewRecordService(DocumentDefinition(pageSize), store, audit, logger, opts...),
		NewRecordService(AssetDefinition(pageSize), store, audit, logger, opts...),
		NewRecordService(PerformanceReviewDefinition(pageSize), store, audit, logger, opts...),
		NewRecordService(PayrollDefinition(pageSize), store, audit, logger, opts...),
		NewRecordService(AttendanceDefinition(pageSize), store, audit, logger, opts...),
		NewRecordService(UserAccountDefinition(pageSize), store, audit, logger, opts...),
	}
	for _, resource := range resources {
		if err := catalog.Register(resource); err != nil {
			return err
		}
	}
	return nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// LeaveRequestDefinition describes HR leave requests.
func LeaveRequestDefinition(pageSize int) ResourceDefinition[models.LeaveRequest, models.LeaveStatus] {
	workflow := listview.NewWorkflow(
		[]models.LeaveStatus{models.LeaveStatusPending, models.LeaveStatusApproved, models.LeaveStatusRejected, models.LeaveStatusCancelled},
		map[models.LeaveStatus][]models.LeaveStatus{
			models.LeaveStatusPending:  {models.LeaveStatusApproved, models.LeaveStatusRejected, models.LeaveStatusCancelled},
			models.LeaveStatusApproved: {models.LeaveStatusCancelled},
		},
	)
	return ResourceDefinition[models.LeaveRequest, models.LeaveStatus]{
		Slug:       ResourceLeaveRequests,
		Title:      "Leave Requests",
		PageSize:   pageSize,
		Searchable: []string{"employee", "leave_type", "reason"},
		Schema: listview.Schema[models.LeaveRequest, models.LeaveStatus]{
			Project: func(r models.LeaveRequest) listview.Record[models.LeaveStatus] {
				return listview.Record[models.LeaveStatus]{
					ID:         r.ID,
					Status:     r.Status,
					Searchable: []string{r.Employee, r.LeaveType, r.Reason},
					Categories: map[string]string{"status": string(r.Status), "leave_type": r.LeaveType, "department": r.Department},
				}
			},
			WithStatus: func(r models.LeaveRequest, s models.LeaveStatus) models.LeaveRequest {
				r.Status = s
				return r
			},
			Fields:   []string{"status", "leave_type", "department"},
			Workflow: workflow,
		},
		Columns: []Column[models.LeaveRequest]{
			{Header: "ID", Value: func(r models.LeaveRequest) string { return r.ID }},
			{Header: "Employee", Value: func(r models.LeaveRequest) string { return r.Employee }},
			{Header: "Department", Value: func(r models.LeaveRequest) string { return r.Department }},
			{Header: "Leave Type", Value: func(r models.LeaveRequest) string { return r.LeaveType }},
			{Header: "From", Value: func(r models.LeaveRequest) string { return r.StartDate }},
			{Header: "To", Value: func(r models.LeaveRequest) string { return r.EndDate }},
			{Header: "Days", Value: func(r models.LeaveRequest) string { return strconv.Itoa(r.Days) }},
			{Header: "Status", Value: func(r models.LeaveRequest) string { return string(r.Status) }},
		},
	}
}

// ExpenseDefinition describes expense claims.
func ExpenseDefinition(pageSize int) ResourceDefinition[models.ExpenseClaim, models.ExpenseStatus] {
	workflow := listview.NewWorkflow(
		[]models.ExpenseStatus{models.ExpenseStatusDraft, models.ExpenseStatusSubmitted, models.ExpenseStatusApproved, models.ExpenseStatusRejected, models.ExpenseStatusReimbursed},
		map[models.ExpenseStatus][]models.ExpenseStatus{
			models.ExpenseStatusDraft:     {models.ExpenseStatusSubmitted},
			models.ExpenseStatusSubmitted: {models.ExpenseStatusApproved, models.ExpenseStatusRejected},
			models.ExpenseStatusRejected:  {models.ExpenseStatusDraft},
			models.ExpenseStatusApproved:  {models.ExpenseStatusReimbursed},
		},
	)
	return ResourceDefinition[models.ExpenseClaim, models.ExpenseStatus]{
		Slug:       ResourceExpenses,
		Title:      "Expense Claims",
		PageSize:   pageSize,
		Searchable: []string{"title", "employee"},
		Schema: listview.Schema[models.ExpenseClaim, models.ExpenseStatus]{
			Project: func(e models.ExpenseClaim) listview.Record[models.ExpenseStatus] {
				return listview.Record[models.ExpenseStatus]{
					ID:         e.ID,
					Status:     e.Status,
					Searchable: []string{e.Title, e.Employee},
					Categories: map[string]string{"status": string(e.Status), "category": e.Category},
				}
			},
			WithStatus: func(e models.ExpenseClaim, s models.ExpenseStatus) models.ExpenseClaim {
				e.Status = s
				return e
			},
			Fields:   []string{"status", "category"},
			Workflow: workflow,
		},
		Columns: []Column[models.ExpenseClaim]{
			{Header: "ID", Value: func(e models.ExpenseClaim) string { return e.ID }},
			{Header: "Title", Value: func(e models.ExpenseClaim) string { return e.Title }},
			{Header: "Employee", Value: func(e models.ExpenseClaim) string { return e.Employee }},
			{Header: "Category", Value: func(e models.ExpenseClaim) string { return e.Category }},
			{Header: "Amount", Value: func(e models.ExpenseClaim) string { return money(e.Amount) }},
			{Header: "Date", Value: func(e models.ExpenseClaim) string { return e.Date }},
			{Header: "Status", Value: func(e models.ExpenseClaim) string { return string(e.Status) }},
		},
	}
}

// AssignmentDefinition describes student assignments.
func AssignmentDefinition(pageSize int) ResourceDefinition[models.Assignment, models.AssignmentStatus] {
	workflow := listview.NewWorkflow(
		[]models.AssignmentStatus{models.AssignmentStatusPending, models.AssignmentStatusSubmitted, models.AssignmentStatusOverdue, models.AssignmentStatusGraded},
		map[models.AssignmentStatus][]models.AssignmentStatus{
			models.AssignmentStatusPending:   {models.AssignmentStatusSubmitted, models.AssignmentStatusOverdue},
			models.AssignmentStatusOverdue:   {models.AssignmentStatusSubmitted},
			models.AssignmentStatusSubmitted: {models.AssignmentStatusGraded, models.AssignmentStatusPending},
		},
	)
	return ResourceDefinition[models.Assignment, models.AssignmentStatus]{
		Slug:       ResourceAssignments,
		Title:      "Assignments",
		PageSize:   pageSize,
		Searchable: []string{"title", "subject", "teacher"},
		Schema: listview.Schema[models.Assignment, models.AssignmentStatus]{
			Project: func(a models.Assignment) listview.Record[models.AssignmentStatus] {
				return listview.Record[models.AssignmentStatus]{
					ID:         a.ID,
					Status:     a.Status,
					Searchable: []string{a.Title, a.Subject, a.Teacher},
					Categories: map[string]string{"status": string(a.Status), "subject": a.Subject, "class_name": a.ClassName},
				}
			},
			WithStatus: func(a models.Assignment, s models.AssignmentStatus) models.Assignment {
				a.Status = s
				return a
			},
			Fields:   []string{"status", "subject", "class_name"},
			Workflow: workflow,
		},
		Columns: []Column[models.Assignment]{
			{Header: "ID", Value: func(a models.Assignment) string { return a.ID }},
			{Header: "Title", Value: func(a models.Assignment) string { return a.Title }},
			{Header: "Subject", Value: func(a models.Assignment) string { return a.Subject }},
			{Header: "Teacher", Value: func(a models.Assignment) string { return a.Teacher }},
			{Header: "Class", Value: func(a models.Assignment) string { return a.ClassName }},
			{Header: "Due", Value: func(a models.Assignment) string { return a.DueDate }},
			{Header: "Score", Value: func(a models.Assignment) string {
				if a.Score == nil {
					return ""
				}
				return strconv.Itoa(*a.Score)
			}},
			{Header: "Status", Value: func(a models.Assignment) string { return string(a.Status) }},
		},
	}
}

// CandidateDefinition describes the recruitment pipeline.
func CandidateDefinition(pageSize int) ResourceDefinition[models.Candidate, models.CandidateStatus] {
	workflow := listview.NewWorkflow(
		[]models.CandidateStatus{
			models.CandidateStatusApplied, models.CandidateStatusScreening, models.CandidateStatusInterview,
			models.CandidateStatusOffered, models.CandidateStatusHired, models.CandidateStatusRejected,
		},
		map[models.CandidateStatus][]models.CandidateStatus{
			models.CandidateStatusApplied:   {models.CandidateStatusScreening, models.CandidateStatusRejected},
			models.CandidateStatusScreening: {models.CandidateStatusInterview, models.CandidateStatusRejected},
			models.CandidateStatusInterview: {models.CandidateStatusOffered, models.CandidateStatusRejected},
			models.CandidateStatusOffered:   {models.CandidateStatusHired, models.CandidateStatusRejected},
		},
	)
	return ResourceDefinition[models.Candidate, models.CandidateStatus]{
		Slug:       ResourceCandidates,
		Title:      "Candidates",
		PageSize:   pageSize,
		Searchable: []string{"name", "email", "position"},
		Schema: listview.Schema[models.Candidate, models.CandidateStatus]{
			Project: func(c models.Candidate) listview.Record[models.CandidateStatus] {
				return listview.Record[models.CandidateStatus]{
					ID:         c.ID,
					Status:     c.Status,
					Searchable: []string{c.Name, c.Email, c.Position},
					Categories: map[string]string{"status": string(c.Status), "position": c.Position, "source": c.Source},
				}
			},
			WithStatus: func(c models.Candidate, s models.CandidateStatus) models.Candidate {
				c.Status = s
				return c
			},
			Fields:   []string{"status", "position", "source"},
			Workflow: workflow,
		},
		Columns: []Column[models.Candidate]{
			{Header: "ID", Value: func(c models.Candidate) string { return c.ID }},
			{Header: "Name", Value: func(c models.Candidate) string { return c.Name }},
			{Header: "Email", Value: func(c models.Candidate) string { return c.Email }},
			{Header: "Position", Value: func(c models.Candidate) string { return c.Position }},
			{Header: "Source", Value: func(c models.Candidate) string { return c.Source }},
			{Header: "Experience (yrs)", Value: func(c models.Candidate) string { return strconv.Itoa(c.Experience) }},
			{Header: "Status", Value: func(c models.Candidate) string { return string(c.Status) }},
		},
	}
}

// DocumentDefinition describes managed documents.
func DocumentDefinition(pageSize int) ResourceDefinition[models.Document, models.DocumentStatus] {
	workflow := listview.NewWorkflow(
		[]models.DocumentStatus{models.DocumentStatusDraft, models.DocumentStatusReview, models.DocumentStatusPublished, models.DocumentStatusArchived},
		map[models.DocumentStatus][]models.DocumentStatus{
			models.DocumentStatusDraft:     {models.DocumentStatusReview},
			models.DocumentStatusReview:    {models.DocumentStatusPublished, models.DocumentStatusDraft},
			models.DocumentStatusPublished: {models.DocumentStatusArchived},
			models.DocumentStatusArchived:  {models.DocumentStatusDraft},
		},
	)
	return ResourceDefinition[models.Document, models.DocumentStatus]{
		Slug:       ResourceDocuments,
		Title:      "Documents",
		PageSize:   pageSize,
		Searchable: []string{"title", "owner"},
		Schema: listview.Schema[models.Document, models.DocumentStatus]{
			Project: func(d models.Document) listview.Record[models.DocumentStatus] {
				return listview.Record[models.DocumentStatus]{
					ID:         d.ID,
					Status:     d.Status,
					Searchable: []string{d.Title, d.Owner},
					Categories: map[string]string{"status": string(d.Status), "category": d.Category},
				}
			},
			WithStatus: func(d models.Document, s models.DocumentStatus) models.Document {
				d.Status = s
				return d
			},
			Fields:   []string{"status", "category"},
			Workflow: workflow,
		},
		Columns: []Column[models.Document]{
			{Header: "ID", Value: func(d models.Document) string { return d.ID }},
			{Header: "Title", Value: func(d models.Document) string { return d.Title }},
			{Header: "Owner", Value: func(d models.Document) string { return d.Owner }},
			{Header: "Category", Value: func(d models.Document) string { return d.Category }},
			{Header: "Version", Value: func(d models.Document) string { return d.Version }},
			{Header: "Status", Value: func(d models.Document) string { return string(d.Status) }},
		},
	}
}

// AssetDefinition describes the asset inventory.
func AssetDefinition(pageSize int) ResourceDefinition[models.Asset, models.AssetStatus] {
	workflow := listview.NewWorkflow(
		[]models.AssetStatus{models.AssetStatusAvailable, models.AssetStatusAssigned, models.AssetStatusMaintenance, models.AssetStatusRetired},
		map[models.AssetStatus][]models.AssetStatus{
			models.AssetStatusAvailable:   {models.AssetStatusAssigned, models.AssetStatusMaintenance, models.AssetStatusRetired},
			models.AssetStatusAssigned:    {models.AssetStatusAvailable, models.AssetStatusMaintenance},
			models.AssetStatusMaintenance: {models.AssetStatusAvailable, models.AssetStatusRetired},
		},
	)
	return ResourceDefinition[models.Asset, models.AssetStatus]{
		Slug:       ResourceAssets,
		Title:      "Assets",
		PageSize:   pageSize,
		Searchable: []string{"name", "tag", "assigned_to"},
		Schema: listview.Schema[models.Asset, models.AssetStatus]{
			Project: func(a models.Asset) listview.Record[models.AssetStatus] {
				return listview.Record[models.AssetStatus]{
					ID:         a.ID,
					Status:     a.Status,
					Searchable: []string{a.Name, a.Tag, a.AssignedTo},
					Categories: map[string]string{"status": string(a.Status), "category": a.Category, "location": a.Location},
				}
			},
			WithStatus: func(a models.Asset, s models.AssetStatus) models.Asset {
				a.Status = s
				return a
			},
			Fields:   []string{"status", "category", "location"},
			Workflow: workflow,
		},
		Columns: []Column[models.Asset]{
			{Header: "ID", Value: func(a models.Asset) string { return a.ID }},
			{Header: "Tag", Value: func(a models.Asset) string { return a.Tag }},
			{Header: "Name", Value: func(a models.Asset) string { return a.Name }},
			{Header: "Category", Value: func(a models.Asset) string { return a.Category }},
			{Header: "Location", Value: func(a models.Asset) string { return a.Location }},
			{Header: "Assigned To", Value: func(a models.Asset) string { return a.AssignedTo }},
			{Header: "Value", Value: func(a models.Asset) string { return money(a.Value) }},
			{Header: "Status", Value: func(a models.Asset) string { return string(a.Status) }},
		},
	}
}

// PerformanceReviewDefinition describes appraisal cycles.
func PerformanceReviewDefinition(pageSize int) ResourceDefinition[models.PerformanceReview, models.ReviewStatus] {
	workflow := listview.NewWorkflow(
		[]models.ReviewStatus{models.ReviewStatusScheduled, models.ReviewStatusInProgress, models.ReviewStatusCompleted, models.ReviewStatusAcknowledged},
		map[models.ReviewStatus][]models.ReviewStatus{
			models.ReviewStatusScheduled:  {models.ReviewStatusInProgress},
			models.ReviewStatusInProgress: {models.ReviewStatusCompleted},
			models.ReviewStatusCompleted:  {models.ReviewStatusAcknowledged},
		},
	)
	return ResourceDefinition[models.PerformanceReview, models.ReviewStatus]{
		Slug:       ResourcePerformanceReviews,
		Title:      "Performance Reviews",
		PageSize:   pageSize,
		Searchable: []string{"employee", "reviewer"},
		Schema: listview.Schema[models.PerformanceReview, models.ReviewStatus]{
			Project: func(r models.PerformanceReview) listview.Record[models.ReviewStatus] {
				return listview.Record[models.ReviewStatus]{
					ID:         r.ID,
					Status:     r.Status,
					Searchable: []string{r.Employee, r.Reviewer},
					Categories: map[string]string{"status": string(r.Status), "period": r.Period, "department": r.Department},
				}
			},
			WithStatus: func(r models.PerformanceReview, s models.ReviewStatus) models.PerformanceReview {
				r.Status = s
				return r
			},
			Fields:   []string{"status", "period", "department"},
			Workflow: workflow,
		},
		Columns: []Column[models.PerformanceReview]{
			{Header: "ID", Value: func(r models.PerformanceReview) string { return r.ID }},
			{Header: "Employee", Value: func(r models.PerformanceReview) string { return r.Employee }},
			{Header: "Reviewer", Value: func(r models.PerformanceReview) string { return r.Reviewer }},
			{Header: "Department", Value: func(r models.PerformanceReview) string { return r.Department }},
			{Header: "Period", Value: func(r models.PerformanceReview) string { return r.Period }},
			{Header: "Rating", Value: func(r models.PerformanceReview) string {
				if r.Rating == nil {
					return ""
				}
				return fmt.Sprintf("%.1f", *r.Rating)
			}},
			{Header: "Status", Value: func(r models.PerformanceReview) string { return string(r.Status) }},
		},
	}
}

// PayrollDefinition describes monthly salary slips. Net pay is recomputed on every read.
func PayrollDefinition(pageSize int) ResourceDefinition[models.PayrollSlip, models.PayrollStatus] {
	workflow := listview.NewWorkflow(
		[]models.PayrollStatus{models.PayrollStatusDraft, models.PayrollStatusProcessed, models.PayrollStatusOnHold, models.PayrollStatusPaid},
		map[models.PayrollStatus][]models.PayrollStatus{
			models.PayrollStatusDraft:     {models.PayrollStatusProcessed, models.PayrollStatusOnHold},
			models.PayrollStatusOnHold:    {models.PayrollStatusDraft},
			models.PayrollStatusProcessed: {models.PayrollStatusPaid},
		},
	)
	return ResourceDefinition[models.PayrollSlip, models.PayrollStatus]{
		Slug:       ResourcePayroll,
		Title:      "Payroll",
		PageSize:   pageSize,
		Searchable: []string{"employee", "month"},
		Schema: listview.Schema[models.PayrollSlip, models.PayrollStatus]{
			Project: func(p models.PayrollSlip) listview.Record[models.PayrollStatus] {
				return listview.Record[models.PayrollStatus]{
					ID:         p.ID,
					Status:     p.Status,
					Searchable: []string{p.Employee, p.Month},
					Categories: map[string]string{"status": string(p.Status), "month": p.Month, "department": p.Department},
				}
			},
			WithStatus: func(p models.PayrollSlip, s models.PayrollStatus) models.PayrollSlip {
				p.Status = s
				return p
			},
			Fields:   []string{"status", "month", "department"},
			Workflow: workflow,
		},
		Normalize: models.PayrollSlip.Recalculate,
		Columns: []Column[models.PayrollSlip]{
			{Header: "ID", Value: func(p models.PayrollSlip) string { return p.ID }},
			{Header: "Employee", Value: func(p models.PayrollSlip) string { return p.Employee }},
			{Header: "Department", Value: func(p models.PayrollSlip) string { return p.Department }},
			{Header: "Month", Value: func(p models.PayrollSlip) string { return p.Month }},
			{Header: "Basic", Value: func(p models.PayrollSlip) string { return money(p.Basic) }},
			{Header: "Allowances", Value: func(p models.PayrollSlip) string { return money(p.Allowances) }},
			{Header: "Deductions", Value: func(p models.PayrollSlip) string { return money(p.Deductions) }},
			{Header: "Net Pay", Value: func(p models.PayrollSlip) string { return money(p.NetPay) }},
			{Header: "Status", Value: func(p models.PayrollSlip) string { return string(p.Status) }},
		},
	}
}

// AttendanceDefinition describes daily attendance marks. Any mark may be
// corrected to any other.
func AttendanceDefinition(pageSize int) ResourceDefinition[models.AttendanceRecord, models.AttendanceStatus] {
	workflow := listview.CompleteWorkflow(
		models.AttendanceStatusPresent, models.AttendanceStatusAbsent, models.AttendanceStatusLate, models.AttendanceStatusExcused,
	)
	return ResourceDefinition[models.AttendanceRecord, models.AttendanceStatus]{
		Slug:       ResourceAttendance,
		Title:      "Attendance",
		PageSize:   pageSize,
		Searchable: []string{"student_name", "roll_number"},
		Schema: listview.Schema[models.AttendanceRecord, models.AttendanceStatus]{
			Project: func(a models.AttendanceRecord) listview.Record[models.AttendanceStatus] {
				return listview.Record[models.AttendanceStatus]{
					ID:         a.ID,
					Status:     a.Status,
					Searchable: []string{a.StudentName, a.RollNumber},
					Categories: map[string]string{"status": string(a.Status), "class_name": a.ClassName, "date": a.Date},
				}
			},
			WithStatus: func(a models.AttendanceRecord, s models.AttendanceStatus) models.AttendanceRecord {
				a.Status = s
				return a
			},
			Fields:   []string{"status", "class_name", "date"},
			Workflow: workflow,
		},
		Columns: []Column[models.AttendanceRecord]{
			{Header: "Date", Value: func(a models.AttendanceRecord) string { return a.Date }},
			{Header: "Class", Value: func(a models.AttendanceRecord) string { return a.ClassName }},
			{Header: "Roll No", Value: func(a models.AttendanceRecord) string { return a.RollNumber }},
			{Header: "Student", Value: func(a models.AttendanceRecord) string { return a.StudentName }},
			{Header: "Status", Value: func(a models.AttendanceRecord) string { return string(a.Status) }},
		},
	}
}

// UserAccountDefinition describes dashboard user accounts.
func UserAccountDefinition(pageSize int) ResourceDefinition[models.UserAccount, models.AccountStatus] {
	workflow := listview.NewWorkflow(
		[]models.AccountStatus{models.AccountStatusActive, models.AccountStatusInactive, models.AccountStatusSuspended},
		map[models.AccountStatus][]models.AccountStatus{
			models.AccountStatusActive:    {models.AccountStatusInactive, models.AccountStatusSuspended},
			models.AccountStatusInactive:  {models.AccountStatusActive},
			models.AccountStatusSuspended: {models.AccountStatusActive},
		},
	)
	return ResourceDefinition[models.UserAccount, models.AccountStatus]{
		Slug:       ResourceUsers,
		Title:      "Users",
		PageSize:   pageSize,
		Searchable: []string{"name", "email"},
		Schema: listview.Schema[models.UserAccount, models.AccountStatus]{
			Project: func(u models.UserAccount) listview.Record[models.AccountStatus] {
				return listview.Record[models.AccountStatus]{
					ID:         u.ID,
					Status:     u.Status,
					Searchable: []string{u.Name, u.Email},
					Categories: map[string]string{"status": string(u.Status), "role": string(u.Role), "department": u.Department},
				}
			},
			WithStatus: func(u models.UserAccount, s models.AccountStatus) models.UserAccount {
				u.Status = s
				return u
			},
			Fields:   []string{"status", "role", "department"},
			Workflow: workflow,
		},
		Columns: []Column[models.UserAccount]{
			{Header: "ID", Value: func(u models.UserAccount) string { return u.ID }},
			{Header: "Name", Value: func(u models.UserAccount) string { return u.Name }},
			{Header: "Email", Value: func(u models.UserAccount) string { return u.Email }},
			{Header: "Role", Value: func(u models.UserAccount) string { return string(u.Role) }},
			{Header: "Department", Value: func(u models.UserAccount) string { return u.Department }},
			{Header: "Status", Value: func(u models.UserAccount) string { return string(u.Status) }},
		},
	}
}
