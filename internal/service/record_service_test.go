package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-dashboard-api/internal/dto"
	"github.com/noah-isme/sma-dashboard-api/internal/models"
	"github.com/noah-isme/sma-dashboard-api/internal/repository"
	"github.com/noah-isme/sma-dashboard-api/internal/seed"
	appErrors "github.com/noah-isme/sma-dashboard-api/pkg/errors"
)

type seededStore struct {
	records *repository.MemoryRecordRepository
	audit   *repository.MemoryAuditRepository
}

func newSeededStore(t *testing.T, resources ...string) seededStore {
	t.Helper()
	db := repository.OpenMemoryDB()
	store := seededStore{
		records: repository.NewMemoryRecordRepository(db),
		audit:   repository.NewMemoryAuditRepository(db),
	}
	now := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	for _, resource := range resources {
		rows, err := seed.Rows(resource, now)
		require.NoError(t, err)
		require.NoError(t, store.records.Upsert(context.Background(), rows))
	}
	return store
}

type conflictingStore struct {
	*repository.MemoryRecordRepository
}

func (s conflictingStore) UpdateStatus(context.Context, repository.UpdateStatusParams) error {
	return sql.ErrNoRows
}

type failingAudit struct{}

func (failingAudit) Create(context.Context, *models.AuditLog) error {
	return errors.New("audit unavailable")
}

func (failingAudit) ListByRecord(context.Context, string, string) ([]models.AuditLog, error) {
	return nil, nil
}

func requireAppError(t *testing.T, err error, code string, status int) {
	t.Helper()
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, code, appErr.Code)
	require.Equal(t, status, appErr.Status)
}

func TestRecordServiceListPaginates(t *testing.T) {
	store := newSeededStore(t, ResourceLeaveRequests)
	svc := NewRecordService(LeaveRequestDefinition(5), store.records, store.audit, nil)

	page, hit, err := svc.List(context.Background(), dto.ListQuery{Page: 3})
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, models.Pagination{Page: 3, PageSize: 5, TotalCount: 12, TotalPages: 3}, page.Pagination)
	require.Len(t, page.Items, 2)
	require.Equal(t, "LR-011", page.Items[0].Record.(models.LeaveRequest).ID)
}

func TestRecordServiceListClampsPage(t *testing.T) {
	store := newSeededStore(t, ResourceLeaveRequests)
	svc := NewRecordService(LeaveRequestDefinition(5), store.records, store.audit, nil)

	page, _, err := svc.List(context.Background(), dto.ListQuery{Page: 99})
	require.NoError(t, err)
	require.Equal(t, 3, page.Pagination.Page)
	require.Equal(t, 3, page.Query.Page)
}

func TestRecordServiceListSearchAndFilter(t *testing.T) {
	store := newSeededStore(t, ResourceLeaveRequests)
	svc := NewRecordService(LeaveRequestDefinition(5), store.records, store.audit, nil)
	ctx := context.Background()

	page, _, err := svc.List(ctx, dto.ListQuery{Filters: map[string]string{"status": "Pending"}, Page: 1})
	require.NoError(t, err)
	require.Equal(t, 6, page.Pagination.TotalCount)
	for _, item := range page.Items {
		require.Equal(t, models.LeaveStatusPending, item.Record.(models.LeaveRequest).Status)
		require.ElementsMatch(t, []string{"Approved", "Rejected", "Cancelled"}, item.Actions)
	}

	page, _, err = svc.List(ctx, dto.ListQuery{Search: "anjali", Filters: map[string]string{"status": "all"}, Page: 1})
	require.NoError(t, err)
	require.Equal(t, 1, page.Pagination.TotalCount)
	require.Equal(t, "LR-001", page.Items[0].Record.(models.LeaveRequest).ID)

	page, _, err = svc.List(ctx, dto.ListQuery{Search: "anjali", Filters: map[string]string{"status": "Approved"}, Page: 1})
	require.NoError(t, err)
	require.Equal(t, 0, page.Pagination.TotalCount)
	require.Equal(t, 1, page.Pagination.TotalPages)
	require.Empty(t, page.Items)
}

func TestRecordServiceListUnknownField(t *testing.T) {
	store := newSeededStore(t, ResourceLeaveRequests)
	svc := NewRecordService(LeaveRequestDefinition(5), store.records, store.audit, nil)

	_, _, err := svc.List(context.Background(), dto.ListQuery{Filters: map[string]string{"colour": "red"}})
	requireAppError(t, err, appErrors.ErrInvalidField.Code, http.StatusBadRequest)
}

func TestRecordServiceListUsesCache(t *testing.T) {
	store := newSeededStore(t, ResourceLeaveRequests)
	cache := NewCacheService(repository.NewMemoryCache(repository.DefaultMemoryCacheSize, time.Minute), nil, time.Minute, nil, true)
	svc := NewRecordService(LeaveRequestDefinition(5), store.records, store.audit, nil, WithListCache(cache, time.Minute))
	ctx := context.Background()
	query := dto.ListQuery{Filters: map[string]string{"status": "Pending"}, Page: 1}

	_, hit, err := svc.List(ctx, query)
	require.NoError(t, err)
	require.False(t, hit)

	page, hit, err := svc.List(ctx, query)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, 6, page.Pagination.TotalCount)
	require.Equal(t, "LR-001", page.Items[0].Record.(models.LeaveRequest).ID)

	_, err = svc.Transition(ctx, "LR-001", dto.TransitionRequest{Status: "Approved"}, dto.Actor{ID: "hr-1"})
	require.NoError(t, err)

	page, hit, err = svc.List(ctx, query)
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, 5, page.Pagination.TotalCount)
}

func TestRecordServiceTransitionPersistsAndAudits(t *testing.T) {
	store := newSeededStore(t, ResourceLeaveRequests)
	metrics := NewMetricsService()
	fixed := time.Date(2025, 2, 10, 9, 30, 0, 0, time.UTC)
	svc := NewRecordService(LeaveRequestDefinition(5), store.records, store.audit, nil,
		WithRecordMetrics(metrics),
		WithRecordClock(func() time.Time { return fixed }),
	)
	ctx := context.Background()

	item, err := svc.Transition(ctx, "LR-001", dto.TransitionRequest{Status: "Approved", Note: "enjoy"}, dto.Actor{ID: "hr-1", Role: "hr_admin"})
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusApproved, item.Record.(models.LeaveRequest).Status)
	require.Equal(t, []string{"Cancelled"}, item.Actions)

	got, err := svc.Get(ctx, "LR-001")
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusApproved, got.Record.(models.LeaveRequest).Status)

	history, err := svc.History(ctx, "LR-001")
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, "Pending", history[0].FromStatus)
	require.Equal(t, "Approved", history[0].ToStatus)
	require.Equal(t, fixed, history[0].CreatedAt)
	require.Equal(t, "enjoy", *history[0].Note)
	require.Equal(t, uint64(1), metrics.Snapshot().Transitions)
}

func TestRecordServiceTransitionToSameStatusIsNoop(t *testing.T) {
	store := newSeededStore(t, ResourceLeaveRequests)
	svc := NewRecordService(LeaveRequestDefinition(5), store.records, store.audit, nil)
	ctx := context.Background()

	item, err := svc.Transition(ctx, "LR-003", dto.TransitionRequest{Status: "Rejected"}, dto.Actor{})
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusRejected, item.Record.(models.LeaveRequest).Status)
	require.Empty(t, item.Actions)

	history, err := svc.History(ctx, "LR-003")
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestRecordServiceTransitionErrors(t *testing.T) {
	store := newSeededStore(t, ResourceLeaveRequests)
	svc := NewRecordService(LeaveRequestDefinition(5), store.records, store.audit, nil)
	ctx := context.Background()

	_, err := svc.Transition(ctx, "LR-001", dto.TransitionRequest{}, dto.Actor{})
	requireAppError(t, err, appErrors.ErrValidation.Code, http.StatusBadRequest)

	_, err = svc.Transition(ctx, "LR-404", dto.TransitionRequest{Status: "Approved"}, dto.Actor{})
	requireAppError(t, err, appErrors.ErrNotFound.Code, http.StatusNotFound)

	_, err = svc.Transition(ctx, "LR-001", dto.TransitionRequest{Status: "Escalated"}, dto.Actor{})
	requireAppError(t, err, appErrors.ErrInvalidStatus.Code, http.StatusBadRequest)

	_, err = svc.Transition(ctx, "LR-002", dto.TransitionRequest{Status: "Pending"}, dto.Actor{})
	requireAppError(t, err, appErrors.ErrInvalidTransition.Code, http.StatusConflict)

	got, err := svc.Get(ctx, "LR-002")
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusApproved, got.Record.(models.LeaveRequest).Status)
}

func TestRecordServiceTransitionConflict(t *testing.T) {
	store := newSeededStore(t, ResourceLeaveRequests)
	svc := NewRecordService(LeaveRequestDefinition(5), conflictingStore{store.records}, store.audit, nil)

	_, err := svc.Transition(context.Background(), "LR-001", dto.TransitionRequest{Status: "Approved"}, dto.Actor{})
	requireAppError(t, err, appErrors.ErrConflict.Code, http.StatusConflict)
}

func TestRecordServiceTransitionSurvivesAuditFailure(t *testing.T) {
	store := newSeededStore(t, ResourceLeaveRequests)
	svc := NewRecordService(LeaveRequestDefinition(5), store.records, failingAudit{}, nil)

	item, err := svc.Transition(context.Background(), "LR-001", dto.TransitionRequest{Status: "Rejected"}, dto.Actor{})
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusRejected, item.Record.(models.LeaveRequest).Status)
}

func TestRecordServiceDatasetIgnoresPagination(t *testing.T) {
	store := newSeededStore(t, ResourceLeaveRequests)
	svc := NewRecordService(LeaveRequestDefinition(5), store.records, store.audit, nil)

	dataset, title, err := svc.Dataset(context.Background(), dto.ListQuery{Filters: map[string]string{"status": "Pending"}})
	require.NoError(t, err)
	require.Equal(t, "Leave Requests", title)
	require.Len(t, dataset.Rows, 6)
	require.Equal(t, "ID", dataset.Headers[0])
	require.Equal(t, "LR-001", dataset.Rows[0]["ID"])
	require.Equal(t, "Anjali Verma", dataset.Rows[0]["Employee"])
}

func TestRecordServicePayrollNetPayIsDerived(t *testing.T) {
	store := newSeededStore(t, ResourcePayroll)
	svc := NewRecordService(PayrollDefinition(5), store.records, store.audit, nil)

	item, err := svc.Get(context.Background(), "PAY-001")
	require.NoError(t, err)
	slip := item.Record.(models.PayrollSlip)
	require.InDelta(t, 52000+9360-6240, slip.NetPay, 0.001)
}

func TestRecordServiceDescriptor(t *testing.T) {
	store := newSeededStore(t)
	svc := NewRecordService(LeaveRequestDefinition(0), store.records, store.audit, nil)

	desc := svc.Descriptor()
	require.Equal(t, ResourceLeaveRequests, desc.Slug)
	require.Equal(t, 10, desc.PageSize)
	require.Equal(t, []string{"Pending", "Approved", "Rejected", "Cancelled"}, desc.Statuses)
	require.Contains(t, desc.Fields, "status")
	require.Equal(t, []string{"Cancelled"}, desc.Transitions["Approved"])
}
