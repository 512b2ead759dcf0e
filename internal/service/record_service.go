package service

import (
	"context"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-dashboard-api/internal/dto"
	"github.com/noah-isme/sma-dashboard-api/internal/models"
	"github.com/noah-isme/sma-dashboard-api/internal/repository"
	appErrors "github.com/noah-isme/sma-dashboard-api/pkg/errors"
	"github.com/noah-isme/sma-dashboard-api/pkg/export"
	"github.com/noah-isme/sma-dashboard-api/pkg/listview"
)

type recordStore interface {
	List(ctx context.Context, resource string) ([]models.RecordRow, error)
	FindByID(ctx context.Context, resource, id string) (*models.RecordRow, error)
	UpdateStatus(ctx context.Context, params repository.UpdateStatusParams) error
}

type auditStore interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	ListByRecord(ctx context.Context, resource, id string) ([]models.AuditLog, error)
}

type listCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, pattern string) error
}

// Resource is the type-erased view of a RecordService used by handlers and exports.
type Resource interface {
	Descriptor() dto.ResourceDescriptor
	List(ctx context.Context, query dto.ListQuery) (*dto.ListPage, bool, error)
	Get(ctx context.Context, id string) (*dto.ListItem, error)
	Transition(ctx context.Context, id string, req dto.TransitionRequest, actor dto.Actor) (*dto.ListItem, error)
	History(ctx context.Context, id string) ([]models.AuditLog, error)
	Dataset(ctx context.Context, query dto.ListQuery) (export.Dataset, string, error)
}

// Column renders one export column of a record.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// ResourceDefinition binds a model type to its list behaviour.
type ResourceDefinition[T any, S ~string] struct {
	Slug       string
	Title      string
	PageSize   int
	Searchable []string
	Schema     listview.Schema[T, S]
	Columns    []Column[T]
	// Normalize derives computed fields after a record is read from the store.
	Normalize func(T) T
}

// RecordServiceOption configures a RecordService.
type RecordServiceOption func(*recordServiceOptions)

type recordServiceOptions struct {
	cache     listCache
	cacheTTL  time.Duration
	metrics   *MetricsService
	validator *validator.Validate
	clock     func() time.Time
}

// WithListCache enables caching of list pages.
func WithListCache(cache listCache, ttl time.Duration) RecordServiceOption {
	return func(o *recordServiceOptions) {
		o.cache = cache
		o.cacheTTL = ttl
	}
}

// WithRecordMetrics attaches Prometheus instrumentation.
func WithRecordMetrics(metrics *MetricsService) RecordServiceOption {
	return func(o *recordServiceOptions) {
		o.metrics = metrics
	}
}

// WithRecordValidator overrides the request validator.
func WithRecordValidator(validate *validator.Validate) RecordServiceOption {
	return func(o *recordServiceOptions) {
		if validate != nil {
			o.validator = validate
		}
	}
}

// WithRecordClock overrides the time source used for audit timestamps.
func WithRecordClock(clock func() time.Time) RecordServiceOption {
	return func(o *recordServiceOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// RecordService serves search, filter, pagination and status transitions for one resource.
type RecordService[T any, S ~string] struct {
	def     ResourceDefinition[T, S]
	store   recordStore
	audit   auditStore
	logger  *zap.Logger
	options recordServiceOptions
}

// NewRecordService constructs the service for one resource definition.
func NewRecordService[T any, S ~string](def ResourceDefinition[T, S], store recordStore, audit auditStore, logger *zap.Logger, opts ...RecordServiceOption) *RecordService[T, S] {
	if logger == nil {
		logger = zap.NewNop()
	}
	if def.PageSize <= 0 {
		def.PageSize = listview.DefaultPageSize
	}
	options := recordServiceOptions{
		validator: validator.New(),
		clock:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	return &RecordService[T, S]{
		def:     def,
		store:   store,
		audit:   audit,
		logger:  logger.With(zap.String("resource", def.Slug)),
		options: options,
	}
}

// Descriptor documents the resource for clients.
func (s *RecordService[T, S]) Descriptor() dto.ResourceDescriptor {
	desc := dto.ResourceDescriptor{
		Slug:        s.def.Slug,
		Title:       s.def.Title,
		PageSize:    s.def.PageSize,
		Searchable:  append([]string(nil), s.def.Searchable...),
		Fields:      append([]string(nil), s.def.Schema.Fields...),
		Statuses:    []string{},
		Transitions: map[string][]string{},
	}
	if wf := s.def.Schema.Workflow; wf != nil {
		for _, status := range wf.States() {
			desc.Statuses = append(desc.Statuses, string(status))
		}
		desc.Transitions = wf.Table()
	}
	return desc
}

type cachedPage[T any] struct {
	Items      []T               `json:"items"`
	Actions    [][]string        `json:"actions"`
	Pagination models.Pagination `json:"pagination"`
	Query      dto.ListQuery     `json:"query"`
}

// List returns the visible page for the query. The boolean reports a cache hit.
func (s *RecordService[T, S]) List(ctx context.Context, query dto.ListQuery) (*dto.ListPage, bool, error) {
	key := s.cacheKey(query)
	if s.options.cache != nil {
		var cached cachedPage[T]
		hit, err := s.options.cache.Get(ctx, key, &cached)
		if err != nil {
			s.logger.Warn("list cache lookup failed", zap.String("key", key), zap.Error(err))
		}
		if hit {
			return cached.toDTO(), true, nil
		}
	}

	view, err := s.view(ctx)
	if err != nil {
		return nil, false, err
	}
	if err := view.Apply(toViewQuery(query)); err != nil {
		return nil, false, translateViewError(err)
	}

	page := view.VisiblePage()
	applied := view.Query()
	result := cachedPage[T]{
		Items:   page.Items,
		Actions: make([][]string, len(page.Items)),
		Pagination: models.Pagination{
			Page:       page.CurrentPage,
			PageSize:   page.PageSize,
			TotalCount: page.TotalCount,
			TotalPages: page.TotalPages,
		},
		Query: dto.ListQuery{Search: applied.Search, Filters: applied.Filters, Page: applied.Page},
	}
	for i, item := range page.Items {
		result.Actions[i] = statusStrings(s.def.Schema.Actions(item))
	}

	if s.options.cache != nil {
		if err := s.options.cache.Set(ctx, key, result, s.options.cacheTTL); err != nil {
			s.logger.Warn("list cache store failed", zap.String("key", key), zap.Error(err))
		}
	}
	return result.toDTO(), false, nil
}

// Get returns a single record with its available actions.
func (s *RecordService[T, S]) Get(ctx context.Context, id string) (*dto.ListItem, error) {
	start := time.Now()
	row, err := s.store.FindByID(ctx, s.def.Slug, id)
	s.options.metrics.ObserveStoreOperation("find", time.Since(start))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "record not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load record")
	}
	record, err := s.decode(*row)
	if err != nil {
		return nil, err
	}
	return s.item(record), nil
}

// Transition moves a record to req.Status when the workflow allows it. Moving
// a record to the status it already has succeeds without writing anything.
func (s *RecordService[T, S]) Transition(ctx context.Context, id string, req dto.TransitionRequest, actor dto.Actor) (*dto.ListItem, error) {
	if err := s.options.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid transition payload")
	}

	view, err := s.view(ctx)
	if err != nil {
		return nil, err
	}
	current, err := view.Get(id)
	if err != nil {
		return nil, translateViewError(err)
	}
	next := S(req.Status)
	updated, err := view.Transition(id, next)
	if err != nil {
		return nil, translateViewError(err)
	}

	from := s.def.Schema.Project(current).Status
	if from == next {
		return s.item(updated), nil
	}

	payload, err := json.Marshal(updated)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode record")
	}
	now := s.options.clock()
	start := time.Now()
	err = s.store.UpdateStatus(ctx, repository.UpdateStatusParams{
		Resource:  s.def.Slug,
		ID:        id,
		From:      string(from),
		To:        string(next),
		Payload:   payload,
		UpdatedAt: now,
	})
	s.options.metrics.ObserveStoreOperation("update_status", time.Since(start))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "record was modified by another request")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update record status")
	}

	s.recordAudit(ctx, id, string(from), string(next), req.Note, actor, now)
	if s.options.cache != nil {
		if err := s.options.cache.Invalidate(ctx, s.cachePattern()); err != nil {
			s.logger.Warn("list cache invalidation failed", zap.Error(err))
		}
	}
	s.options.metrics.RecordTransition(s.def.Slug, string(from), string(next))
	s.logger.Info("record status changed",
		zap.String("id", id),
		zap.String("from", string(from)),
		zap.String("to", string(next)),
		zap.String("actor_id", actor.ID),
	)
	return s.item(updated), nil
}

// History lists the status changes of a record, oldest first.
func (s *RecordService[T, S]) History(ctx context.Context, id string) ([]models.AuditLog, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if s.audit == nil {
		return []models.AuditLog{}, nil
	}
	entries, err := s.audit.ListByRecord(ctx, s.def.Slug, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load record history")
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].CreatedAt.Before(entries[j].CreatedAt) })
	return entries, nil
}

// Dataset renders every record matching the query (ignoring pagination) as export rows.
func (s *RecordService[T, S]) Dataset(ctx context.Context, query dto.ListQuery) (export.Dataset, string, error) {
	view, err := s.view(ctx)
	if err != nil {
		return export.Dataset{}, "", err
	}
	if err := view.Apply(toViewQuery(query)); err != nil {
		return export.Dataset{}, "", translateViewError(err)
	}
	headers := make([]string, len(s.def.Columns))
	for i, col := range s.def.Columns {
		headers[i] = col.Header
	}
	matches := view.Matches()
	rows := make([]map[string]string, 0, len(matches))
	for _, record := range matches {
		row := make(map[string]string, len(s.def.Columns))
		for _, col := range s.def.Columns {
			row[col.Header] = col.Value(record)
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: headers, Rows: rows}, s.def.Title, nil
}

func (s *RecordService[T, S]) view(ctx context.Context) (*listview.View[T, S], error) {
	start := time.Now()
	rows, err := s.store.List(ctx, s.def.Slug)
	s.options.metrics.ObserveStoreOperation("list", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list records")
	}
	records := make([]T, 0, len(rows))
	for _, row := range rows {
		record, err := s.decode(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return listview.New(records, s.def.Schema, s.def.PageSize), nil
}

func (s *RecordService[T, S]) decode(row models.RecordRow) (T, error) {
	var record T
	if err := json.Unmarshal(row.Payload, &record); err != nil {
		return record, appErrors.Wrap(fmt.Errorf("decode %s/%s: %w", row.Resource, row.ID, err), appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to decode record")
	}
	if s.def.Normalize != nil {
		record = s.def.Normalize(record)
	}
	return record, nil
}

func (s *RecordService[T, S]) item(record T) *dto.ListItem {
	return &dto.ListItem{Record: record, Actions: statusStrings(s.def.Schema.Actions(record))}
}

func (s *RecordService[T, S]) recordAudit(ctx context.Context, id, from, to, note string, actor dto.Actor, at time.Time) {
	if s.audit == nil {
		return
	}
	entry := &models.AuditLog{
		Action:     models.AuditActionStatusTransition,
		Resource:   s.def.Slug,
		ResourceID: id,
		FromStatus: from,
		ToStatus:   to,
		Note:       optionalString(note),
		ActorID:    optionalString(actor.ID),
		ActorRole:  optionalString(actor.Role),
		CreatedAt:  at,
	}
	if err := s.audit.Create(ctx, entry); err != nil {
		s.logger.Warn("failed to persist audit log", zap.String("id", id), zap.Error(err))
	}
}

func (s *RecordService[T, S]) cacheKey(query dto.ListQuery) string {
	keys := make([]string, 0, len(query.Filters))
	for field := range query.Filters {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	var builder strings.Builder
	builder.WriteString(query.Search)
	for _, field := range keys {
		builder.WriteString("\x00")
		builder.WriteString(field)
		builder.WriteString("=")
		builder.WriteString(query.Filters[field])
	}
	builder.WriteString(fmt.Sprintf("\x00page=%d", query.Page))
	sum := sha1.Sum([]byte(builder.String()))
	return fmt.Sprintf("list:%s:%s", s.def.Slug, hex.EncodeToString(sum[:]))
}

func (s *RecordService[T, S]) cachePattern() string {
	return fmt.Sprintf("list:%s:*", s.def.Slug)
}

func (p cachedPage[T]) toDTO() *dto.ListPage {
	items := make([]dto.ListItem, len(p.Items))
	for i, record := range p.Items {
		var actions []string
		if i < len(p.Actions) {
			actions = p.Actions[i]
		}
		if actions == nil {
			actions = []string{}
		}
		items[i] = dto.ListItem{Record: record, Actions: actions}
	}
	return &dto.ListPage{Items: items, Pagination: p.Pagination, Query: p.Query}
}

func toViewQuery(query dto.ListQuery) listview.Query {
	return listview.Query{Search: query.Search, Filters: query.Filters, Page: query.Page}
}

func statusStrings[S ~string](statuses []S) []string {
	out := make([]string, len(statuses))
	for i, status := range statuses {
		out[i] = string(status)
	}
	return out
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func translateViewError(err error) error {
	var (
		fieldErr      *listview.InvalidFieldError
		notFoundErr   *listview.NotFoundError
		statusErr     *listview.InvalidStatusError
		transitionErr *listview.InvalidTransitionError
	)
	switch {
	case errors.As(err, &fieldErr):
		return appErrors.Wrap(err, appErrors.ErrInvalidField.Code, appErrors.ErrInvalidField.Status, fmt.Sprintf("unknown filter field %q", fieldErr.Field))
	case errors.As(err, &notFoundErr):
		return appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "record not found")
	case errors.As(err, &statusErr):
		return appErrors.Wrap(err, appErrors.ErrInvalidStatus.Code, appErrors.ErrInvalidStatus.Status, fmt.Sprintf("unknown status %q", statusErr.Status))
	case errors.As(err, &transitionErr):
		return appErrors.Wrap(err, appErrors.ErrInvalidTransition.Code, appErrors.ErrInvalidTransition.Status,
			fmt.Sprintf("cannot move from %q to %q", transitionErr.From, transitionErr.To))
	default:
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
}
