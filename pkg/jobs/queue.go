package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// ErrQueueClosed is returned by Enqueue before Start or after Stop.
var ErrQueueClosed = errors.New("queue not running")

// Job is a unit of background work. Attempt counts failed runs so far.
type Job struct {
	ID       string
	Type     string
	Payload  interface{}
	Attempt  int
	Enqueued time.Time
}

// Handler processes a job.
type Handler func(context.Context, Job) error

// QueueConfig configures the worker pool. Failed jobs are retried with
// exponential backoff starting at RetryDelay and capped at MaxRetryDelay.
type QueueConfig struct {
	Workers       int
	BufferSize    int
	MaxRetries    int
	RetryDelay    time.Duration
	MaxRetryDelay time.Duration
	Logger        *zap.Logger
	// OnExhausted runs once a job has failed MaxRetries+1 times.
	OnExhausted func(Job, error)
}

// Stats is a point-in-time view of queue activity.
type Stats struct {
	Pending   int
	Succeeded uint64
	Retried   uint64
	Exhausted uint64
}

// Queue is an in-memory job dispatcher backed by a fixed goroutine pool.
type Queue struct {
	name    string
	handler Handler
	cfg     QueueConfig

	jobs    chan Job
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool

	succeeded atomic.Uint64
	retried   atomic.Uint64
	exhausted atomic.Uint64
}

// NewQueue builds a queue that dispatches to handler.
func NewQueue(name string, handler Handler, cfg QueueConfig) *Queue {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = cfg.Workers * 4
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.MaxRetryDelay < cfg.RetryDelay {
		cfg.MaxRetryDelay = 30 * cfg.RetryDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Queue{
		name:    name,
		handler: handler,
		cfg:     cfg,
		jobs:    make(chan Job, cfg.BufferSize),
	}
}

// Start launches the workers. Subsequent calls are no-ops.
func (q *Queue) Start(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		return
	}
	q.ctx, q.cancel = context.WithCancel(ctx)
	for i := 0; i < q.cfg.Workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	q.started = true
	q.cfg.Logger.Info("queue started", zap.String("queue", q.name), zap.Int("workers", q.cfg.Workers))
}

// Stop cancels the workers and waits for in-flight jobs to return.
// Jobs still buffered are dropped; callers recover them from durable state.
func (q *Queue) Stop() {
	q.mu.Lock()
	if !q.started {
		q.mu.Unlock()
		return
	}
	q.cancel()
	q.started = false
	q.mu.Unlock()
	q.wg.Wait()
	q.cfg.Logger.Info("queue stopped", zap.String("queue", q.name), zap.Int("dropped", len(q.jobs)))
}

// Enqueue blocks until the job is buffered or the queue stops.
func (q *Queue) Enqueue(job Job) error {
	q.mu.Lock()
	ctx, started := q.ctx, q.started
	q.mu.Unlock()
	if !started {
		return fmt.Errorf("%w: %s", ErrQueueClosed, q.name)
	}
	if job.Enqueued.IsZero() {
		job.Enqueued = time.Now().UTC()
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %s", ErrQueueClosed, q.name)
	case q.jobs <- job:
		return nil
	}
}

// Stats reports current counters.
func (q *Queue) Stats() Stats {
	return Stats{
		Pending:   len(q.jobs),
		Succeeded: q.succeeded.Load(),
		Retried:   q.retried.Load(),
		Exhausted: q.exhausted.Load(),
	}
}

// Backoff returns the delay before retrying a job that has failed attempt times.
func (q *Queue) Backoff(attempt int) time.Duration {
	delay := q.cfg.RetryDelay
	for i := 1; i < attempt && delay < q.cfg.MaxRetryDelay; i++ {
		delay *= 2
	}
	if delay > q.cfg.MaxRetryDelay {
		delay = q.cfg.MaxRetryDelay
	}
	return delay
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for {
		select {
		case <-q.ctx.Done():
			return
		case job := <-q.jobs:
			if err := q.handler(q.ctx, job); err != nil {
				q.retry(job, err)
				continue
			}
			q.succeeded.Add(1)
		}
	}
}

func (q *Queue) retry(job Job, err error) {
	job.Attempt++
	log := q.cfg.Logger.With(
		zap.String("queue", q.name),
		zap.String("job_id", job.ID),
		zap.String("type", job.Type),
		zap.Int("attempt", job.Attempt),
		zap.Error(err),
	)
	if job.Attempt > q.cfg.MaxRetries {
		q.exhausted.Add(1)
		log.Error("job exceeded retries")
		if q.cfg.OnExhausted != nil {
			q.cfg.OnExhausted(job, err)
		}
		return
	}
	q.retried.Add(1)
	delay := q.Backoff(job.Attempt)
	log.Warn("job failed, retrying", zap.Duration("delay", delay))

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-q.ctx.Done():
		case <-timer.C:
			if err := q.Enqueue(job); err != nil {
				log.Error("failed to requeue job", zap.NamedError("requeue_error", err))
			}
		}
	}()
}
