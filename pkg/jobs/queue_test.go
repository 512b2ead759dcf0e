package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQueueProcessesJobs(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
		done = make(chan struct{}, 3)
	)
	q := NewQueue("exports", func(ctx context.Context, job Job) error {
		mu.Lock()
		seen = append(seen, job.ID)
		mu.Unlock()
		done <- struct{}{}
		return nil
	}, QueueConfig{Workers: 2})
	q.Start(context.Background())
	defer q.Stop()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, q.Enqueue(Job{ID: id}))
	}
	for i := 0; i < 3; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("job not processed")
		}
	}
	mu.Lock()
	require.ElementsMatch(t, []string{"a", "b", "c"}, seen)
	mu.Unlock()
	require.Eventually(t, func() bool { return q.Stats().Succeeded == 3 }, time.Second, 5*time.Millisecond)
}

func TestQueueRetriesUntilExhausted(t *testing.T) {
	exhausted := make(chan Job, 1)
	var attempts []int
	var mu sync.Mutex
	q := NewQueue("exports", func(ctx context.Context, job Job) error {
		mu.Lock()
		attempts = append(attempts, job.Attempt)
		mu.Unlock()
		return errors.New("boom")
	}, QueueConfig{
		MaxRetries:  2,
		RetryDelay:  time.Millisecond,
		OnExhausted: func(job Job, err error) { exhausted <- job },
	})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "job-1"}))
	select {
	case job := <-exhausted:
		require.Equal(t, 3, job.Attempt)
	case <-time.After(2 * time.Second):
		t.Fatal("job never exhausted")
	}
	mu.Lock()
	require.Equal(t, []int{0, 1, 2}, attempts)
	mu.Unlock()
	stats := q.Stats()
	require.Equal(t, uint64(2), stats.Retried)
	require.Equal(t, uint64(1), stats.Exhausted)
}

func TestQueueEnqueueRequiresStart(t *testing.T) {
	q := NewQueue("exports", func(context.Context, Job) error { return nil }, QueueConfig{})
	require.ErrorIs(t, q.Enqueue(Job{ID: "x"}), ErrQueueClosed)

	q.Start(context.Background())
	q.Stop()
	require.ErrorIs(t, q.Enqueue(Job{ID: "x"}), ErrQueueClosed)
}

func TestQueueBackoff(t *testing.T) {
	q := NewQueue("exports", nil, QueueConfig{RetryDelay: time.Second, MaxRetryDelay: 5 * time.Second})
	require.Equal(t, time.Second, q.Backoff(1))
	require.Equal(t, 2*time.Second, q.Backoff(2))
	require.Equal(t, 4*time.Second, q.Backoff(3))
	require.Equal(t, 5*time.Second, q.Backoff(4))
}
