package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleForge_Go/internal/testing/leaktest"
)

type countingJob struct {
	executed atomic.Int32
	err      error
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) Process(context.Context) error {
	j.executed.Add(1)
	return j.err
}

type blockingJob struct {
	started chan struct{}
}

func (j *blockingJob) Name() string { return "blocking" }

func (j *blockingJob) Process(ctx context.Context) error {
	close(j.started)
	<-ctx.Done()
	return ctx.Err()
}

type panicJob struct{}

func (panicJob) Name() string                  { return "panic" }
func (panicJob) Process(context.Context) error { panic("boom") }

func TestPool_ProcessesJobs(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(2, 10)
		pool.Start()
		defer pool.Stop()

		job := &countingJob{}
		require.True(t, pool.Enqueue(job))
		require.True(t, pool.Enqueue(job))

		assert.Eventually(t, func() bool { return job.executed.Load() == 2 }, time.Second, 5*time.Millisecond)
	})
}

func TestPool_SurvivesFailuresAndPanics(t *testing.T) {
	pool := NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	failing := &countingJob{err: errors.New("nope")}
	ok := &countingJob{}
	pool.Enqueue(failing)
	pool.Enqueue(panicJob{})
	pool.Enqueue(ok)

	assert.Eventually(t, func() bool { return ok.executed.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), failing.executed.Load())
}

func TestPool_EnqueueDropsWhenFull(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	defer pool.Stop()

	blocker := &blockingJob{started: make(chan struct{})}
	require.True(t, pool.Enqueue(blocker))
	<-blocker.started

	assert.True(t, pool.Enqueue(&countingJob{}))
	assert.False(t, pool.Enqueue(&countingJob{}))
}

func TestPool_StopCancelsInFlightJobs(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(1, 1)
		pool.Start()

		blocker := &blockingJob{started: make(chan struct{})}
		pool.Enqueue(blocker)
		<-blocker.started

		pool.Stop()
		pool.Stop()
		assert.False(t, pool.Enqueue(&countingJob{}))
	})
}

type MockBonusGenerator struct {
	mock.Mock
}

func (m *MockBonusGenerator) GenerateNewBonus(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func TestBonusGenerationJob_Process(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		gen := new(MockBonusGenerator)
		gen.On("GenerateNewBonus", mock.Anything).Return(true, nil).Once()

		err := NewBonusGenerationJob(gen).Process(context.Background())

		assert.NoError(t, err)
		gen.AssertExpectations(t)
	})

	t.Run("pool full is not an error", func(t *testing.T) {
		gen := new(MockBonusGenerator)
		gen.On("GenerateNewBonus", mock.Anything).Return(false, nil).Once()

		assert.NoError(t, NewBonusGenerationJob(gen).Process(context.Background()))
	})

	t.Run("propagates failure", func(t *testing.T) {
		gen := new(MockBonusGenerator)
		gen.On("GenerateNewBonus", mock.Anything).Return(false, errors.New("db down")).Once()

		assert.EqualError(t, NewBonusGenerationJob(gen).Process(context.Background()), "db down")
	})

	assert.Equal(t, JobNameBonusGeneration, NewBonusGenerationJob(nil).Name())
}
