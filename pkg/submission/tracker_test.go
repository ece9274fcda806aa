package submission_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formz/pkg/submission"
)

func TestTracker_Workflow(t *testing.T) {
	t.Parallel()

	var changes [][2]submission.Status
	tr := submission.NewTracker(submission.OnChange(func(from, to submission.Status) {
		changes = append(changes, [2]submission.Status{from, to})
	}))
	assert.Equal(t, submission.Initial, tr.Current())

	s, err := tr.Fire(submission.Submit)
	require.NoError(t, err)
	assert.Equal(t, submission.InProgress, s)

	s, err = tr.Fire(submission.Fail)
	require.NoError(t, err)
	assert.Equal(t, submission.Failure, s)

	// retry after failure
	_, err = tr.Fire(submission.Submit)
	require.NoError(t, err)
	s, err = tr.Fire(submission.Succeed)
	require.NoError(t, err)
	assert.Equal(t, submission.Success, s)

	assert.Equal(t, [][2]submission.Status{
		{submission.Initial, submission.InProgress},
		{submission.InProgress, submission.Failure},
		{submission.Failure, submission.InProgress},
		{submission.InProgress, submission.Success},
	}, changes)
}

func TestTracker_RejectsDuplicateSubmit(t *testing.T) {
	t.Parallel()

	for _, from := range []submission.Status{submission.InProgress, submission.Success} {
		tr := submission.NewTracker(submission.WithStatus(from))
		assert.False(t, tr.CanFire(submission.Submit))

		s, err := tr.Fire(submission.Submit)
		require.Error(t, err)
		assert.True(t, submission.IsTransitionRejected(err))
		assert.Equal(t, from, s)
		assert.Equal(t, from, tr.Current())
	}
}

func TestTracker_Cancel(t *testing.T) {
	t.Parallel()

	tr := submission.NewTracker()
	_, err := tr.Fire(submission.Cancel)
	assert.True(t, submission.IsTransitionRejected(err))

	_, err = tr.Fire(submission.Submit)
	require.NoError(t, err)
	s, err := tr.Fire(submission.Cancel)
	require.NoError(t, err)
	assert.True(t, s.IsCanceled())
	assert.True(t, tr.CanFire(submission.Submit))
}

func TestTracker_Reset(t *testing.T) {
	t.Parallel()

	for _, from := range submission.Statuses() {
		tr := submission.NewTracker(submission.WithStatus(from))
		s, err := tr.Fire(submission.Reset)
		if from.IsInProgress() {
			require.Error(t, err)
			assert.True(t, submission.IsTransitionRejected(err), "reset must not abandon a running submission")
			assert.Equal(t, submission.InProgress, s)
			assert.Equal(t, submission.InProgress, tr.Current())
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, submission.Initial, s)
	}
}

func TestTracker_UnknownEvent(t *testing.T) {
	t.Parallel()

	tr := submission.NewTracker()
	_, err := tr.Fire(submission.Event("approve"))
	require.ErrorIs(t, err, submission.ErrUnknownEvent)
	assert.False(t, tr.CanFire(submission.Event("approve")))
	assert.Equal(t, submission.Initial, tr.Current())
}

func TestTracker_WithUnknownStatusIgnored(t *testing.T) {
	t.Parallel()

	tr := submission.NewTracker(submission.WithStatus(submission.Status(99)))
	assert.Equal(t, submission.Initial, tr.Current())
}

func TestTracker_ConcurrentSubmit(t *testing.T) {
	t.Parallel()

	tr := submission.NewTracker()

	const workers = 32
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			if _, err := tr.Fire(submission.Submit); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted, "only one submit may win")
	assert.Equal(t, submission.InProgress, tr.Current())
}
