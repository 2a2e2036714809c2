package form_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardstore/console/internal/form"
)

func TestSubmitRunsFunction(t *testing.T) {
	l := form.NewLatch()

	ran := false
	err := l.Submit("add-product", func() error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestDuplicateSubmissionRejected(t *testing.T) {
	l := form.NewLatch()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- l.Submit("add-product", func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	// Second submission while the first is in flight.
	err := l.Submit("add-product", func() error { return nil })
	assert.ErrorIs(t, err, form.ErrInFlight)

	// A different form is unaffected.
	require.NoError(t, l.Submit("add-user", func() error { return nil }))

	close(release)
	require.NoError(t, <-done)
}

func TestLatchReleasedOnError(t *testing.T) {
	l := form.NewLatch()

	boom := errors.New("upstream rejected it")
	err := l.Submit("add-user", func() error { return boom })
	assert.ErrorIs(t, err, boom)

	// Re-enabled after failure: the next submission goes through.
	require.NoError(t, l.Submit("add-user", func() error { return nil }))
	assert.False(t, l.InFlight("add-user"))
}

func TestLatchReleasedOnPanic(t *testing.T) {
	l := form.NewLatch()

	assert.Panics(t, func() {
		l.Submit("add-user", func() error { panic("handler bug") }) //nolint:errcheck
	})

	require.NoError(t, l.Submit("add-user", func() error { return nil }))
}

func TestConcurrentDistinctForms(t *testing.T) {
	l := form.NewLatch()

	var wg sync.WaitGroup
	for _, id := range []string{"a", "b", "c", "d"} {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Submit(id, func() error { return nil })
		}()
	}
	wg.Wait()
}
