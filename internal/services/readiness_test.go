package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReadiness_PendingThenReady(t *testing.T) {
	r := NewReadiness()

	assert.False(t, r.Ready())
	assert.NoError(t, r.Err())

	r.Resolve(nil)

	assert.True(t, r.Ready())
	assert.NoError(t, r.Wait(context.Background()))
}

func TestReadiness_FailureIsFinal(t *testing.T) {
	r := NewReadiness()
	initErr := errors.New("invalid API key")

	r.Resolve(initErr)
	r.Resolve(nil)

	assert.False(t, r.Ready())
	assert.ErrorIs(t, r.Err(), initErr)
	assert.ErrorIs(t, r.Wait(context.Background()), initErr)
}

func TestReadiness_WaitReleasesAllWaiters(t *testing.T) {
	r := NewReadiness()

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- r.Wait(context.Background())
		}()
	}

	time.Sleep(10 * time.Millisecond)
	r.Resolve(nil)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestReadiness_WaitHonorsContext(t *testing.T) {
	r := NewReadiness()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, r.Wait(ctx), context.DeadlineExceeded)
	assert.False(t, r.Ready())
}
