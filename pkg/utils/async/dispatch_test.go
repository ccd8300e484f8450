package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gosonic/gosonic/pkg/utils/async"
)

func TestDispatch_RunsHandler(t *testing.T) {
	done := make(chan struct{})

	async.Dispatch(context.Background(), func(ctx context.Context) error {
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler was not executed")
	}
}

func TestDispatch_DetachedFromCallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	async.Dispatch(ctx, func(ctx context.Context) error {
		done <- ctx.Err()
		return nil
	})

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("handler context should not inherit cancellation, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("handler was not executed")
	}
}

func TestDispatch_RecoversPanic(t *testing.T) {
	done := make(chan struct{})

	async.Dispatch(context.Background(), func(ctx context.Context) error {
		defer close(done)
		panic("boom")
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler was not executed")
	}
	// Give the deferred recover a moment; the test fails by crashing the
	// process if the panic is not recovered.
	time.Sleep(10 * time.Millisecond)
}

func TestDispatch_LogsHandlerError(t *testing.T) {
	done := make(chan struct{})

	async.Dispatch(context.Background(), func(ctx context.Context) error {
		defer close(done)
		return errors.New("handler failed")
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler was not executed")
	}
}
