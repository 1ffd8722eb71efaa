package workers

import (
	"boozbaal-chat/mocks"
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSupervisor_RestartOnPanic(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	workerMock := mocks.NewMockWorker(ctrl)

	var calls atomic.Int32
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			calls.Add(1)
			panic("boom")
		}).
		AnyTimes()

	sup := NewSupervisor(log, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stop := sup.Spawn(ctx, workerMock)
	defer sup.Wait()
	defer stop()

	// Waiting for panics and restarts
	req.Eventually(func() bool { return calls.Load() >= 2 }, 900*time.Millisecond, 10*time.Millisecond)
}

func TestSupervisor_StopOnSuccess(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workerMock := mocks.NewMockWorker(ctrl)

	// Given a worker running only once
	workerMock.EXPECT().
		Run(gomock.Any()).
		Return(nil).
		Times(1)

	sup := NewSupervisor(log, 50*time.Millisecond)

	// Given a channel to notify when Wait() returned
	done := make(chan struct{})

	go func() {
		sup.Start(context.Background(), workerMock)
		sup.Wait()
		close(done)
	}()

	select {
	case <-done:
		// Then supervisor detected a success and stopped
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped after worker success")
	}
}

func TestSupervisor_Spawn_Stops_Single_Worker(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spawned := mocks.NewMockWorker(ctrl)
	started := make(chan struct{})
	stopped := make(chan struct{})
	spawned.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			close(stopped)
			return nil
		}).
		Times(1)

	sup := NewSupervisor(slog.Default(), 50*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Given the worker is running
	stop := sup.Spawn(ctx, spawned)
	select {
	case <-started:
	case <-time.After(500 * time.Millisecond):
		req.FailNow("Spawned worker never started")
	}

	// When it is stopped alone
	stop()

	// Then it returns while the parent context is still alive
	select {
	case <-stopped:
	case <-time.After(500 * time.Millisecond):
		req.Fail("Spawned worker should have been stopped")
	}
	sup.Wait()
	req.NoError(ctx.Err())
}

func TestSupervisor_Spawn_Stopped_Before_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Given a worker cancelled before its goroutine runs, it may never be called
	worker := mocks.NewMockWorker(ctrl)
	worker.EXPECT().Run(gomock.Any()).Return(nil).MaxTimes(1)

	sup := NewSupervisor(slog.Default(), 50*time.Millisecond)
	stop := sup.Spawn(context.Background(), worker)
	stop()

	// Then Wait still returns
	done := make(chan struct{})
	go func() {
		sup.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		require.Fail(t, "Wait should return once the worker is stopped")
	}
}
