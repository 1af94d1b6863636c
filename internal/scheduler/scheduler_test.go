package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/StayBooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_SyncsPending(t *testing.T) {
	syncer := mocks.NewMockPaymentSyncer(t)
	log := newTestLogger(t)

	s := New(syncer, 50*time.Millisecond, log)

	syncer.EXPECT().SyncPending(mock.Anything).Return(2, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(syncer.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	syncer := mocks.NewMockPaymentSyncer(t)
	log := newTestLogger(t)

	s := New(syncer, 50*time.Millisecond, log)

	syncer.EXPECT().SyncPending(mock.Anything).Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(syncer.Calls), 1)
}

func TestScheduler_Tick_KeepsGoingAfterError(t *testing.T) {
	syncer := mocks.NewMockPaymentSyncer(t)
	log := newTestLogger(t)

	s := New(syncer, 20*time.Millisecond, log)

	syncer.EXPECT().SyncPending(mock.Anything).Return(0, errors.New("gateway down")).Once()
	syncer.EXPECT().SyncPending(mock.Anything).Return(1, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(syncer.Calls), 2)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	syncer := mocks.NewMockPaymentSyncer(t)
	log := newTestLogger(t)

	s := New(syncer, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	syncer := mocks.NewMockPaymentSyncer(t)
	log := newTestLogger(t)

	s := New(syncer, 30*time.Millisecond, log)

	syncer.EXPECT().SyncPending(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(syncer.Calls), 3)
}
