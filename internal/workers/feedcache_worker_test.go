package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDirtyQueue struct {
	dirty []uint
}

func (f *fakeDirtyQueue) GetActorSet(context.Context, uint) ([]uint, bool, error) {
	return nil, false, nil
}

func (f *fakeDirtyQueue) SetActorSet(context.Context, uint, []uint) error { return nil }

func (f *fakeDirtyQueue) MarkDirty(_ context.Context, userID uint) error {
	f.dirty = append(f.dirty, userID)
	return nil
}

func (f *fakeDirtyQueue) PopDirty(_ context.Context, limit int) ([]uint, error) {
	if limit > len(f.dirty) {
		limit = len(f.dirty)
	}
	out := f.dirty[:limit]
	f.dirty = f.dirty[limit:]
	return out, nil
}

type recordingRebuilder struct {
	rebuilt []uint
	failFor map[uint]error
}

func (r *recordingRebuilder) RebuildCache(_ context.Context, userID uint) error {
	if err, ok := r.failFor[userID]; ok {
		return err
	}
	r.rebuilt = append(r.rebuilt, userID)
	return nil
}

func TestDrainProcessesAllBatches(t *testing.T) {
	queue := &fakeDirtyQueue{dirty: []uint{1, 2, 3, 4, 5}}
	rebuilder := &recordingRebuilder{}
	w := NewFeedCacheWorker(queue, rebuilder, 2, time.Second, zap.NewNop())

	w.drain(context.Background())

	require.Empty(t, queue.dirty)
	require.Equal(t, []uint{1, 2, 3, 4, 5}, rebuilder.rebuilt)
}

func TestDrainContinuesPastRebuildFailures(t *testing.T) {
	queue := &fakeDirtyQueue{dirty: []uint{1, 2, 3}}
	rebuilder := &recordingRebuilder{failFor: map[uint]error{2: errors.New("store down")}}
	w := NewFeedCacheWorker(queue, rebuilder, 10, time.Second, zap.NewNop())

	w.drain(context.Background())

	require.Equal(t, []uint{1, 3}, rebuilder.rebuilt)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	queue := &fakeDirtyQueue{dirty: []uint{1}}
	rebuilder := &recordingRebuilder{}
	w := NewFeedCacheWorker(queue, rebuilder, 10, 10*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return len(rebuilder.rebuilt) == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
