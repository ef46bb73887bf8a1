package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/routelens/internal/adapters/watcher"
)

type batchRecorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *batchRecorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, paths)
}

func (r *batchRecorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.batches...)
}

func TestDebouncer_CoalescesAndSorts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/app/controllers/users_controller.rb")
		d.Add("/app/controllers/posts_controller.rb")
		d.Add("/app/controllers/users_controller.rb")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		batches := rec.snapshot()
		require.Len(t, batches, 1)
		assert.Equal(t, []string{
			"/app/controllers/posts_controller.rb",
			"/app/controllers/users_controller.rb",
		}, batches[0])
	})
}

func TestDebouncer_AddRestartsWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/config/routes.rb")
		time.Sleep(60 * time.Millisecond)
		d.Add("/config/routes.rb")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, rec.snapshot())

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		require.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/a.rb")
		d.Flush()

		require.Equal(t, [][]string{{"/a.rb"}}, rec.snapshot())

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Len(t, rec.snapshot(), 1, "flushed paths must not be delivered twice")
	})
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	rec := &batchRecorder{}
	d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

	d.Flush()

	assert.Empty(t, rec.snapshot())
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("/a.rb")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add("/b.rb")
		d.Flush()
	})
}
