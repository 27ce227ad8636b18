package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eaggr "github.com/riskaware-ltd/open-eaggr-go"
	"github.com/riskaware-ltd/open-eaggr-go/session"
)

func TestOpenCloseRoundTrip(t *testing.T) {
	r := session.NewRegistry(nil)
	h, err := r.Open(eaggr.ISEA4T)
	require.NoError(t, err)

	require.NoError(t, r.Close(h))
	require.NoError(t, r.Close(h), "closing an already-closed handle is a no-op")
}

func TestDoOnUnknownHandleErrors(t *testing.T) {
	r := session.NewRegistry(nil)
	err := r.Do(session.Handle(999), func(*eaggr.DGGS) error { return nil })
	assert.Error(t, err)
}

func TestDoRecordsLastError(t *testing.T) {
	r := session.NewRegistry(nil)
	h, err := r.Open(eaggr.ISEA4T)
	require.NoError(t, err)

	sentinel := assert.AnError
	err = r.Do(h, func(*eaggr.DGGS) error { return sentinel })
	assert.Equal(t, sentinel, err)
	assert.Equal(t, sentinel, r.LastError(h))
}

// TestConcurrentHandlesDoNotBlockEachOther proves that a slow operation on
// one handle does not hold up an operation on a different handle: the
// registry lock is per-session, not registry-wide.
func TestConcurrentHandlesDoNotBlockEachOther(t *testing.T) {
	r := session.NewRegistry(nil)
	slow, err := r.Open(eaggr.ISEA4T)
	require.NoError(t, err)
	fast, err := r.Open(eaggr.ISEA3H)
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = r.Do(slow, func(*eaggr.DGGS) error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started

	done := make(chan error, 1)
	go func() {
		done <- r.Do(fast, func(d *eaggr.DGGS) error {
			_, err := d.CreateCell("00000,0")
			return err
		})
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("operation on an unrelated handle was blocked by a slow handle")
	}

	close(release)
}

// TestSameHandleSerializes proves the flip side: two operations sharing one
// handle run one after another, not concurrently.
func TestSameHandleSerializes(t *testing.T) {
	r := session.NewRegistry(nil)
	h, err := r.Open(eaggr.ISEA4T)
	require.NoError(t, err)

	var order []int
	orderCh := make(chan int, 2)

	go func() {
		_ = r.Do(h, func(*eaggr.DGGS) error {
			time.Sleep(20 * time.Millisecond)
			orderCh <- 1
			return nil
		})
	}()
	time.Sleep(5 * time.Millisecond)
	go func() {
		_ = r.Do(h, func(*eaggr.DGGS) error {
			orderCh <- 2
			return nil
		})
	}()

	order = append(order, <-orderCh, <-orderCh)
	assert.Equal(t, []int{1, 2}, order)
}
