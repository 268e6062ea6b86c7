package mailbox_test

import (
	"sync"
	"testing"

	"github.com/Kassiosky/ZabbixMonitor/pkg/utils/mailbox"
	"github.com/m-mizutani/gt"
)

func TestMailboxEmptyRead(t *testing.T) {
	mb := mailbox.New[int]()
	defer mb.Close()

	v, ok := mb.Latest()
	gt.False(t, ok)
	gt.Equal(t, v, 0)
}

func TestMailboxPublishLatest(t *testing.T) {
	mb := mailbox.New[string]()
	defer mb.Close()

	mb.Publish("first")
	v, ok := mb.Latest()
	gt.True(t, ok)
	gt.Equal(t, v, "first")

	// later publishes replace wholesale
	mb.Publish("second")
	mb.Publish("third")
	v, ok = mb.Latest()
	gt.True(t, ok)
	gt.Equal(t, v, "third")
}

func TestMailboxConcurrentReaders(t *testing.T) {
	mb := mailbox.New[int]()
	defer mb.Close()

	mb.Publish(42)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, ok := mb.Latest()
			gt.True(t, ok)
			gt.Equal(t, v, 42)
		}()
	}
	wg.Wait()
}

func TestMailboxAfterClose(t *testing.T) {
	mb := mailbox.New[int]()
	mb.Publish(1)
	mb.Close()

	// no panic, no block
	mb.Publish(2)
	_, ok := mb.Latest()
	gt.False(t, ok)
}
