// Package mailbox provides a single-writer latest-value cell with
// message-based handoff. The poll loop publishes each cycle's snapshot
// and presentation surfaces read the most recent one; ownership of the
// value never crosses goroutines through shared mutation, only through
// channel messages to the cell's own goroutine.
package mailbox

// Mailbox holds the latest published value of type T
type Mailbox[T any] struct {
	publish chan T
	request chan chan latest[T]
	done    chan struct{}
}

type latest[T any] struct {
	value T
	ok    bool
}

// New creates a Mailbox and starts its owner goroutine
func New[T any]() *Mailbox[T] {
	mb := &Mailbox[T]{
		publish: make(chan T),
		request: make(chan chan latest[T]),
		done:    make(chan struct{}),
	}
	go mb.run()
	return mb
}

func (mb *Mailbox[T]) run() {
	var current latest[T]
	for {
		select {
		case v := <-mb.publish:
			current = latest[T]{value: v, ok: true}
		case reply := <-mb.request:
			reply <- current
		case <-mb.done:
			return
		}
	}
}

// Publish replaces the held value wholesale
func (mb *Mailbox[T]) Publish(v T) {
	select {
	case mb.publish <- v:
	case <-mb.done:
	}
}

// Latest returns the most recently published value. ok is false until
// the first Publish and after Close.
func (mb *Mailbox[T]) Latest() (T, bool) {
	reply := make(chan latest[T], 1)
	select {
	case mb.request <- reply:
		l := <-reply
		return l.value, l.ok
	case <-mb.done:
		var zero T
		return zero, false
	}
}

// Close stops the owner goroutine. Publish and Latest become no-ops.
func (mb *Mailbox[T]) Close() {
	close(mb.done)
}
