package event

import (
	"log/slog"
)

// Handler receives one published value of type T.
type Handler[T any] func(evt T)

// Topic is a typed, synchronous observer list. Handlers run on the
// publishing goroutine in subscription order, so a fixed-step simulation
// stays deterministic. The zero value is ready to use.
type Topic[T any] struct {
	name     string
	handlers []subscription[T]
	nextID   uint64
	logger   *slog.Logger
}

type subscription[T any] struct {
	id uint64
	fn Handler[T]
}

// NewTopic returns a named topic. The name only shows up in panic logs.
func NewTopic[T any](name string, logger *slog.Logger) *Topic[T] {
	return &Topic[T]{name: name, logger: logger}
}

// Subscribe registers handler and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (t *Topic[T]) Subscribe(handler Handler[T]) (cancel func()) {
	if handler == nil {
		return func() {}
	}
	t.nextID++
	id := t.nextID
	t.handlers = append(t.handlers, subscription[T]{id: id, fn: handler})
	return func() { t.unsubscribe(id) }
}

func (t *Topic[T]) unsubscribe(id uint64) {
	for i, s := range t.handlers {
		if s.id == id {
			t.handlers = append(t.handlers[:i:i], t.handlers[i+1:]...)
			return
		}
	}
}

// Len reports the number of live subscriptions.
func (t *Topic[T]) Len() int {
	return len(t.handlers)
}

// Publish delivers evt to every handler. A handler that panics is logged
// and skipped; the remaining handlers still run.
func (t *Topic[T]) Publish(evt T) {
	if len(t.handlers) == 0 {
		return
	}
	handlers := make([]subscription[T], len(t.handlers))
	copy(handlers, t.handlers)

	for _, s := range handlers {
		t.deliver(s.fn, evt)
	}
}

func (t *Topic[T]) deliver(h Handler[T], evt T) {
	defer func() {
		if r := recover(); r != nil {
			lg := t.logger
			if lg == nil {
				lg = slog.Default()
			}
			lg.Error("Event handler panicked", "event", t.name, "panic", r)
		}
	}()
	h(evt)
}
