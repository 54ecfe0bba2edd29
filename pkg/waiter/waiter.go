// Package waiter implements a wait queue, where listeners can be registered to
// be notified of events. It is loosely based on the implementation in gVisor.
package waiter

import (
	"sync"

	"hop.computer/nodelist/pkg/list"
)

// Queue holds registered entries in registration order. The zero value is an
// empty queue. It is safe for concurrent use.
type Queue[T any] struct {
	l list.List[*Entry[T]]
	m sync.RWMutex
}

// Entry is a single registration in a Queue.
type Entry[T any] struct {
	listener EventListener[T]
}

// EventListener receives the object passed to Notify.
type EventListener[T any] interface {
	NotifyEvent(*T)
}

// EventRegister adds e to the end of the queue.
func (q *Queue[T]) EventRegister(e *Entry[T]) {
	q.m.Lock()
	defer q.m.Unlock()
	q.l.PushBack(e)
}

// EventUnregister removes e from the queue. Entries are compared by address. It
// returns false if e was not registered.
func (q *Queue[T]) EventUnregister(e *Entry[T]) bool {
	q.m.Lock()
	defer q.m.Unlock()
	return q.l.Remove(func(other *Entry[T]) bool {
		return other == e
	})
}

// Len returns the number of registered entries.
func (q *Queue[T]) Len() int {
	q.m.RLock()
	defer q.m.RUnlock()
	return q.l.Len()
}

// Notify calls every registered listener with obj, in registration order.
// Listeners must not register or unregister entries on the same queue.
func (q *Queue[T]) Notify(obj *T) {
	q.m.RLock()
	defer q.m.RUnlock()
	for e := range q.l.All() {
		e.listener.NotifyEvent(obj)
	}
}

type functionNotifier[T any] func(*T)

func (f functionNotifier[T]) NotifyEvent(t *T) {
	f(t)
}

// NewFunctionEntry wraps f as an Entry.
func NewFunctionEntry[T any](f func(*T)) *Entry[T] {
	e := Entry[T]{
		listener: functionNotifier[T](f),
	}
	return &e
}
