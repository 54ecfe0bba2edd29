// Package list implements a singly-linked list that tracks both ends.
package list

import (
	"fmt"
	"iter"
	"strings"
)

// Node is a single position in a List. Nodes are only reachable forward.
type Node[T any] struct {
	next  *Node[T]
	value T
}

// Next returns the next item in the list, or nil if it reaches the end of the
// list.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Element returns a copy of the value stored at this position in the list.
func (n *Node[T]) Element() T {
	return n.value
}

// List implements a singly linked-list with references to both the first and
// the last node. Insertion and removal at the front are constant time, as is
// insertion at the back. Removing from the back requires a scan for the
// second-to-last node. The length is not cached. The zero value is an empty
// list. The list is not thread-safe.
type List[T any] struct {
	head, tail *Node[T]
}

// New returns an empty list.
func New[T any]() *List[T] {
	return new(List[T])
}

// Len returns the number of elements in the list. This function is O(n).
func (l *List[T]) Len() int {
	n := 0
	for it := l.head; it != nil; it = it.next {
		n++
	}
	return n
}

// Front returns the first element in the list. If the list is empty, ok is
// false. This function is constant time.
func (l *List[T]) Front() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	return l.head.value, true
}

// Back returns the last element in the list. If the list is empty, ok is false.
// This function is constant time.
func (l *List[T]) Back() (v T, ok bool) {
	if l.tail == nil {
		return v, false
	}
	return l.tail.value, true
}

// PushFront inserts v at the start of the list.
func (l *List[T]) PushFront(v T) {
	n := &Node[T]{
		next:  l.head,
		value: v,
	}
	if l.tail == nil {
		l.tail = n
	}
	l.head = n
}

// PushBack appends v to the list.
func (l *List[T]) PushBack(v T) {
	if l.tail == nil {
		l.PushFront(v)
		return
	}
	n := &Node[T]{
		value: v,
	}
	l.tail.next = n
	l.tail = n
}

// InsertAt inserts v so that it becomes the element at index pos. Positions
// are clamped: pos <= 0 inserts at the front, and pos >= Len() inserts at the
// back. This function is O(n).
func (l *List[T]) InsertAt(v T, pos int) {
	if l.head == nil || pos <= 0 {
		l.PushFront(v)
		return
	}
	if pos >= l.Len() {
		l.PushBack(v)
		return
	}
	prev := l.head
	for i := 1; i < pos; i++ {
		prev = prev.next
	}
	prev.next = &Node[T]{
		next:  prev.next,
		value: v,
	}
}

// PopFront removes the first element from the list and returns it. If the
// list is empty, ok is false.
func (l *List[T]) PopFront() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	ret := l.head
	l.head = ret.next
	if l.head == nil {
		l.tail = nil
	}
	ret.next = nil
	return ret.value, true
}

// PopBack removes the last element from the list and returns it. If the list
// is empty, ok is false. This function is O(n).
func (l *List[T]) PopBack() (v T, ok bool) {
	if l.tail == nil {
		return v, false
	}
	if l.head == l.tail {
		return l.PopFront()
	}
	prev := l.head
	for prev.next != l.tail {
		prev = prev.next
	}
	ret := l.tail
	prev.next = nil
	l.tail = prev
	return ret.value, true
}

// PopAt removes the element at index pos and returns it. If there is no
// element at pos, ok is false. A list with a single element always pops that
// element, regardless of pos. This function is O(n).
func (l *List[T]) PopAt(pos int) (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	if pos == 0 || l.head == l.tail {
		return l.PopFront()
	}
	prev := l.head
	for i := 1; prev.next != nil; i++ {
		it := prev.next
		if i != pos {
			prev = it
			continue
		}
		prev.next = it.next
		if it == l.tail {
			l.tail = prev
		}
		it.next = nil
		return it.value, true
	}
	return v, false
}

// Remove deletes the first element for which match returns true. It returns
// true if an element was removed. This function is O(n).
func (l *List[T]) Remove(match func(T) bool) bool {
	var prev *Node[T]
	for it := l.head; it != nil; prev, it = it, it.next {
		if !match(it.value) {
			continue
		}
		if prev == nil {
			l.head = it.next
		} else {
			prev.next = it.next
		}
		if it == l.tail {
			l.tail = prev
		}
		it.next = nil
		return true
	}
	return false
}

// Clear removes every element from the list.
func (l *List[T]) Clear() {
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.next = nil
	}
	l.tail = nil
}

// FrontIter returns an iterator at the start of the list. The iterator will be
// nil when it reaches the end of a list, or if the list is empty.
func (l *List[T]) FrontIter() *Node[T] {
	return l.head
}

// All returns an iterator over copies of the elements, front to back. Each call
// starts again from the current front. The list must not be modified while the
// iterator is in use.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := l.head; it != nil; it = it.next {
			if !yield(it.value) {
				return
			}
		}
	}
}

// Values returns the elements of the list in a new slice.
func (l *List[T]) Values() []T {
	var out []T
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

// String formats the list as "[a b c]".
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for it := l.head; it != nil; it = it.next {
		if it != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, it.value)
	}
	b.WriteByte(']')
	return b.String()
}
