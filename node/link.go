package node

import (
	"fmt"
)

// Link is a singly-linked node: one payload and one owned successor.
type Link[T any] struct {
	data T
	next *Link[T]
}

// NewLink constructs a Link that takes ownership of next, which may be nil.
func NewLink[T any](data T, next *Link[T]) *Link[T] {
	return &Link[T]{data: data, next: next}
}

func (l *Link[T]) Data() T {
	return l.data
}

func (l *Link[T]) SetData(data T) {
	l.data = data
}

func (l *Link[T]) Next() *Link[T] {
	return l.next
}

func (l *Link[T]) SetNext(next *Link[T]) {
	l.next = next
}

func (l *Link[T]) String() string {
	return fmt.Sprintf("%v", l.data)
}

// Stack is a LIFO built from Link cells.  The zero value is an empty stack.
//
// The trees use it to walk arbitrarily deep structures without recursion.
//
type Stack[T any] struct {
	top *Link[T]
	len uint
}

// Push places data on top of the stack.
func (s *Stack[T]) Push(data T) {
	s.top = NewLink(data, s.top)
	s.len++
}

// Pop removes and returns the top of the stack.  ok is false if the stack
// was empty.
func (s *Stack[T]) Pop() (data T, ok bool) {
	if s.top == nil {
		return data, false
	}
	cell := s.top
	s.top = cell.next
	cell.next = nil
	s.len--
	return cell.data, true
}

// Peek returns a pointer to the payload on top of the stack, or nil.  The
// pointer is valid until the next Pop.
func (s *Stack[T]) Peek() *T {
	if s.top == nil {
		return nil
	}
	return &s.top.data
}

func (s *Stack[T]) Len() uint {
	return s.len
}

func (s *Stack[T]) Empty() bool {
	return s.top == nil
}
