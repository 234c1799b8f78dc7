package node

import (
	"fmt"
)

// Node holds one payload and at most two children.  A child is owned by
// exactly one parent slot (or by a tree's root slot) at a time.
type Node[T any] struct {
	data  T
	left  *Node[T]
	right *Node[T]
}

// New constructs a childless Node.
func New[T any](data T) *Node[T] {
	return &Node[T]{data: data}
}

// NewWithChildren constructs a Node that takes ownership of left and right.
// Either child may be nil.
func NewWithChildren[T any](data T, left, right *Node[T]) *Node[T] {
	return &Node[T]{data: data, left: left, right: right}
}

// Data returns the payload.
func (n *Node[T]) Data() T {
	return n.data
}

// SetData replaces the payload.
func (n *Node[T]) SetData(data T) {
	n.data = data
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// SetLeft replaces the left child.
func (n *Node[T]) SetLeft(left *Node[T]) {
	n.left = left
}

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// SetRight replaces the right child.
func (n *Node[T]) SetRight(right *Node[T]) {
	n.right = right
}

// IsLeaf returns true iff n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// String formats the payload with %v.
func (n *Node[T]) String() string {
	return fmt.Sprintf("%v", n.data)
}

var _ fmt.Stringer = (*Node[int])(nil)
