package bst

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/chronos-tachyon/treekit/node"
	"github.com/chronos-tachyon/treekit/render"
)

// Compare reports the order of a and b: negative if a < b, zero if equal,
// positive if a > b.
type Compare[T any] func(a, b T) int

// Tree is a binary search tree.  The zero value is not usable; construct with
// New or NewOrdered.
type Tree[T any] struct {
	root *node.Node[T]
	cmp  Compare[T]
}

// New constructs an empty Tree ordered by cmp.
func New[T any](cmp Compare[T]) *Tree[T] {
	assert.Assertf(cmp != nil, "comparison function must not be nil")
	return &Tree[T]{cmp: cmp}
}

// NewOrdered constructs an empty Tree ordered by the natural order of T.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New(func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// Root returns the root node, or nil if the tree is empty.  Callers must not
// restructure the returned nodes.
func (t *Tree[T]) Root() *node.Node[T] {
	return t.root
}

// Insert adds item to the tree.  If an item with an equal key is already
// present, Insert returns an error wrapping ErrDuplicateKey.
func (t *Tree[T]) Insert(item T) error {
	root, err := t.insert(t.root, item)
	if err != nil {
		return err
	}
	t.root = root
	return nil
}

func (t *Tree[T]) insert(n *node.Node[T], item T) (*node.Node[T], error) {
	if n == nil {
		return node.New(item), nil
	}

	c := t.cmp(item, n.Data())
	switch {
	case c < 0:
		left, err := t.insert(n.Left(), item)
		if err != nil {
			return nil, err
		}
		n.SetLeft(left)
	case c > 0:
		right, err := t.insert(n.Right(), item)
		if err != nil {
			return nil, err
		}
		n.SetRight(right)
	default:
		return nil, errors.Wrapf(ErrDuplicateKey, "insert %v", item)
	}
	return n, nil
}

// Search returns the stored item whose key equals key.  If there is none,
// Search returns an error wrapping ErrNotFound.
func (t *Tree[T]) Search(key T) (T, error) {
	n := t.root
	for n != nil {
		c := t.cmp(key, n.Data())
		switch {
		case c < 0:
			n = n.Left()
		case c > 0:
			n = n.Right()
		default:
			return n.Data(), nil
		}
	}
	var zero T
	return zero, errors.Wrapf(ErrNotFound, "search %v", key)
}

// Contains returns true iff an item with a key equal to key is present.
func (t *Tree[T]) Contains(key T) bool {
	_, err := t.Search(key)
	return err == nil
}

// Delete removes the item whose key equals key.  If there is none, Delete
// returns an error wrapping ErrNotFound.
func (t *Tree[T]) Delete(key T) error {
	root, err := t.delete(t.root, key)
	if err != nil {
		return err
	}
	t.root = root
	return nil
}

func (t *Tree[T]) delete(n *node.Node[T], key T) (*node.Node[T], error) {
	if n == nil {
		return nil, errors.Wrapf(ErrNotFound, "delete %v", key)
	}

	c := t.cmp(key, n.Data())
	switch {
	case c < 0:
		left, err := t.delete(n.Left(), key)
		if err != nil {
			return nil, err
		}
		n.SetLeft(left)
		return n, nil
	case c > 0:
		right, err := t.delete(n.Right(), key)
		if err != nil {
			return nil, err
		}
		n.SetRight(right)
		return n, nil
	default:
		return excise(n), nil
	}
}

// excise removes n from its position and returns whatever takes its place.
func excise[T any](n *node.Node[T]) *node.Node[T] {
	switch {
	case n.Left() == nil:
		return n.Right()
	case n.Right() == nil:
		return n.Left()
	}

	// Two children: n stays put and takes over its in-order predecessor's
	// payload.  The predecessor has no right child, so unlinking it is the
	// one-child (or no-child) case.
	n.SetData(maxNode(n.Left()).Data())
	n.SetLeft(removeMax(n.Left()))
	return n
}

func maxNode[T any](n *node.Node[T]) *node.Node[T] {
	for n.Right() != nil {
		n = n.Right()
	}
	return n
}

func minNode[T any](n *node.Node[T]) *node.Node[T] {
	for n.Left() != nil {
		n = n.Left()
	}
	return n
}

// removeMax unlinks the rightmost node of the subtree rooted at n and returns
// the new subtree root.
func removeMax[T any](n *node.Node[T]) *node.Node[T] {
	if n.Right() == nil {
		return n.Left()
	}
	n.SetRight(removeMax(n.Right()))
	return n
}

// Min returns the smallest item.  ok is false if the tree is empty.
func (t *Tree[T]) Min() (item T, ok bool) {
	if t.root == nil {
		return item, false
	}
	return minNode(t.root).Data(), true
}

// Max returns the largest item.  ok is false if the tree is empty.
func (t *Tree[T]) Max() (item T, ok bool) {
	if t.root == nil {
		return item, false
	}
	return maxNode(t.root).Data(), true
}

// Len counts the items in the tree.
func (t *Tree[T]) Len() int {
	var count int
	t.walk(inOrder, func(T) { count++ })
	return count
}

type depthItem[T any] struct {
	n     *node.Node[T]
	depth int
}

// Height returns the number of levels in the tree; 0 for an empty tree.
func (t *Tree[T]) Height() int {
	var height int
	var stack node.Stack[depthItem[T]]
	if t.root != nil {
		stack.Push(depthItem[T]{t.root, 1})
	}
	for !stack.Empty() {
		f, _ := stack.Pop()
		if f.depth > height {
			height = f.depth
		}
		if f.n.Left() != nil {
			stack.Push(depthItem[T]{f.n.Left(), f.depth + 1})
		}
		if f.n.Right() != nil {
			stack.Push(depthItem[T]{f.n.Right(), f.depth + 1})
		}
	}
	return height
}

// String returns the items in order, each followed by ", ".
func (t *Tree[T]) String() string {
	var sb strings.Builder
	for _, item := range t.InOrder() {
		fmt.Fprintf(&sb, "%v, ", item)
	}
	return sb.String()
}

// Render draws the tree level by level.  If format is nil, items are
// formatted with %v.
func (t *Tree[T]) Render(format func(T) string) []string {
	if format == nil {
		format = func(item T) string { return fmt.Sprintf("%v", item) }
	}
	return render.Lines(t.root, format)
}

var _ fmt.Stringer = (*Tree[int])(nil)
