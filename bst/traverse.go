package bst

import (
	"github.com/chronos-tachyon/treekit/node"
)

type order byte

const (
	preOrder order = iota
	inOrder
	postOrder
)

// PreOrder returns every item, each node before its subtrees.
func (t *Tree[T]) PreOrder() []T {
	return t.collect(preOrder)
}

// InOrder returns every item in ascending key order.
func (t *Tree[T]) InOrder() []T {
	return t.collect(inOrder)
}

// PostOrder returns every item, each node after its subtrees.
func (t *Tree[T]) PostOrder() []T {
	return t.collect(postOrder)
}

func (t *Tree[T]) collect(o order) []T {
	out := make([]T, 0, 16)
	t.walk(o, func(item T) { out = append(out, item) })
	return out
}

type stackItem[T any] struct {
	n *node.Node[T]
	x byte
}

// walk visits every node depth-first without recursion.
//
// Each stack entry tracks how far we are through its node:
//   x=0 → just arrived; the left subtree is next
//   x=1 → left subtree done; the right subtree is next
//   x=2 → both subtrees done; pop
//
func (t *Tree[T]) walk(o order, visit func(T)) {
	var stack node.Stack[stackItem[T]]
	push := func(n *node.Node[T]) {
		if n != nil {
			stack.Push(stackItem[T]{n: n})
		}
	}

	push(t.root)
	for !stack.Empty() {
		top := stack.Peek()
		n, x := top.n, top.x
		top.x++
		switch x {
		case 0:
			if o == preOrder {
				visit(n.Data())
			}
			push(n.Left())
		case 1:
			if o == inOrder {
				visit(n.Data())
			}
			push(n.Right())
		case 2:
			if o == postOrder {
				visit(n.Data())
			}
			stack.Pop()
		}
	}
}
