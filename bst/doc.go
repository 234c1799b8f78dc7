// Package bst implements an unbalanced binary search tree over any payload
// type with a total order.
//
// Keys are unique.  Deleting a node with two children replaces its payload
// with the in-order predecessor's (the largest key in its left subtree) and
// then removes the predecessor's original node.  No rebalancing is ever
// performed, so the tree height depends entirely on insertion order.
//
package bst
