// Package node provides the structural primitives shared by the trees in this
// module: a binary Node with two owned children, and a singly-linked Link.
//
// Nodes perform no validation.  Ordering and prefix-code invariants are the
// responsibility of whichever tree owns the nodes.
//
package node
