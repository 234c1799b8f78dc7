package huffman

import (
	"github.com/chronos-tachyon/treekit/node"
)

// walk visits every node in pre-order, left before right, passing the path
// from the root.  It uses an explicit stack, so arbitrarily deep trees are
// safe.
func (t *Tree) walk(visit func(n *node.Node[NodeData], path Code)) {
	type stackItem struct {
		n    *node.Node[NodeData]
		path Code
	}

	var stack node.Stack[stackItem]
	if t.root != nil {
		stack.Push(stackItem{t.root, ""})
	}
	for !stack.Empty() {
		item, _ := stack.Pop()
		visit(item.n, item.path)

		// Push right first so that left is visited first.
		if right := item.n.Right(); right != nil {
			stack.Push(stackItem{right, item.path + "1"})
		}
		if left := item.n.Left(); left != nil {
			stack.Push(stackItem{left, item.path + "0"})
		}
	}
}

// GenerateCodes (re)computes the code table.  Each leaf's code is its path
// from the root.  A tree consisting of a single leaf assigns that symbol the
// code "0", so that no symbol has a zero-length code.
func (t *Tree) GenerateCodes() {
	t.codes = make(map[Symbol]Code, len(t.codes))
	t.walk(func(n *node.Node[NodeData], path Code) {
		d := n.Data()
		if !n.IsLeaf() || d.IsInternal() {
			return
		}
		if path == "" {
			path = "0"
		}
		t.codes[d.Symbol] = path
	})
}

// Code returns the code for symbol.  ok is false if the symbol has no code,
// including when GenerateCodes has not been called.
func (t *Tree) Code(symbol Symbol) (code Code, ok bool) {
	code, ok = t.codes[symbol]
	return code, ok
}

// Codes returns the code table sorted by symbol.  It is empty until
// GenerateCodes has been called.
func (t *Tree) Codes() []CodeEntry {
	freqs := make(map[Symbol]uint64, len(t.codes))
	t.walk(func(n *node.Node[NodeData], _ Code) {
		if d := n.Data(); n.IsLeaf() && !d.IsInternal() {
			freqs[d.Symbol] = d.Freq
		}
	})

	symbols := make(bySymbol, 0, len(t.codes))
	for symbol := range t.codes {
		symbols = append(symbols, symbol)
	}
	symbols.Sort()

	out := make([]CodeEntry, len(symbols))
	for i, symbol := range symbols {
		out[i] = CodeEntry{Symbol: symbol, Freq: freqs[symbol], Code: t.codes[symbol]}
	}
	return out
}

// WeightedLength returns the sum over all coded symbols of frequency times
// code size: the number of bits needed to encode the whole frequency table.
func (t *Tree) WeightedLength() uint64 {
	var total uint64
	for _, entry := range t.Codes() {
		total = saturatingAdd(total, saturatingMul(entry.Freq, uint64(entry.Code.Size())))
	}
	return total
}
