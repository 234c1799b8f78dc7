package huffman

import (
	"container/heap"
	"sort"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/treekit/node"
)

// Tree is a Huffman coding tree plus the code table derived from it.
type Tree struct {
	root  *node.Node[NodeData]
	codes map[Symbol]Code
}

// Build constructs a Tree from a table of symbol frequencies.  Symbols with a
// frequency of 0 are left out of the code.
//
// With no symbols the tree is empty; with one symbol the root is a single
// leaf.  Codes are not generated until GenerateCodes is called.
//
func Build(freqs map[Symbol]uint64) *Tree {
	symbols := make(bySymbol, 0, len(freqs))
	for symbol, freq := range freqs {
		assert.Assertf(symbol >= 0 && symbol <= MaxSymbol, "invalid symbol %d", symbol)
		if freq != 0 {
			symbols = append(symbols, symbol)
		}
	}
	symbols.Sort()

	// Step 1: one leaf per symbol, in ascending symbol order, into a
	// minheap ordered by (frequency, creation order).

	var seq uint64
	h := nodeHeap{list: make([]*node.Node[NodeData], 0, len(symbols))}
	for _, symbol := range symbols {
		h.list = append(h.list, node.New(NodeData{Symbol: symbol, Freq: freqs[symbol], seq: seq}))
		seq++
	}
	h.Init()

	// Step 2: pop the two lightest nodes, merge them under a new internal
	// node (first popped on the left), and push the result back.

	for h.Len() > 1 {
		a := heap.Pop(&h).(*node.Node[NodeData])
		b := heap.Pop(&h).(*node.Node[NodeData])

		merged := NodeData{
			Symbol: NoSymbol,
			Freq:   saturatingAdd(a.Data().Freq, b.Data().Freq),
			seq:    seq,
		}
		seq++
		heap.Push(&h, node.NewWithChildren(merged, a, b))
	}

	// Step 3: whatever remains is the root.

	t := &Tree{codes: make(map[Symbol]Code, len(symbols))}
	if h.Len() != 0 {
		t.root = heap.Pop(&h).(*node.Node[NodeData])
	}
	return t
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *node.Node[NodeData] {
	return t.root
}

// SetRoot replaces the tree and discards any generated codes.
func (t *Tree) SetRoot(root *node.Node[NodeData]) {
	t.root = root
	t.codes = make(map[Symbol]Code)
}

// Frequency returns the frequency recorded for symbol.  ok is false if the
// symbol is not in the tree.
func (t *Tree) Frequency(symbol Symbol) (freq uint64, ok bool) {
	t.walk(func(n *node.Node[NodeData], _ Code) {
		if d := n.Data(); !ok && n.IsLeaf() && d.Symbol == symbol {
			freq, ok = d.Freq, true
		}
	})
	return freq, ok
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*node.Node[NodeData]
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i].Data(), h.list[j].Data()
	if a.Freq != b.Freq {
		return a.Freq < b.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*node.Node[NodeData]))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

func (list bySymbol) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySymbol(nil)

// }}}
