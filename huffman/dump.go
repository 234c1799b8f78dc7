package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/treekit/node"
	"github.com/chronos-tachyon/treekit/render"
)

// Dump writes a programmer-readable debugging dump of the Tree's current
// state to the given writer: every node in pre-order keyed by its path, then
// the generated codes.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tWeightedLength() = %d\n", t.WeightedLength())
	t.walk(func(n *node.Node[NodeData], path Code) {
		d := n.Data()
		if d.IsInternal() {
			fmt.Fprintf(&buf, "\tNode(%s) = %d\n", path, d.Freq)
		} else {
			fmt.Fprintf(&buf, "\tNode(%s) = %s:%d\n", path, d.Symbol.Quoted(), d.Freq)
		}
	})
	for _, entry := range t.Codes() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", entry.Symbol.Quoted(), entry.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Render draws the tree level by level.  Leaves are labelled "c:freq" and
// internal nodes with their frequency alone.
func (t *Tree) Render() []string {
	return render.Lines(t.root, NodeData.String)
}
