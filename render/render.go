// Package render draws binary trees as indented text, one level at a time.
//
// The layout is a visual approximation: every present node's label appears
// once on its own level, and horizontal spacing halves with each level so the
// drawing narrows toward the leaves.
//
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/chronos-tachyon/treekit/node"
)

// maxLineWidth bounds the length in bytes of every rendered line.
// Degenerate trees would otherwise ask for widths on the order of 2^height;
// anything past the limit is cut off.
const maxLineWidth = 1 << 12

// Slot is one position in a rendered level.  A present slot carries a node;
// an absent slot carries the number of consecutive missing positions it
// stands for, so that gaps keep their width without storing 2^depth entries.
type Slot[T any] struct {
	Node *node.Node[T]
	Gap  uint64
}

// Present returns true iff this slot holds a node.
func (s Slot[T]) Present() bool {
	return s.Node != nil
}

// Levels walks the tree breadth-first and returns its levels, top to bottom.
// A missing child under a present parent becomes a gap on the next level,
// and a gap doubles in width on every level below it.  The fully-empty level
// beneath the deepest leaves is not included.
func Levels[T any](root *node.Node[T]) [][]Slot[T] {
	if root == nil {
		return nil
	}

	queue := linkedlistqueue.New()
	queue.Enqueue(root)

	current := []Slot[T]{{Node: root}}
	levels := [][]Slot[T]{current}

	for !queue.Empty() {
		next := make([]Slot[T], 0, 2*len(current))
		addGap := func(n uint64) {
			if last := len(next) - 1; last >= 0 && !next[last].Present() {
				next[last].Gap = saturatingAdd(next[last].Gap, n)
				return
			}
			next = append(next, Slot[T]{Gap: n})
		}
		addChild := func(child *node.Node[T]) {
			if child == nil {
				addGap(1)
				return
			}
			queue.Enqueue(child)
			next = append(next, Slot[T]{Node: child})
		}

		for _, slot := range current {
			if !slot.Present() {
				addGap(saturatingMul(slot.Gap, 2))
				continue
			}
			value, ok := queue.Dequeue()
			assert.Assertf(ok, "level-order queue drained early")
			parent := value.(*node.Node[T])
			assert.Assertf(parent == slot.Node, "level-order queue out of step with slot list")
			addChild(parent.Left())
			addChild(parent.Right())
		}

		levels = append(levels, next)
		current = next
	}

	// The last level consists solely of the (absent) children of leaves.
	return levels[:len(levels)-1]
}

// Lines renders the tree into display lines.  format produces each node's
// label.  Each level contributes a line of labels, a line of "/ \" branch
// marks, and a blank separator line.
func Lines[T any](root *node.Node[T], format func(T) string) []string {
	it := NewIterator(root, format)
	var out []string
	for line, ok := it.Next(); ok; line, ok = it.Next() {
		out = append(out, line)
	}
	return out
}

// Iterator yields rendered lines lazily.  The level structure is computed up
// front; each line is built only when requested.
type Iterator[T any] struct {
	levels  [][]Slot[T]
	format  func(T) string
	spacing uint64
	level   int
	phase   byte
}

// NewIterator prepares an Iterator over the tree rooted at root.
func NewIterator[T any](root *node.Node[T], format func(T) string) *Iterator[T] {
	assert.Assertf(format != nil, "format must not be nil")

	levels := Levels(root)
	var count, width uint64
	for _, level := range levels {
		for _, slot := range level {
			if slot.Present() {
				count++
				width += uint64(utf8.RuneCountInString(format(slot.Node.Data())))
			}
		}
	}

	var spacing uint64
	if count != 0 {
		largest := saturatingMul(pow2(len(levels)-1), width/count)
		spacing = (saturatingAdd(largest, 1)) / 2
	}

	return &Iterator[T]{
		levels:  levels,
		format:  format,
		spacing: spacing,
	}
}

// Next returns the next line.  ok is false once all lines have been produced.
func (it *Iterator[T]) Next() (line string, ok bool) {
	if it.level >= len(it.levels) {
		return "", false
	}

	level := it.levels[it.level]
	phase := it.phase
	it.phase++
	switch phase {
	case 0:
		return it.labelLine(level), true
	case 1:
		return it.branchLine(level), true
	default:
		it.phase = 0
		it.level++
		it.spacing /= 2
		return "", true
	}
}

func (it *Iterator[T]) labelLine(level []Slot[T]) string {
	var lb lineBuilder
	lb.pad(it.spacing)
	for _, slot := range level {
		if lb.full() {
			break
		}
		if !slot.Present() {
			lb.pad(saturatingMul(slot.Gap, saturatingAdd(it.spacing, 4)))
			continue
		}
		lb.writeByte(' ')
		lb.writeString(it.format(slot.Node.Data()))
		lb.pad(it.spacing)
	}
	return lb.String()
}

func (it *Iterator[T]) branchLine(level []Slot[T]) string {
	var lb lineBuilder
	lb.pad(it.spacing)
	for _, slot := range level {
		if lb.full() {
			break
		}
		if !slot.Present() {
			lb.pad(saturatingMul(slot.Gap, saturatingAdd(it.spacing, 4)))
			continue
		}
		label := it.format(slot.Node.Data())
		lb.writeByte('/')
		lb.pad(uint64(utf8.RuneCountInString(label)))
		lb.writeByte('\\')
		lb.pad(it.spacing)
	}
	return lb.String()
}

// lineBuilder accumulates one line and silently drops whatever would take it
// past maxLineWidth.
type lineBuilder struct {
	sb strings.Builder
}

func (lb *lineBuilder) room() int {
	return maxLineWidth - lb.sb.Len()
}

func (lb *lineBuilder) full() bool {
	return lb.room() <= 0
}

func (lb *lineBuilder) pad(n uint64) {
	if room := uint64(lb.room()); n > room {
		n = room
	}
	lb.sb.WriteString(strings.Repeat(" ", int(n)))
}

func (lb *lineBuilder) writeByte(ch byte) {
	if !lb.full() {
		lb.sb.WriteByte(ch)
	}
}

func (lb *lineBuilder) writeString(str string) {
	if room := lb.room(); len(str) > room {
		// Cut on a rune boundary.
		for room > 0 && !utf8.RuneStart(str[room]) {
			room--
		}
		str = str[:room]
	}
	lb.sb.WriteString(str)
}

func (lb *lineBuilder) String() string {
	return lb.sb.String()
}
