package huffman

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/chronos-tachyon/treekit/node"
)

// Encode replaces each character of text with its code.  Characters without
// a code are left out of the output; each one is reported in diags (wrapping
// ErrUnknownSymbol) and encoding carries on.  Bytes that are not valid UTF-8
// are reported the same way.
func (t *Tree) Encode(text string) (encoded string, diags []error) {
	var sb strings.Builder
	sb.Grow(len(text) * int(log2uint32(uint32(len(t.codes)))))
	for offset := 0; offset < len(text); {
		ch, size := utf8.DecodeRuneInString(text[offset:])
		at := offset
		offset += size
		if ch == utf8.RuneError && size == 1 {
			diags = append(diags, errors.WithMessagef(ErrUnknownSymbol, "encode invalid byte %#02x at offset %d", text[at], at))
			continue
		}
		code, found := t.codes[Symbol(ch)]
		if !found {
			diags = append(diags, errors.WithMessagef(ErrUnknownSymbol, "encode %q at offset %d", ch, at))
			continue
		}
		sb.WriteString(string(code))
	}
	return sb.String(), diags
}

// Decode walks the tree from the root, going left on '0' and right on '1',
// and emits a symbol each time it reaches a leaf.  Any other character is
// reported in diags (wrapping ErrInvalidBit) and skipped without moving.
// Bits left over after the last complete code are dropped.
func (t *Tree) Decode(bits string) (decoded string, diags []error) {
	if t.root == nil {
		if bits != "" {
			diags = append(diags, errors.WithMessagef(ErrEmptyTree, "decode %d bits", len(bits)))
		}
		return "", diags
	}

	var sb strings.Builder
	emit := func(n *node.Node[NodeData]) {
		if d := n.Data(); !d.IsInternal() {
			sb.WriteRune(rune(d.Symbol))
		}
	}

	current := t.root
	for offset, bit := range bits {
		if bit != '0' && bit != '1' {
			diags = append(diags, errors.WithMessagef(ErrInvalidBit, "decode %q at offset %d", bit, offset))
			continue
		}

		// A lone leaf at the root has the code "0".
		if current.IsLeaf() {
			if bit == '0' {
				emit(current)
			} else {
				diags = append(diags, errors.WithMessagef(ErrInvalidBit, "decode %q at offset %d: no such branch", bit, offset))
			}
			continue
		}

		next := current.Left()
		if bit == '1' {
			next = current.Right()
		}
		if next == nil {
			diags = append(diags, errors.WithMessagef(ErrInvalidBit, "decode %q at offset %d: no such branch", bit, offset))
			current = t.root
			continue
		}

		current = next
		if current.IsLeaf() {
			emit(current)
			current = t.root
		}
	}
	return sb.String(), diags
}
