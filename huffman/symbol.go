package huffman

import (
	"strconv"
	"unicode"
)

// Symbol represents a character in the coded alphabet.  Negative symbols are
// not valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// NoSymbol marks internal (merged) nodes, which carry no character.
const NoSymbol = Symbol(-1)

// String returns the symbol as a one-character string, or "" for NoSymbol.
func (s Symbol) String() string {
	if s < 0 {
		return ""
	}
	return string(rune(s))
}

// Quoted returns the symbol as a Go character literal.
func (s Symbol) Quoted() string {
	if s < 0 {
		return "NoSymbol"
	}
	return strconv.QuoteRune(rune(s))
}

// NodeData is the payload of a Huffman tree node.  Symbol is meaningful only
// at leaves; internal nodes hold NoSymbol and the sum of their children's
// frequencies.
type NodeData struct {
	Symbol Symbol
	Freq   uint64

	// seq is the creation order, used to break frequency ties.
	seq uint64
}

// IsInternal returns true iff this is a merged node.
func (d NodeData) IsInternal() bool {
	return d.Symbol == NoSymbol
}

// String returns "c:freq" for leaves and "freq" for internal nodes.
func (d NodeData) String() string {
	freq := strconv.FormatUint(d.Freq, 10)
	if d.IsInternal() {
		return freq
	}
	return d.Symbol.String() + ":" + freq
}
