package huffman

import (
	"fmt"
	"strconv"
)

// Code is a sequence of bits written as '0' and '1' characters, first bit
// first.  '0' means "go left" and '1' means "go right".
type Code string

// Size returns the number of bits.
func (c Code) Size() int {
	return len(c)
}

// String returns the quoted representation of this Code.
func (c Code) String() string {
	return strconv.Quote(string(c))
}

var _ fmt.Stringer = Code("")

// CodeEntry is one row of a code table.
type CodeEntry struct {
	Symbol Symbol
	Freq   uint64
	Code   Code
}
