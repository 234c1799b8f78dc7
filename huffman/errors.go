package huffman

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnknownSymbol is reported by Encode for each character that has
	// no code.  The character is left out of the output.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrInvalidBit is reported by Decode for each character that is not
	// a usable bit.  The character is skipped.
	ErrInvalidBit = errors.New("invalid bit")

	// ErrEmptyTree is reported by Decode when bits are supplied to a tree
	// with no symbols.
	ErrEmptyTree = errors.New("empty Huffman tree")
)
