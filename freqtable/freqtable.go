// Package freqtable reads and writes symbol frequency tables.
//
// The text format has one record per line: a token whose first character is
// the symbol, whitespace, and a non-negative decimal frequency.  Blank lines
// are ignored.  Bad records are skipped and reported; they never stop the
// rest of the table from loading.
package freqtable

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/chronos-tachyon/treekit/huffman"
)

var (
	// ErrMalformedRecord is reported for a line with the wrong number of
	// fields or a frequency that is not a non-negative integer.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrDuplicateSymbol is reported for a line whose symbol already
	// appeared earlier in the table.  The earlier record wins.
	ErrDuplicateSymbol = errors.New("duplicate symbol")
)

// Table maps each symbol to its frequency.
type Table map[huffman.Symbol]uint64

// Load reads the table stored at path on fs.  A missing or unreadable file
// is an error; bad records are returned as diagnostics.  A read that fails
// partway still returns the records loaded before the failure.
func Load(fs afero.Fs, path string) (Table, []error, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open frequency table")
	}
	defer f.Close()

	table, diags, err := Read(f)
	if err != nil {
		return table, diags, errors.Wrapf(err, "read frequency table %s", path)
	}
	return table, diags, nil
}

// MaxRecordLen is the longest line Read will parse.  Longer lines are
// consumed and reported as malformed.
const MaxRecordLen = 4096

// Read parses a table from r.  On an I/O error the records parsed so far are
// still returned alongside the error.
func Read(r io.Reader) (Table, []error, error) {
	table := make(Table)
	var diags []error

	br := bufio.NewReaderSize(r, MaxRecordLen)
	lineNum := 0
	for {
		raw, tooLong, err := readLine(br)
		if err == io.EOF && raw == "" && !tooLong {
			break
		}
		if err != nil && err != io.EOF {
			return table, diags, err
		}
		lineNum++

		if tooLong {
			diags = append(diags, errors.WithMessagef(ErrMalformedRecord, "line %d: record longer than %d bytes", lineNum, MaxRecordLen))
		} else {
			diags = parseRecord(table, diags, lineNum, raw)
		}

		if err == io.EOF {
			break
		}
	}
	return table, diags, nil
}

// readLine returns the next line without its terminator.  A line that does
// not fit in br's buffer is drained and reported with tooLong set.
func readLine(br *bufio.Reader) (line string, tooLong bool, err error) {
	buf, isPrefix, err := br.ReadLine()
	if !isPrefix {
		return string(buf), false, err
	}
	for isPrefix && err == nil {
		_, isPrefix, err = br.ReadLine()
	}
	return "", true, err
}

func parseRecord(table Table, diags []error, lineNum int, raw string) []error {
	line := strings.TrimSpace(raw)
	if line == "" {
		return diags
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return append(diags, errors.WithMessagef(ErrMalformedRecord, "line %d: %q: expected 2 fields, got %d", lineNum, line, len(fields)))
	}

	symbol, _ := utf8.DecodeRuneInString(fields[0])
	freq, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return append(diags, errors.WithMessagef(ErrMalformedRecord, "line %d: %q: invalid frequency %q", lineNum, line, fields[1]))
	}

	if _, found := table[huffman.Symbol(symbol)]; found {
		return append(diags, errors.WithMessagef(ErrDuplicateSymbol, "line %d: %q", lineNum, line))
	}
	table[huffman.Symbol(symbol)] = freq
	return diags
}

// Count tallies the characters of text.  Whitespace is not counted, since
// the file format cannot represent it.
func Count(text string) Table {
	table := make(Table)
	for _, ch := range text {
		if unicode.IsSpace(ch) {
			continue
		}
		table[huffman.Symbol(ch)]++
	}
	return table
}

// Symbols returns the symbols of the table in ascending order.
func (t Table) Symbols() []huffman.Symbol {
	symbols := lo.Keys(t)
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}

// Total returns the sum of all frequencies.
func (t Table) Total() uint64 {
	var total uint64
	for _, freq := range t {
		total += freq
	}
	return total
}

// Write stores the table in text form, one record per line, in ascending
// symbol order.
func Write(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)
	for _, symbol := range t.Symbols() {
		if _, err := fmt.Fprintf(bw, "%s %d\n", symbol, t[symbol]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
