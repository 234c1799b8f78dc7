package freqtable_test

import (
	"io"
	"strings"
	"testing/iotest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/chronos-tachyon/treekit/freqtable"
	"github.com/chronos-tachyon/treekit/huffman"
)

var _ = Describe("Freqtable", func() {
	var fs afero.Fs

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
	})

	Describe("Read", func() {
		Context("When every record is well formed", func() {
			It("Should load all symbols", func() {
				table, diags, err := freqtable.Read(strings.NewReader("a 5\nb\t9\n\n  c   12  \n"))
				Expect(err).ToNot(HaveOccurred())
				Expect(diags).To(BeEmpty())
				Expect(table).To(Equal(freqtable.Table{'a': 5, 'b': 9, 'c': 12}))
			})
		})

		Context("When some records are malformed", func() {
			input := strings.Join([]string{
				"a 5",
				"b",
				"c twelve",
				"d 13 extra",
				"e -4",
				"a 7",
				"f 45",
			}, "\n")

			It("Should skip them and keep the rest", func() {
				table, diags, err := freqtable.Read(strings.NewReader(input))
				Expect(err).ToNot(HaveOccurred())
				Expect(table).To(Equal(freqtable.Table{'a': 5, 'f': 45}))
				Expect(diags).To(HaveLen(5))
			})

			It("Should report each skipped line", func() {
				_, diags, _ := freqtable.Read(strings.NewReader(input))
				for _, diag := range diags[:4] {
					Expect(errors.Is(diag, freqtable.ErrMalformedRecord)).To(BeTrue())
				}
				Expect(diags[0].Error()).To(Equal(`line 2: "b": expected 2 fields, got 1: malformed record`))
				Expect(diags[1].Error()).To(ContainSubstring(`invalid frequency "twelve"`))
				Expect(errors.Is(diags[4], freqtable.ErrDuplicateSymbol)).To(BeTrue())
				Expect(diags[4].Error()).To(HavePrefix("line 6:"))
			})
		})

		Context("When a record is longer than the line limit", func() {
			input := "a 5\nb " + strings.Repeat("9", 70000) + "\nc 7\n"

			It("Should skip it and keep the records around it", func() {
				table, diags, err := freqtable.Read(strings.NewReader(input))
				Expect(err).ToNot(HaveOccurred())
				Expect(table).To(Equal(freqtable.Table{'a': 5, 'c': 7}))
				Expect(diags).To(HaveLen(1))
				Expect(errors.Is(diags[0], freqtable.ErrMalformedRecord)).To(BeTrue())
				Expect(diags[0].Error()).To(HavePrefix("line 2: record longer than"))
			})
		})

		Context("When the reader fails partway", func() {
			It("Should return the records read before the failure", func() {
				boom := errors.New("boom")
				r := io.MultiReader(strings.NewReader("a 5\nb 9\n"), iotest.ErrReader(boom))
				table, diags, err := freqtable.Read(r)
				Expect(errors.Is(err, boom)).To(BeTrue())
				Expect(diags).To(BeEmpty())
				Expect(table).To(Equal(freqtable.Table{'a': 5, 'b': 9}))
			})
		})

		It("Should take the first character of a longer token", func() {
			table, _, err := freqtable.Read(strings.NewReader("ümlaut 3\n"))
			Expect(err).ToNot(HaveOccurred())
			Expect(table).To(HaveKeyWithValue(huffman.Symbol('ü'), uint64(3)))
		})
	})

	Describe("Load", func() {
		It("Should read a table from the filesystem", func() {
			Expect(afero.WriteFile(fs, "frequencies.txt", []byte("x 1\ny 2\n"), 0o644)).To(Succeed())

			table, diags, err := freqtable.Load(fs, "frequencies.txt")
			Expect(err).ToNot(HaveOccurred())
			Expect(diags).To(BeEmpty())
			Expect(table.Total()).To(Equal(uint64(3)))
		})

		It("Should fail for a missing file", func() {
			_, _, err := freqtable.Load(fs, "missing.txt")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(HavePrefix("open frequency table"))
		})
	})

	Describe("Count and Write", func() {
		It("Should round trip through the text format", func() {
			table := freqtable.Count("kapiolani park")
			Expect(table).ToNot(HaveKey(huffman.Symbol(' ')))
			Expect(table).To(HaveKeyWithValue(huffman.Symbol('a'), uint64(3)))

			var sb strings.Builder
			Expect(freqtable.Write(&sb, table)).To(Succeed())
			Expect(sb.String()).To(HavePrefix("a 3\ni 2\nk 2\n"))

			again, diags, err := freqtable.Read(strings.NewReader(sb.String()))
			Expect(err).ToNot(HaveOccurred())
			Expect(diags).To(BeEmpty())
			Expect(again).To(Equal(table))
		})
	})
})
