package cli_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"

	"github.com/chronos-tachyon/treekit/internal/cli"
	"github.com/chronos-tachyon/treekit/internal/config"
)

const classicTable = "a 5\nb 9\nc 12\nd 13\ne 16\nf 45\nbogus line here\n"

var _ = Describe("CLI", func() {
	var (
		fs     afero.Fs
		stdout *bytes.Buffer
		stderr *bytes.Buffer
	)

	run := func(args ...string) error {
		app := &cli.App{
			Fs:     fs,
			Config: &config.Config{Frequencies: "frequencies.txt"},
		}
		cmd := cli.NewRootCommand(app)
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
		stdout = &bytes.Buffer{}
		stderr = &bytes.Buffer{}
		Expect(afero.WriteFile(fs, "frequencies.txt", []byte(classicTable), 0o644)).To(Succeed())
	})

	Describe("bst", func() {
		It("Should print all three traversals", func() {
			Expect(run("bst", "50", "30", "70", "20", "40", "60", "80")).To(Succeed())
			Expect(stdout.String()).To(ContainSubstring("preorder traversal:\n50, 30, 20, 40, 70, 60, 80\n"))
			Expect(stdout.String()).To(ContainSubstring("inorder traversal:\n20, 30, 40, 50, 60, 70, 80\n"))
			Expect(stdout.String()).To(ContainSubstring("postorder traversal:\n20, 40, 30, 60, 80, 70, 50\n"))
		})

		It("Should compare non-numeric keys as strings", func() {
			Expect(run("bst", "ohua", "kahaha", "uhu", "anae", "--search", "anae")).To(Succeed())
			Expect(stdout.String()).To(ContainSubstring("inorder traversal:\nanae, kahaha, ohua, uhu\n"))
			Expect(stdout.String()).To(ContainSubstring("Got: anae\n"))
		})

		It("Should warn about duplicates and missing keys but carry on", func() {
			Expect(run("bst", "5", "3", "5", "--delete", "9", "--delete", "5")).To(Succeed())
			Expect(stderr.String()).To(ContainSubstring("insert 5: duplicate key"))
			Expect(stderr.String()).To(ContainSubstring("delete 9: key not found"))
			Expect(stdout.String()).To(ContainSubstring("After removing 5:"))
			Expect(stdout.String()).ToNot(ContainSubstring("After removing 9:"))
		})

		It("Should require at least one key", func() {
			Expect(run("bst")).ToNot(Succeed())
		})
	})

	Describe("huffman", func() {
		It("Should print the code table and warn about bad records", func() {
			Expect(run("huffman", "codes")).To(Succeed())
			Expect(stdout.String()).To(ContainSubstring("Huffman Codes:"))
			Expect(stdout.String()).To(ContainSubstring("1100"))
			Expect(stdout.String()).To(ContainSubstring("Weighted length: 224 bits"))
			Expect(stderr.String()).To(ContainSubstring("malformed record"))
		})

		It("Should encode and skip unknown characters", func() {
			Expect(run("huffman", "encode", "fade!")).To(Succeed())
			Expect(stdout.String()).To(Equal("0" + "1100" + "101" + "111" + "\n"))
			Expect(stderr.String()).To(ContainSubstring("encode '!' at offset 4: unknown symbol"))
		})

		It("Should decode", func() {
			Expect(run("huffman", "decode", "01100101111")).To(Succeed())
			Expect(stdout.String()).To(Equal("fade\n"))
		})

		It("Should draw the tree", func() {
			Expect(run("huffman", "tree")).To(Succeed())
			Expect(stdout.String()).To(HavePrefix("Breadth-First Display of Tree:\n"))
			Expect(stdout.String()).To(ContainSubstring("f:45"))
		})

		It("Should dump the tree", func() {
			Expect(run("huffman", "tree", "--dump")).To(Succeed())
			Expect(stdout.String()).To(ContainSubstring("\tEncode('f') = \"0\"\n"))
		})

		It("Should read another table with --file", func() {
			Expect(afero.WriteFile(fs, "other.txt", []byte("x 1\n"), 0o644)).To(Succeed())
			Expect(run("huffman", "encode", "--file", "other.txt", "xx")).To(Succeed())
			Expect(stdout.String()).To(Equal("00\n"))
		})

		It("Should fail when the table is missing", func() {
			Expect(run("huffman", "codes", "--file", "missing.txt")).To(MatchError(ContainSubstring("open frequency table")))
		})

		It("Should count characters into a table", func() {
			Expect(afero.WriteFile(fs, "sample.txt", []byte("aab\n"), 0o644)).To(Succeed())
			Expect(run("huffman", "count", "sample.txt")).To(Succeed())
			Expect(stdout.String()).To(Equal("a 2\nb 1\n"))
		})
	})

	Describe("Guard", func() {
		It("Should pass through the exit status", func() {
			Expect(cli.Guard(stderr, func() int { return 2 })).To(Equal(2))
			Expect(stderr.String()).To(BeEmpty())
		})

		It("Should report a panic and exit non-zero", func() {
			code := cli.Guard(stderr, func() int { panic("boom") })
			Expect(code).To(Equal(1))
			Expect(stderr.String()).To(ContainSubstring("treekit crashed: boom"))
		})
	})
})
