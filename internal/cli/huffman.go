package cli

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/treekit/freqtable"
	"github.com/chronos-tachyon/treekit/huffman"
)

func newHuffmanCommand(app *App) *cobra.Command {
	var file string

	huffmanCmd := &cobra.Command{
		Use:   "huffman",
		Short: "Work with Huffman codes built from a frequency table",
		Long: `Build a Huffman tree from a frequency table and use it.

The table has one record per line: a character, whitespace, and a
non-negative frequency.  Malformed lines are skipped with a warning.`,
	}
	huffmanCmd.PersistentFlags().StringVarP(&file, "file", "f", app.Config.Frequencies, "frequency table to build the tree from")

	load := func(cmd *cobra.Command) (*huffman.Tree, error) {
		table, diags, err := freqtable.Load(app.Fs, file)
		if err != nil {
			return nil, err
		}
		warn(cmd, diags)
		debugf(cmd, "loaded %d symbols (total frequency %d) from %s", len(table), table.Total(), file)

		tree := huffman.Build(table)
		tree.GenerateCodes()
		return tree, nil
	}

	codesCmd := &cobra.Command{
		Use:   "codes",
		Short: "Print the code table",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := load(cmd)
			if err != nil {
				return err
			}

			tableData := pterm.TableData{{"Character", "Frequency", "Code"}}
			tableData = append(tableData, lo.Map(tree.Codes(), func(entry huffman.CodeEntry, _ int) []string {
				return []string{entry.Symbol.String(), strconv.FormatUint(entry.Freq, 10), string(entry.Code)}
			})...)

			str, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
			if err != nil {
				return errors.Wrap(err, "render code table")
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Huffman Codes:")
			fmt.Fprintln(out, str)
			fmt.Fprintf(out, "Weighted length: %d bits\n", tree.WeightedLength())
			return nil
		},
	}

	encodeCmd := &cobra.Command{
		Use:     "encode TEXT",
		Short:   "Encode text into a bit string",
		Example: `treekit huffman encode kapiolani`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := load(cmd)
			if err != nil {
				return err
			}
			encoded, diags := tree.Encode(args[0])
			warn(cmd, diags)
			fmt.Fprintln(cmd.OutOrStdout(), encoded)
			return nil
		},
	}

	decodeCmd := &cobra.Command{
		Use:   "decode BITS",
		Short: "Decode a bit string into text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := load(cmd)
			if err != nil {
				return err
			}
			decoded, diags := tree.Decode(args[0])
			warn(cmd, diags)
			fmt.Fprintln(cmd.OutOrStdout(), decoded)
			return nil
		},
	}

	var dump bool
	treeCmd := &cobra.Command{
		Use:   "tree",
		Short: "Draw the Huffman tree",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := load(cmd)
			if err != nil {
				return err
			}
			if dump {
				_, err := tree.Dump(cmd.OutOrStdout())
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Breadth-First Display of Tree:")
			printLines(cmd, tree.Render())
			return nil
		},
	}
	treeCmd.Flags().BoolVar(&dump, "dump", false, "print every node with its path instead of drawing")

	countCmd := &cobra.Command{
		Use:   "count TEXTFILE",
		Short: "Write a frequency table for the characters of a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := afero.ReadFile(app.Fs, args[0])
			if err != nil {
				return errors.Wrap(err, "read text")
			}
			return freqtable.Write(cmd.OutOrStdout(), freqtable.Count(string(raw)))
		},
	}

	huffmanCmd.AddCommand(codesCmd, encodeCmd, decodeCmd, treeCmd, countCmd)
	return huffmanCmd
}
