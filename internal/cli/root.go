package cli

import (
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/treekit/internal/config"
)

// App carries what every command needs.
type App struct {
	Fs     afero.Fs
	Config *config.Config

	verbose bool
}

// NewRootCommand assembles the command tree for app.
func NewRootCommand(app *App) *cobra.Command {
	if app.Config == nil {
		app.Config = &config.Config{Frequencies: config.DefaultFrequencies}
	}

	rootCmd := &cobra.Command{
		Use:           "treekit",
		Short:         "Binary search tree and Huffman tree playground",
		Long:          `Build binary search trees and Huffman coding trees, draw them, and encode or decode text with them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if app.verbose {
				pterm.EnableDebugMessages()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", app.Config.Verbose, "print debug output")

	rootCmd.AddCommand(newBSTCommand(app))
	rootCmd.AddCommand(newHuffmanCommand(app))
	return rootCmd
}

// Execute runs the CLI against the real filesystem and environment and
// returns the process exit status.
func Execute() int {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println(err)
		return 2
	}

	rootCmd := NewRootCommand(&App{Fs: afero.NewOsFs(), Config: cfg})
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.WithWriter(rootCmd.ErrOrStderr()).Println(err)
		return 1
	}
	return 0
}

// Guard runs fn and returns its exit status.  A panic in fn is reported on w
// and turned into status 1.
func Guard(w io.Writer, fn func() int) (code int) {
	defer func() {
		if r := recover(); r != nil {
			pterm.Error.WithWriter(w).Printfln("treekit crashed: %v", r)
			code = 1
		}
	}()
	return fn()
}
