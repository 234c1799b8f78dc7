package cli

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// warn reports recoverable problems on the command's error stream.
func warn(cmd *cobra.Command, diags []error) {
	printer := pterm.Warning.WithWriter(cmd.ErrOrStderr())
	for _, diag := range diags {
		printer.Println(diag.Error())
	}
}

func debugf(cmd *cobra.Command, format string, args ...interface{}) {
	pterm.Debug.WithWriter(cmd.ErrOrStderr()).Printfln(format, args...)
}

func printLines(cmd *cobra.Command, lines []string) {
	out := cmd.OutOrStdout()
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}

func joinItems[T any](items []T) string {
	return strings.Join(lo.Map(items, func(item T, _ int) string {
		return fmt.Sprint(item)
	}), ", ")
}
