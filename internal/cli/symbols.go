package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avifio/yuvgen/internal/bindgen"
)

// NewSymbolsCommand creates the symbols command: print the fixed symbol
// allow-list. The list is the only legitimate native-call surface;
// downstream consumers must not assume any symbol outside it is present.
func NewSymbolsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "List the allow-listed libyuv symbols",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			names := bindgen.Default().Names()

			if formatter.Format == "json" {
				return formatter.Success(names)
			}
			for _, n := range names {
				fmt.Fprintln(formatter.Writer, n)
			}
			return nil
		},
	}
	return cmd
}
