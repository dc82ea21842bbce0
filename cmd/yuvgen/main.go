// Command yuvgen is the build-time generator for the libyuv cgo binding
// surface. It is meant to be invoked by the build orchestrator (or via
// go:generate) before the decoder packages compile.
package main

import (
	"fmt"
	"os"

	"github.com/avifio/yuvgen/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands handle their own formatted output; this is the
		// single-line failure summary and the exit code.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
