package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/avifio/yuvgen/internal/bindgen"
	"github.com/avifio/yuvgen/internal/config"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions

	// parse overrides the header parser in tests.
	parse bindgen.ParseFunc
}

// GenerateResult is the success payload of the generate command.
type GenerateResult struct {
	Target     string `json:"target"`
	Source     string `json:"source"`
	OutputFile string `json:"output_file"`
	Symbols    int    `json:"symbols"`
	Skipped    bool   `json:"skipped,omitempty"`
}

// NewGenerateCommand creates the generate command, the main build
// operation: resolve the artifact, then parse the wrapper header and
// write the bindings file.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the libyuv cgo binding surface",
		Long: `Generate the typed cgo bindings file for the allow-listed libyuv
symbols. The native library is resolved first: a local static archive
under the vendored tree wins, then a pkg-config reported system
package, then a bare link attempt.

Either the binding surface generates completely or the build aborts;
there is no partial output.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "output directory (default $OUT_DIR)")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	cfg, err := opts.Config()
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading configuration", err)
	}

	// Feature flag off: the whole subsystem is a successful no-op.
	if !cfg.Enabled {
		formatter.VerboseLog("libyuv feature disabled (%s), nothing to do", config.EnvFeature)
		return outputGenerateSuccess(formatter, &GenerateResult{Target: cfg.Target, Skipped: true})
	}

	if cfg.OutDir == "" {
		msg := fmt.Sprintf("no output directory: set %s or pass --out", config.EnvOutDir)
		_ = formatter.Error(ErrCodeConfig, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	res, err := ResolveArtifact(cfg, opts.Registry())
	if err != nil {
		return resolutionError(formatter, err)
	}

	headerPath := filepath.Join(cfg.Root, cfg.Manifest.Header)

	// Advisory diagnostics; not part of the output contract.
	formatter.Diag("resolved library dir: %s", filepath.Dir(res.LibraryFile))
	formatter.Diag("local artifact exists: %t", res.LocalExists)
	formatter.Diag("include flags: %s", res.Includes)
	formatter.Diag("header: %s", headerPath)

	allow := bindgen.Default()
	gen := &bindgen.Generator{
		Header:     headerPath,
		Includes:   res.Includes,
		Directives: res.Directives,
		Allow:      allow,
		OutDir:     cfg.OutDir,
		OutFile:    cfg.Manifest.Output,
		Package:    cfg.Manifest.Package,
		BuildTag:   cfg.Manifest.BuildTag,
		Parse:      opts.parse,
	}

	outPath, err := gen.Run(res.Location)
	if err != nil {
		return outputGenerateError(formatter, err)
	}

	return outputGenerateSuccess(formatter, &GenerateResult{
		Target:     cfg.Target,
		Source:     res.Source,
		OutputFile: outPath,
		Symbols:    allow.Len(),
	})
}

func outputGenerateSuccess(formatter *OutputFormatter, result *GenerateResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	if result.Skipped {
		fmt.Fprintln(formatter.Writer, "libyuv feature disabled; no bindings generated")
		return nil
	}
	fmt.Fprintf(formatter.Writer, "✓ Generated %s (%d allow-listed symbols, source: %s)\n",
		result.OutputFile, result.Symbols, result.Source)
	return nil
}

func outputGenerateError(formatter *OutputFormatter, err error) error {
	code := ErrCodeGeneration
	if bindgen.IsWriteFailure(err) {
		code = ErrCodeWrite
	}
	_ = formatter.Error(code, err.Error(), nil)
	return WrapExitError(ExitFailure, fmt.Sprintf("%s: %s", code, err.Error()), err)
}
