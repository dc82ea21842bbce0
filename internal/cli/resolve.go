package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avifio/yuvgen/internal/artifact"
	"github.com/avifio/yuvgen/internal/config"
	"github.com/avifio/yuvgen/internal/include"
	"github.com/avifio/yuvgen/internal/link"
	"github.com/avifio/yuvgen/internal/target"
)

// Resolution is the outcome of target and artifact resolution, shared by
// the generate and resolve commands.
type Resolution struct {
	Target      string            `json:"target"`
	BuildDir    string            `json:"build_dir"`
	LibraryFile string            `json:"library_file"`
	LocalExists bool              `json:"local_exists"`
	Source      string            `json:"source"` // location variant tag
	Location    artifact.Location `json:"location"`
	Directives  []link.Directive  `json:"directives"`
	Includes    include.Paths     `json:"include_paths"`
}

// ResolveArtifact runs Target Resolver -> Artifact Locator -> directive
// and include composition for the given configuration. The registry is
// injectable so tests can stub pkg-config.
func ResolveArtifact(cfg config.Config, registry artifact.Registry) (*Resolution, error) {
	buildDir, err := target.Resolve(cfg.Target)
	if err != nil {
		return nil, err
	}

	locator := &artifact.Locator{
		Root:      cfg.Root,
		VendorDir: cfg.Manifest.VendorDir,
		Packages:  cfg.Manifest.Packages,
		Registry:  registry,
	}
	loc := locator.Locate(buildDir)
	_, localExists := loc.(artifact.LocalStaticLibrary)

	return &Resolution{
		Target:      cfg.Target,
		BuildDir:    buildDir,
		LibraryFile: locator.ExpectedLibraryFile(buildDir),
		LocalExists: localExists,
		Source:      loc.Kind(),
		Location:    loc,
		Directives:  link.Emit(loc, cfg.HostOS),
		Includes:    include.FromLocation(loc),
	}, nil
}

// ResolveOptions holds flags for the resolve command.
type ResolveOptions struct {
	*RootOptions
}

// NewResolveCommand creates the resolve command: run artifact resolution
// and report the outcome without generating anything.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the native libyuv artifact for the target",
		Long: `Resolve where the native libyuv build comes from for the configured
target: a locally built static archive, a system package reported by
pkg-config, or unresolved. Prints the linker directives and include
paths that generation would use.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(opts, cmd)
		},
	}
	return cmd
}

func runResolve(opts *ResolveOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	cfg, err := opts.Config()
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading configuration", err)
	}

	res, err := ResolveArtifact(cfg, opts.Registry())
	if err != nil {
		return resolutionError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(res)
	}

	fmt.Fprintf(formatter.Writer, "target:      %s\n", res.Target)
	fmt.Fprintf(formatter.Writer, "build dir:   %s\n", res.BuildDir)
	fmt.Fprintf(formatter.Writer, "library:     %s (exists: %t)\n", res.LibraryFile, res.LocalExists)
	fmt.Fprintf(formatter.Writer, "source:      %s\n", res.Source)
	for _, d := range res.Directives {
		fmt.Fprintf(formatter.Writer, "directive:   %s\n", d)
	}
	if len(res.Includes) > 0 {
		fmt.Fprintf(formatter.Writer, "includes:    %s\n", res.Includes)
	}
	if u, ok := res.Location.(artifact.Unresolved); ok {
		fmt.Fprintf(formatter.Writer, "note:        %s\n", u.Hint)
	}
	return nil
}

// resolutionError maps a target/artifact error to CLI output and exit
// code. Unsupported architectures abort the build.
func resolutionError(formatter *OutputFormatter, err error) error {
	var ue *target.UnsupportedArchError
	if errors.As(err, &ue) {
		_ = formatter.Error(ErrCodeUnsupportedArch, ue.Error(), nil)
		return WrapExitError(ExitFailure, ue.Error(), err)
	}
	_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
	return WrapExitError(ExitFailure, err.Error(), err)
}
