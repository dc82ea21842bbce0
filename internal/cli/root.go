package cli

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/avifio/yuvgen/internal/artifact"
	"github.com/avifio/yuvgen/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Root    string // project root override
	Target  string // target triple override
	OutDir  string // output directory override

	// cfg short-circuits environment loading in tests.
	cfg *config.Config

	// registry overrides the system package registry in tests.
	registry artifact.Registry
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Config builds the invocation configuration: environment first, then
// explicit flag overrides.
func (o *RootOptions) Config() (config.Config, error) {
	var cfg config.Config
	if o.cfg != nil {
		cfg = *o.cfg
	} else {
		loaded, err := config.FromEnv()
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if o.Root != "" {
		cfg.Root = o.Root
		m, err := config.LoadManifest(filepath.Join(cfg.Root, config.ManifestFile))
		if err != nil {
			return config.Config{}, err
		}
		cfg.Manifest = m
	}
	if o.Target != "" {
		cfg.Target = o.Target
	}
	if o.OutDir != "" {
		cfg.OutDir = o.OutDir
	}
	return cfg, nil
}

// Registry returns the system package registry, defaulting to the real
// pkg-config binary.
func (o *RootOptions) Registry() artifact.Registry {
	if o.registry != nil {
		return o.registry
	}
	return &artifact.PkgConfig{}
}

// newFormatter builds the output formatter for one command invocation,
// tagging it with a fresh UUIDv7 trace id for JSON correlation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		TraceID:   uuid.Must(uuid.NewV7()).String(),
	}
}

// NewRootCommand creates the root command for the yuvgen CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "yuvgen",
		Short: "yuvgen - libyuv binding surface generator",
		Long: `yuvgen resolves a usable native libyuv build for the target platform
and generates the typed cgo binding surface consumed by the AVIF
decoder packages.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Root, "root", "", "project root (default $YUVGEN_ROOT or .)")
	cmd.PersistentFlags().StringVar(&opts.Target, "target", "", "build target triple (default $TARGET)")

	// Add subcommands
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewResolveCommand(opts))
	cmd.AddCommand(NewSymbolsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
