// Package config builds the per-invocation configuration for yuvgen.
//
// All environment access happens here, exactly once, at process start.
// Components never read the environment themselves; they receive a Config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variable names understood by yuvgen. TARGET and OUT_DIR
// mirror the conventional build-orchestrator contract; the YUVGEN_*
// variants take precedence when both are set.
const (
	EnvTarget    = "TARGET"
	EnvOutDir    = "OUT_DIR"
	EnvAltTarget = "YUVGEN_TARGET"
	EnvAltOutDir = "YUVGEN_OUT_DIR"
	EnvRoot      = "YUVGEN_ROOT"
	EnvFeature   = "YUVGEN_LIBYUV"
)

// Config holds everything a single build invocation needs. It is
// constructed once by FromEnv and passed down; nothing in it mutates
// after construction.
type Config struct {
	// Target is the build target triple (e.g. "aarch64-linux-android").
	Target string

	// OutDir is the build output directory the generated bindings file
	// is written into.
	OutDir string

	// Root is the project root containing the wrapper header and the
	// vendored libyuv tree.
	Root string

	// Enabled reports whether the libyuv feature is on. When false the
	// whole invocation is a successful no-op.
	Enabled bool

	// HostOS is the operating system the tool runs on (runtime.GOOS).
	// Link emission keys Windows runtime extras off this, not off Target.
	HostOS string

	Manifest Manifest
}

// Manifest is the optional yuvgen.yaml project manifest. Every field has
// a default; an absent manifest file is not an error.
type Manifest struct {
	// Header is the project-relative wrapper header the generator parses.
	Header string `yaml:"header"`

	// VendorDir is the project-relative vendored libyuv source directory.
	VendorDir string `yaml:"vendor_dir"`

	// Packages lists pkg-config package names to probe, in order.
	// Distributions disagree on the name, so several candidates are tried.
	Packages []string `yaml:"packages"`

	// Output is the file name of the generated bindings file.
	Output string `yaml:"output"`

	// Package is the Go package name declared by the generated file.
	Package string `yaml:"package"`

	// BuildTag gates the generated file (//go:build <tag>).
	BuildTag string `yaml:"build_tag"`
}

// ManifestFile is the conventional manifest name looked up under Root.
const ManifestFile = "yuvgen.yaml"

// DefaultManifest returns the manifest used when no yuvgen.yaml exists.
func DefaultManifest() Manifest {
	return Manifest{
		Header:    "wrapper.h",
		VendorDir: "libyuv",
		Packages:  []string{"yuv", "libyuv"},
		Output:    "libyuv_bindings.go",
		Package:   "yuv",
		BuildTag:  "libyuv",
	}
}

// FromEnv reads the process environment once and returns the invocation
// configuration. The manifest is loaded from <root>/yuvgen.yaml when
// present.
func FromEnv() (Config, error) {
	cfg := Config{
		Target:  firstNonEmpty(os.Getenv(EnvAltTarget), os.Getenv(EnvTarget)),
		OutDir:  firstNonEmpty(os.Getenv(EnvAltOutDir), os.Getenv(EnvOutDir)),
		Root:    firstNonEmpty(os.Getenv(EnvRoot), "."),
		Enabled: featureEnabled(os.Getenv(EnvFeature)),
		HostOS:  runtime.GOOS,
	}
	if cfg.Target == "" {
		cfg.Target = HostTriple()
	}

	m, err := LoadManifest(filepath.Join(cfg.Root, ManifestFile))
	if err != nil {
		return Config{}, err
	}
	cfg.Manifest = m
	return cfg, nil
}

// LoadManifest reads a yuvgen.yaml manifest. A missing file yields the
// defaults; a malformed file is an error. Unset fields fall back to
// their defaults individually.
func LoadManifest(path string) (Manifest, error) {
	m := DefaultManifest()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var loaded Manifest
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	if loaded.Header != "" {
		m.Header = loaded.Header
	}
	if loaded.VendorDir != "" {
		m.VendorDir = loaded.VendorDir
	}
	if len(loaded.Packages) > 0 {
		m.Packages = loaded.Packages
	}
	if loaded.Output != "" {
		m.Output = loaded.Output
	}
	if loaded.Package != "" {
		m.Package = loaded.Package
	}
	if loaded.BuildTag != "" {
		m.BuildTag = loaded.BuildTag
	}
	return m, nil
}

// HostTriple synthesizes a target triple for the host when the build
// orchestrator did not provide one.
func HostTriple() string {
	arch := runtime.GOARCH
	switch arch {
	case "amd64":
		arch = "x86_64"
	case "386":
		arch = "i686"
	case "arm64":
		arch = "aarch64"
	}
	return fmt.Sprintf("%s-unknown-%s", arch, runtime.GOOS)
}

// featureEnabled interprets the feature flag variable. The feature is on
// unless explicitly disabled.
func featureEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "0", "false", "off", "no":
		return false
	default:
		return true
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
