// Package harness runs YAML-defined resolution scenarios. Scenarios
// exercise the full target → artifact → directive pipeline against a
// staged project tree and a stubbed package registry.
package harness

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines one resolution conformance case.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Target is the build target triple under test.
	Target string `yaml:"target"`

	// HostOS is the host operating system for link emission
	// (defaults to "linux" for deterministic runs on any host).
	HostOS string `yaml:"host_os,omitempty"`

	// Stage lists project-relative files to create before resolution,
	// e.g. the local static archive.
	Stage []string `yaml:"stage,omitempty"`

	// Registry maps package names to stubbed pkg-config replies.
	Registry map[string]RegistryReply `yaml:"registry,omitempty"`

	// Expect describes the required outcome.
	Expect Expectation `yaml:"expect"`
}

// RegistryReply is a stubbed system package report.
type RegistryReply struct {
	Libs         []string `yaml:"libs"`
	LinkPaths    []string `yaml:"link_paths"`
	IncludePaths []string `yaml:"include_paths"`
}

// Expectation is the asserted outcome of a scenario.
type Expectation struct {
	// Source is the expected location variant: local, system, unresolved.
	Source string `yaml:"source,omitempty"`

	// BuildDir is the expected resolved build directory.
	BuildDir string `yaml:"build_dir,omitempty"`

	// Directives are the expected linker directives, in order,
	// rendered as kind=value. Search-path values are matched as
	// project-relative suffixes.
	Directives []string `yaml:"directives,omitempty"`

	// IncludeCount is the expected number of include paths (nil skips).
	IncludeCount *int `yaml:"include_count,omitempty"`

	// ErrorContains asserts resolution fails with a matching message.
	ErrorContains string `yaml:"error_contains,omitempty"`
}

// Load reads a single scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: missing name", path)
	}
	if s.HostOS == "" {
		s.HostOS = "linux"
	}
	return &s, nil
}

// LoadDir reads every *.yaml scenario under dir, sorted by file name so
// runs are deterministic.
func LoadDir(dir string) ([]*Scenario, error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no scenario files in %s", dir)
	}
	scenarios := make([]*Scenario, 0, len(entries))
	for _, path := range entries {
		s, err := Load(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}
