package artifact

import (
	"fmt"
	"os/exec"
	"strings"
)

// Registry answers system package queries. The production implementation
// shells out to pkg-config; tests substitute a stub.
type Registry interface {
	// Probe looks up a package by name and returns its link/include
	// metadata, or an error if the package is unknown.
	Probe(name string) (*Package, error)
}

// Package is the registry's report for one installed library. Slice
// order is the registry's reported order and must be preserved.
type Package struct {
	Libs         []string
	LinkPaths    []string
	IncludePaths []string
}

// PkgConfig queries the system pkg-config binary.
type PkgConfig struct {
	// Path overrides the binary name, for tests. Empty means "pkg-config".
	Path string
}

// Probe runs `pkg-config --cflags --libs <name>` and parses the reported
// flags. Token order is preserved.
func (p *PkgConfig) Probe(name string) (*Package, error) {
	bin := p.Path
	if bin == "" {
		bin = "pkg-config"
	}
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("pkg-config not available: %w", err)
	}

	out, err := exec.Command(bin, "--cflags", "--libs", name).Output()
	if err != nil {
		return nil, fmt.Errorf("pkg-config probe for %q failed: %w", name, err)
	}

	pkg := ParseFlags(string(out))
	if len(pkg.Libs) == 0 && len(pkg.LinkPaths) == 0 && len(pkg.IncludePaths) == 0 {
		return nil, fmt.Errorf("pkg-config reported no usable flags for %q", name)
	}
	return pkg, nil
}

// ParseFlags splits pkg-config output into libraries, link search paths
// and include paths. Unrecognized tokens (defines, ABI flags) are
// dropped; the binding generator has no use for them.
func ParseFlags(out string) *Package {
	pkg := &Package{}
	for _, tok := range strings.Fields(out) {
		switch {
		case strings.HasPrefix(tok, "-l") && len(tok) > 2:
			pkg.Libs = append(pkg.Libs, tok[2:])
		case strings.HasPrefix(tok, "-L") && len(tok) > 2:
			pkg.LinkPaths = append(pkg.LinkPaths, tok[2:])
		case strings.HasPrefix(tok, "-I") && len(tok) > 2:
			pkg.IncludePaths = append(pkg.IncludePaths, tok[2:])
		}
	}
	return pkg
}
