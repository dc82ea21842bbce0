package artifact

import (
	"os"
	"path/filepath"
)

// LibraryName is the conventional link name of the native library.
const LibraryName = "yuv"

// archiveFile is the static archive file name produced by the vendored
// build.
const archiveFile = "libyuv.a"

// Locator resolves the artifact source for one invocation.
type Locator struct {
	// Root is the project root.
	Root string

	// VendorDir is the project-relative vendored libyuv directory.
	VendorDir string

	// Packages lists registry package names to probe, in order.
	Packages []string

	// Registry answers system package queries. Nil means no registry is
	// available (treated as probe failure).
	Registry Registry
}

// Locate determines where the compiled libyuv artifact comes from.
//
// Priority is fixed: an existing local static archive under the resolved
// build directory wins over any system package; only when both are
// missing does resolution degrade to Unresolved with a bare-link hint.
// The only side effects are filesystem existence checks and the registry
// query.
func (l *Locator) Locate(buildDir string) Location {
	sourceDir := filepath.Join(l.Root, l.VendorDir)
	objectDir := filepath.Join(sourceDir, filepath.FromSlash(buildDir))
	libraryFile := filepath.Join(objectDir, archiveFile)

	if fileExists(libraryFile) {
		return LocalStaticLibrary{
			LibraryFile: libraryFile,
			ObjectDir:   objectDir,
			SourceDir:   sourceDir,
		}
	}

	if l.Registry != nil {
		for _, name := range l.Packages {
			pkg, err := l.Registry.Probe(name)
			if err != nil {
				continue
			}
			return SystemPackage{
				Libs:         pkg.Libs,
				LinkPaths:    pkg.LinkPaths,
				IncludePaths: pkg.IncludePaths,
			}
		}
	}

	return Unresolved{Hint: UnresolvedHint}
}

// ExpectedLibraryFile returns the local archive path Locate checks,
// without touching the filesystem. Used for diagnostics.
func (l *Locator) ExpectedLibraryFile(buildDir string) string {
	return filepath.Join(l.Root, l.VendorDir, filepath.FromSlash(buildDir), archiveFile)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
