// Package artifact determines where the native libyuv build comes from:
// a locally built static archive, a system-installed package, or nowhere.
package artifact

// Location describes the resolved source of the native library. It is a
// closed sum: LocalStaticLibrary, SystemPackage, or Unresolved. Every
// consumer switches exhaustively over the three variants.
type Location interface {
	// Kind returns the variant tag, for diagnostics and JSON output.
	Kind() string

	isLocation()
}

// LocalStaticLibrary is a prebuilt static archive under the vendored
// source tree. A local build always wins over a system package: local
// builds are assumed intentional and fresher.
type LocalStaticLibrary struct {
	// LibraryFile is the absolute path to libyuv.a.
	LibraryFile string `json:"library_file"`

	// ObjectDir is the directory containing LibraryFile; it becomes the
	// linker search path.
	ObjectDir string `json:"object_dir"`

	// SourceDir is the vendored libyuv source root, used for include
	// path composition.
	SourceDir string `json:"source_dir"`
}

func (LocalStaticLibrary) Kind() string { return "local" }
func (LocalStaticLibrary) isLocation()  {}

// SystemPackage is a library reported by the system package registry
// (pkg-config). All slices preserve the registry's reported order; order
// can matter for resolving symbol conflicts at link time.
type SystemPackage struct {
	Libs         []string `json:"libs"`
	LinkPaths    []string `json:"link_paths"`
	IncludePaths []string `json:"include_paths"`
}

func (SystemPackage) Kind() string { return "system" }
func (SystemPackage) isLocation()  {}

// Unresolved means no artifact could be found. Resolution still proceeds
// with a bare link-by-name attempt; Hint carries the actionable guidance
// to surface only if binding generation later fails.
type Unresolved struct {
	Hint string `json:"hint"`
}

func (Unresolved) Kind() string { return "unresolved" }
func (Unresolved) isLocation()  {}

// UnresolvedHint is the guidance recorded when neither a local archive
// nor a system package exists. It names the three remedies.
const UnresolvedHint = "libyuv binaries could not be found locally or with pkg-config. " +
	"Disable the libyuv feature (YUVGEN_LIBYUV=0), install the system library libyuv-dev, " +
	"or build the vendored copy under libyuv/ with its CMake build."
