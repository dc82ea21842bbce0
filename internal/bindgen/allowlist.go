package bindgen

// AllowList is the fixed, ordered set of symbols the generator emits.
// It is both a floor and a ceiling: every name must resolve in the
// parsed header or generation fails, and nothing outside the list is
// emitted. The list is versioned with wrapper.h.
type AllowList struct {
	names []string
	index map[string]int
}

// NewAllowList builds an allow-list preserving the given order.
// Duplicate names keep their first position.
func NewAllowList(names []string) *AllowList {
	a := &AllowList{index: make(map[string]int, len(names))}
	for _, n := range names {
		if _, ok := a.index[n]; ok {
			continue
		}
		a.index[n] = len(a.names)
		a.names = append(a.names, n)
	}
	return a
}

// Contains reports whether name is allow-listed.
func (a *AllowList) Contains(name string) bool {
	_, ok := a.index[name]
	return ok
}

// Names returns the list in its fixed order. Callers must not mutate
// the returned slice.
func (a *AllowList) Names() []string { return a.names }

// Len returns the number of allow-listed names.
func (a *AllowList) Len() int { return len(a.names) }

// Default returns the allow-list for the libyuv surface consumed by the
// downstream AVIF decoder: color-space conversion functions, the
// FilterMode enum and its constants, and the named conversion-matrix
// tables. libyuv exposes far more than this; the narrow surface keeps
// binary bloat and API churn exposure down.
func Default() *AllowList {
	return NewAllowList([]string{
		"ABGRToI420",
		"ABGRToJ400",
		"ABGRToJ420",
		"ABGRToJ422",
		"AR30ToAB30",
		"ARGBAttenuate",
		"ARGBToABGR",
		"ARGBToI400",
		"ARGBToI420",
		"ARGBToI422",
		"ARGBToI444",
		"ARGBToJ400",
		"ARGBToJ420",
		"ARGBToJ422",
		"ARGBUnattenuate",
		"BGRAToI420",
		"Convert16To8Plane",
		"FilterMode",
		"kFilterBilinear",
		"kFilterBox",
		"kFilterNone",
		"HalfFloatPlane",
		"I010AlphaToARGBMatrix",
		"I010AlphaToARGBMatrixFilter",
		"I010ToAR30Matrix",
		"I010ToARGBMatrix",
		"I010ToARGBMatrixFilter",
		"I012ToARGBMatrix",
		"I210AlphaToARGBMatrix",
		"I210AlphaToARGBMatrixFilter",
		"I210ToARGBMatrix",
		"I210ToARGBMatrixFilter",
		"I400ToARGBMatrix",
		"I410AlphaToARGBMatrix",
		"I410ToARGBMatrix",
		"I420AlphaToARGBMatrix",
		"I420AlphaToARGBMatrixFilter",
		"I420ToARGBMatrix",
		"I420ToARGBMatrixFilter",
		"I420ToRGB24Matrix",
		"I420ToRGB24MatrixFilter",
		"I420ToRGB565Matrix",
		"I420ToRGBAMatrix",
		"I422AlphaToARGBMatrix",
		"I422AlphaToARGBMatrixFilter",
		"I422ToARGBMatrix",
		"I422ToARGBMatrixFilter",
		"I422ToRGB24MatrixFilter",
		"I422ToRGB565Matrix",
		"I422ToRGBAMatrix",
		"I444AlphaToARGBMatrix",
		"I444ToARGBMatrix",
		"I444ToRGB24Matrix",
		"LIBYUV_VERSION",
		"NV12Scale",
		"NV12ToARGBMatrix",
		"NV12ToRGB565Matrix",
		"NV21ToARGBMatrix",
		"NV21ToNV12",
		"P010ToAR30Matrix",
		"P010ToARGBMatrix",
		"P010ToI010",
		"RAWToI420",
		"RAWToJ400",
		"RAWToJ420",
		"RGB24ToI420",
		"RGB24ToJ400",
		"RGB24ToJ420",
		"RGBAToI420",
		"RGBAToJ400",
		"ScalePlane",
		"ScalePlane_12",
		"YuvConstants",
		"kYuv2020Constants",
		"kYuvF709Constants",
		"kYuvH709Constants",
		"kYuvI601Constants",
		"kYuvJPEGConstants",
		"kYuvV2020Constants",
		"kYvu2020Constants",
		"kYvuF709Constants",
		"kYvuH709Constants",
		"kYvuI601Constants",
		"kYvuJPEGConstants",
		"kYvuV2020Constants",
	})
}
