// Package target maps a build target triple to the prebuilt artifact
// directory for the vendored libyuv tree.
package target

import (
	"errors"
	"fmt"
	"strings"
)

// Android build directories, one per supported ABI. These match the
// layout produced by the vendored Android build scripts.
const (
	androidX8664 = "build.android/x86_64"
	androidX86   = "build.android/x86"
	androidArm64 = "build.android/arm64-v8a"
	androidArm32 = "build.android/armeabi-v7a"

	// genericDir is the single build directory used for every
	// non-Android target.
	genericDir = "build"
)

// UnsupportedArchError reports an Android target whose architecture is
// not one of the four ABIs we ship prebuilt directories for.
type UnsupportedArchError struct {
	Triple string
}

func (e *UnsupportedArchError) Error() string {
	return fmt.Sprintf("unknown target_arch for android in %q: must be one of x86, x86_64, arm, aarch64", e.Triple)
}

// IsUnsupportedArch reports whether err is an UnsupportedArchError.
// Uses errors.As to handle wrapped errors.
func IsUnsupportedArch(err error) bool {
	var ue *UnsupportedArchError
	return errors.As(err, &ue)
}

// Resolve returns the vendor-relative build directory for the given
// target triple.
//
// Android targets are disambiguated by architecture substring. The
// substring checks are ordered: "x86_64" before "x86" and "aarch64"
// before "arm", since the shorter names are substrings of the longer
// ones. Everything non-Android shares one generic directory.
func Resolve(triple string) (string, error) {
	if !strings.Contains(triple, "android") {
		return genericDir, nil
	}

	switch {
	case strings.Contains(triple, "x86_64"):
		return androidX8664, nil
	case strings.Contains(triple, "x86"):
		return androidX86, nil
	case strings.Contains(triple, "aarch64"):
		return androidArm64, nil
	case strings.Contains(triple, "arm"):
		return androidArm32, nil
	default:
		return "", &UnsupportedArchError{Triple: triple}
	}
}
