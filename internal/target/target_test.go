package target

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAndroidArchitectures(t *testing.T) {
	tests := []struct {
		triple string
		want   string
	}{
		{"x86_64-linux-android", "build.android/x86_64"},
		{"x86-linux-android", "build.android/x86"},
		{"aarch64-linux-android", "build.android/arm64-v8a"},
		{"armv7-linux-androideabi", "build.android/armeabi-v7a"},
	}

	for _, tt := range tests {
		t.Run(tt.triple, func(t *testing.T) {
			got, err := Resolve(tt.triple)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAndroidDirectoriesDistinct(t *testing.T) {
	triples := []string{
		"x86_64-linux-android",
		"x86-linux-android",
		"aarch64-linux-android",
		"armv7-linux-androideabi",
	}

	seen := map[string]string{}
	for _, triple := range triples {
		dir, err := Resolve(triple)
		require.NoError(t, err)
		prev, dup := seen[dir]
		require.False(t, dup, "%s and %s map to the same directory %s", prev, triple, dir)
		seen[dir] = triple
	}
}

func TestResolveAndroidOrderingX86(t *testing.T) {
	// "x86_64" contains "x86": the longer pattern must win.
	got, err := Resolve("x86_64-unknown-linux-android")
	require.NoError(t, err)
	assert.Equal(t, "build.android/x86_64", got)
}

func TestResolveAndroidOrderingArm(t *testing.T) {
	// "aarch64" targets must not fall into the 32-bit arm directory.
	got, err := Resolve("aarch64-linux-android")
	require.NoError(t, err)
	assert.Equal(t, "build.android/arm64-v8a", got)
}

func TestResolveNonAndroidGeneric(t *testing.T) {
	for _, triple := range []string{
		"x86_64-unknown-linux-gnu",
		"aarch64-apple-darwin",
		"x86_64-pc-windows-gnu",
		"armv7-unknown-linux-gnueabihf",
		"",
	} {
		got, err := Resolve(triple)
		require.NoError(t, err)
		assert.Equal(t, "build", got, "triple %q", triple)
	}
}

func TestResolveAndroidUnknownArch(t *testing.T) {
	_, err := Resolve("riscv64-linux-android")
	require.Error(t, err)
	assert.True(t, IsUnsupportedArch(err))
	assert.Contains(t, err.Error(), "must be one of x86, x86_64, arm, aarch64")
}

func TestIsUnsupportedArchWrapped(t *testing.T) {
	_, err := Resolve("mips-linux-android")
	require.Error(t, err)
	wrapped := fmt.Errorf("resolving target: %w", err)
	assert.True(t, IsUnsupportedArch(wrapped))
	assert.False(t, IsUnsupportedArch(fmt.Errorf("unrelated")))
}
