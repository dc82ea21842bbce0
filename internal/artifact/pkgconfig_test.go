package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	out := "-I/opt/libyuv/include -I/usr/include/libyuv -L/opt/libyuv/lib -lyuv -lm\n"
	pkg := ParseFlags(out)

	assert.Equal(t, []string{"yuv", "m"}, pkg.Libs)
	assert.Equal(t, []string{"/opt/libyuv/lib"}, pkg.LinkPaths)
	assert.Equal(t, []string{"/opt/libyuv/include", "/usr/include/libyuv"}, pkg.IncludePaths)
}

func TestParseFlagsPreservesOrder(t *testing.T) {
	pkg := ParseFlags("-lz -lyuv -L/b -L/a")
	assert.Equal(t, []string{"z", "yuv"}, pkg.Libs)
	assert.Equal(t, []string{"/b", "/a"}, pkg.LinkPaths)
}

func TestParseFlagsDropsUnknownTokens(t *testing.T) {
	pkg := ParseFlags("-DNDEBUG -pthread -I/inc -lyuv --static")
	assert.Equal(t, []string{"yuv"}, pkg.Libs)
	assert.Equal(t, []string{"/inc"}, pkg.IncludePaths)
	assert.Empty(t, pkg.LinkPaths)
}

func TestParseFlagsEmpty(t *testing.T) {
	pkg := ParseFlags("")
	assert.Empty(t, pkg.Libs)
	assert.Empty(t, pkg.LinkPaths)
	assert.Empty(t, pkg.IncludePaths)
}

func TestParseFlagsBarePrefixes(t *testing.T) {
	// A bare "-l" or "-L" token carries no value and is dropped.
	pkg := ParseFlags("-l -L -I")
	assert.Empty(t, pkg.Libs)
	assert.Empty(t, pkg.LinkPaths)
	assert.Empty(t, pkg.IncludePaths)
}
