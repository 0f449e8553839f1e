package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildObjectKey(t *testing.T) {
	key := buildObjectKey("logo.png")
	assert.True(t, strings.HasPrefix(key, "uploads/"))
	assert.True(t, strings.HasSuffix(key, "-logo.png"))
}

func TestBuildObjectKey_SanitizesName(t *testing.T) {
	key := buildObjectKey("my photo (1).png")
	assert.NotContains(t, key, " ")
	assert.NotContains(t, key, "(")
	assert.True(t, strings.HasSuffix(key, ".png"))
}

func TestBuildObjectKey_StripsDirectories(t *testing.T) {
	key := buildObjectKey("../../etc/passwd")
	assert.NotContains(t, key, "..")
	assert.True(t, strings.HasSuffix(key, "-passwd"))
}

func TestBuildObjectKey_EmptyName(t *testing.T) {
	key := buildObjectKey("")
	assert.True(t, strings.HasSuffix(key, "-upload"))
}

func TestBuildObjectKey_Unique(t *testing.T) {
	assert.NotEqual(t, buildObjectKey("a.png"), buildObjectKey("a.png"))
}
