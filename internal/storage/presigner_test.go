package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	a := ObjectKey("videos")
	b := ObjectKey("videos")

	assert.True(t, strings.HasPrefix(a, "videos/"))
	assert.NotEqual(t, a, b, "keys must be unique per call")
}
