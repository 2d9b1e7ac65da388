package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContent(t *testing.T) {
	t.Parallel()

	assert.True(t, Content("hello"))
	assert.False(t, Content(""))
	assert.False(t, Content("   "))
}

func TestExtension(t *testing.T) {
	t.Parallel()

	for _, ext := range []string{".png", ".jpg", ".jpeg", ".svg", ".PNG"} {
		assert.True(t, Extension(ext), ext)
	}
	for _, ext := range []string{"", ".gif", ".bmp", ".pdf", "png"} {
		assert.False(t, Extension(ext), ext)
	}
}
