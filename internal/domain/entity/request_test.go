package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".png", GenerateRequest{TargetPath: "/tmp/out.PNG"}.Extension())
	assert.Equal(t, ".svg", GenerateRequest{TargetPath: "code.svg"}.Extension())
	assert.Equal(t, "", GenerateRequest{TargetPath: "/tmp/noext"}.Extension())
}
