package service

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sympa1/qr-code-gen/internal/adapters/logger"
	"github.com/Sympa1/qr-code-gen/internal/domain/common/errorz"
	"github.com/Sympa1/qr-code-gen/internal/domain/entity"
)

func newTestGenerator(t *testing.T) *GeneratorService {
	t.Helper()

	require.NoError(t, logger.Init(logger.Config{}))
	log, err := logger.Named("generator")
	require.NoError(t, err)

	return NewGeneratorService(log)
}

func TestGenerateWritesFile(t *testing.T) {
	gen := newTestGenerator(t)
	target := filepath.Join(t.TempDir(), "out.png")

	result, err := gen.Generate(entity.GenerateRequest{
		Content:         "https://example.com",
		FillColor:       "#000000",
		BackgroundColor: "#FFFFFF",
		TargetPath:      target,
	})
	require.NoError(t, err)
	assert.Equal(t, target, result.Path)

	data, err := os.ReadFile(target)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, result.Dimension, img.Bounds().Dx())
	assert.Equal(t, result.Dimension, img.Bounds().Dy())
}

func TestGenerateIdempotent(t *testing.T) {
	gen := newTestGenerator(t)
	target := filepath.Join(t.TempDir(), "out.png")
	req := entity.GenerateRequest{
		Content:         "same in, same out",
		FillColor:       "Black",
		BackgroundColor: "White",
		TargetPath:      target,
	}

	_, err := gen.Generate(req)
	require.NoError(t, err)
	first, err := os.ReadFile(target)
	require.NoError(t, err)

	_, err = gen.Generate(req)
	require.NoError(t, err)
	second, err := os.ReadFile(target)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateSVG(t *testing.T) {
	gen := newTestGenerator(t)
	target := filepath.Join(t.TempDir(), "out.svg")

	_, err := gen.Generate(entity.GenerateRequest{
		Content:         "vector output",
		FillColor:       "#102040",
		BackgroundColor: "#f0f0e0",
		TargetPath:      target,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("<svg")))

	preview, err := LoadPreview(target, 200, 200)
	require.NoError(t, err)
	assert.LessOrEqual(t, preview.Bounds().Dx(), 200)
}

func TestGenerateMissingDirectory(t *testing.T) {
	gen := newTestGenerator(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "does-not-exist", "out.png")

	_, err := gen.Generate(entity.GenerateRequest{
		Content:         "hello",
		FillColor:       "Black",
		BackgroundColor: "White",
		TargetPath:      target,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errorz.SaveFailed))
	assert.True(t, errors.Is(err, errorz.DirectoryNotFound))

	// No partial file anywhere under the parent.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateEmptyContent(t *testing.T) {
	gen := newTestGenerator(t)

	_, err := gen.Generate(entity.GenerateRequest{
		Content:         "   ",
		FillColor:       "Black",
		BackgroundColor: "White",
		TargetPath:      filepath.Join(t.TempDir(), "out.png"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errorz.EncodingFailed))
	assert.True(t, errors.Is(err, errorz.EmptyContent))
}

func TestGenerateInvalidColor(t *testing.T) {
	gen := newTestGenerator(t)

	_, err := gen.Generate(entity.GenerateRequest{
		Content:         "hello",
		FillColor:       "notacolor",
		BackgroundColor: "White",
		TargetPath:      filepath.Join(t.TempDir(), "out.png"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errorz.EncodingFailed))
	assert.True(t, errors.Is(err, errorz.InvalidColor))
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	gen := newTestGenerator(t)
	dir := t.TempDir()

	_, err := gen.Generate(entity.GenerateRequest{
		Content:         "hello",
		FillColor:       "Black",
		BackgroundColor: "White",
		TargetPath:      filepath.Join(dir, "out.gif"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errorz.EncodingFailed))
	assert.True(t, errors.Is(err, errorz.UnsupportedFormat))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGeneratePreviewRoundTrip(t *testing.T) {
	gen := newTestGenerator(t)
	target := filepath.Join(t.TempDir(), "out.jpg")

	_, err := gen.Generate(entity.GenerateRequest{
		Content:         "preview me",
		FillColor:       "Black",
		BackgroundColor: "White",
		TargetPath:      target,
	})
	require.NoError(t, err)

	preview, err := LoadPreview(target, 200, 200)
	require.NoError(t, err)
	assert.LessOrEqual(t, preview.Bounds().Dx(), 200)
	assert.LessOrEqual(t, preview.Bounds().Dy(), 200)
}
