package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Sympa1/qr-code-gen/internal/adapters/logger"
	"github.com/Sympa1/qr-code-gen/internal/domain/common/errorz"
	"github.com/Sympa1/qr-code-gen/internal/domain/entity"
	"github.com/Sympa1/qr-code-gen/internal/domain/utils/validator"
	"github.com/Sympa1/qr-code-gen/pkg/colorx"
	qr "github.com/Sympa1/qr-code-gen/pkg/qrcode"
)

type GeneratorService struct {
	log *logger.Logger
}

func NewGeneratorService(log *logger.Logger) *GeneratorService {
	return &GeneratorService{
		log: log,
	}
}

// Generate encodes the request content as a QR matrix, renders it in the
// requested colors and writes the image to the target path. The write is
// atomic: a failed generation never leaves a partial file behind.
func (s *GeneratorService) Generate(req entity.GenerateRequest) (*entity.GenerateResult, error) {
	if !validator.Content(req.Content) {
		return nil, fmt.Errorf("%w: %w", errorz.EncodingFailed, errorz.EmptyContent)
	}

	ext := req.Extension()
	if !validator.Extension(ext) {
		return nil, fmt.Errorf("%w: %w: %q", errorz.EncodingFailed, errorz.UnsupportedFormat, ext)
	}

	fill, err := colorx.Parse(req.FillColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", errorz.EncodingFailed, errorz.InvalidColor, err)
	}
	background, err := colorx.Parse(req.BackgroundColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", errorz.EncodingFailed, errorz.InvalidColor, err)
	}

	dir := filepath.Dir(req.TargetPath)
	if info, statErr := os.Stat(dir); statErr != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %w: %q", errorz.SaveFailed, errorz.DirectoryNotFound, dir)
	}

	cfg := qr.Config{
		Content:    req.Content,
		Foreground: fill,
		Background: background,
	}

	var data []byte
	switch ext {
	case ".png":
		data, err = cfg.RenderPNG()
	case ".jpg", ".jpeg":
		data, err = cfg.RenderJPEG()
	case ".svg":
		data, err = cfg.RenderSVG()
	}
	if err != nil {
		// Content passed the emptiness check, so a failed encode means the
		// smallest fitting QR version does not exist.
		return nil, fmt.Errorf("%w: %w: %v", errorz.EncodingFailed, errorz.ContentTooLong, err)
	}

	dimension, err := cfg.Size()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorz.EncodingFailed, err)
	}

	if err = writeAtomic(req.TargetPath, data); err != nil {
		return nil, fmt.Errorf("%w: %v", errorz.SaveFailed, err)
	}

	s.log.Infof("qr code saved to %s (%dx%d px)", req.TargetPath, dimension, dimension)

	return &entity.GenerateResult{
		Path:      req.TargetPath,
		Dimension: dimension,
	}, nil
}

// writeAtomic writes data to a uuid-suffixed temp file in the target
// directory and renames it into place.
func writeAtomic(path string, data []byte) error {
	dir, base := filepath.Split(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.New().String()))

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
