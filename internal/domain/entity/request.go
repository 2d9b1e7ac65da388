package entity

import (
	"path/filepath"
	"strings"
)

// GenerateRequest carries one QR generation. It is built fresh per call and
// never outlives it.
type GenerateRequest struct {
	Content         string
	FillColor       string
	BackgroundColor string
	TargetPath      string
}

// Extension returns the lower-cased target file extension, dot included.
func (r GenerateRequest) Extension() string {
	return strings.ToLower(filepath.Ext(r.TargetPath))
}

// GenerateResult reports a finished generation back to the shell.
type GenerateResult struct {
	Path      string
	Dimension int
}
