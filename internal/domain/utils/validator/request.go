package validator

import (
	"strings"
)

var supportedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".svg":  {},
}

func Content(content string) bool {
	return strings.TrimSpace(content) != ""
}

func Extension(ext string) bool {
	_, ok := supportedExtensions[strings.ToLower(ext)]
	return ok
}
