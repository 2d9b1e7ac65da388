// Package userdir resolves the default directory for saving generated codes.
package userdir

import (
	"os"
	"path/filepath"
)

// Localized documents folder names, checked in order.
var documentFolders = []string{"Dokumente", "Documents"}

// Resolve returns the first existing documents folder under home, or home
// itself when none exists. Pure lookup, nothing is created.
func Resolve(home string) string {
	for _, folder := range documentFolders {
		candidate := filepath.Join(home, folder)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return home
}

// DefaultTarget joins the resolved documents folder of the current user with
// the given file name. Falls back to the working directory when the home
// directory cannot be determined.
func DefaultTarget(fileName string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return fileName
	}
	return filepath.Join(Resolve(home), fileName)
}
