package files

import (
	"os"
	"strings"
)

// Exists reports whether path names an existing filesystem entry. A race
// between this check and later use of the path is not guarded against.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadOutputFile reads the specified output file and returns its text
// content with surrounding whitespace removed.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}
