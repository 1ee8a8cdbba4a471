package version

import (
	"bufio"
	"os"
	"strings"
)

const (
	FileName = "version.ini"
	Unknown  = "Unknown"
	key      = "software_version"
)

// FromFile returns the software_version value of a key=value file, or
// Unknown when the file or key is missing.
func FromFile(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return Unknown
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, key) {
			continue
		}
		parts := strings.Split(line, "=")
		return strings.TrimSpace(parts[len(parts)-1])
	}
	return Unknown
}

// About returns the text of the about dialog.
func About(v string) string {
	return "Custom CMD\nVersion " + v
}
