package value

import (
	"os"
	"path/filepath"
	"strings"
)

// PathValue is a filesystem path. It is stored exactly as written; no
// cleaning or expansion happens during classification.
type PathValue string

// String returns the path text as classified.
func (p PathValue) String() string { return string(p) }

// IsAbs reports whether the path is absolute.
func (p PathValue) IsAbs() bool { return filepath.IsAbs(string(p)) }

// Expand resolves a leading "~" or "~/" against the user's home directory.
// Paths naming another user's home ("~bob") are returned unchanged.
func (p PathValue) Expand() (string, error) {
	s := string(p)
	if s != "~" && !strings.HasPrefix(s, "~/") {
		return s, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, s[1:]), nil
}

// MarshalText implements encoding.TextMarshaler.
func (p PathValue) MarshalText() ([]byte, error) {
	return []byte(p), nil
}
