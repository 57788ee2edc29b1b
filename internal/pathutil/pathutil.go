package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath cleans p for the current platform, accepting Windows-style
// separators in input. An empty path stays empty rather than becoming ".".
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// VaultRelative returns target relative to the vault directory, always with
// forward slashes. The index service keys its pending queue on these, so the
// same note must produce the same string on every platform.
func VaultRelative(vaultDir, target string) (string, error) {
	base := NormalizePath(vaultDir)
	cleanedTarget := NormalizePath(target)

	rel, err := filepath.Rel(base, cleanedTarget)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}
