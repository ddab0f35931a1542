package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// addGitignoreEntry appends path to the repository .gitignore unless an
// identical line exists. It reports whether the file changed.
func addGitignoreEntry(repoRoot, path string) (bool, error) {
	entry, err := gitignoreEntry(repoRoot, path)
	if err != nil {
		return false, err
	}

	gitignorePath := filepath.Join(repoRoot, ".gitignore")
	var existing []byte
	if data, err := os.ReadFile(gitignorePath); err == nil {
		existing = data
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("read .gitignore: %w", err)
	}

	for _, line := range strings.Split(string(existing), "\n") {
		if strings.TrimSpace(line) == entry {
			return false, nil
		}
	}

	updated := string(existing)
	if len(updated) > 0 && !strings.HasSuffix(updated, "\n") {
		updated += "\n"
	}
	updated += entry + "\n"
	if err := os.WriteFile(gitignorePath, []byte(updated), 0o644); err != nil {
		return false, fmt.Errorf("write .gitignore: %w", err)
	}
	return true, nil
}

// gitignoreEntry converts path into a slash-separated path relative to the
// repository root.
func gitignoreEntry(repoRoot, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("gitignore path is empty")
	}
	clean := filepath.Clean(path)
	if filepath.IsAbs(clean) {
		rel, err := filepath.Rel(repoRoot, clean)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", path, err)
		}
		clean = rel
	}
	if clean == "." || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("%q is outside the repo root", path)
	}
	return filepath.ToSlash(clean), nil
}
