package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	dataDirName  = ".checkmate"
	defaultScope = "default"
)

//nolint:gochecknoglobals // compiled once
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// FindProjectRoot walks up from cwd looking for .git directory.
// Returns the directory containing .git, or error if not found.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		gitPath := filepath.Join(dir, ".git")
		info, err := os.Stat(gitPath)
		if err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", NotInRepoError{}
		}
		dir = parent
	}
}

// SanitizePath converts an absolute path to a safe directory name.
// "/Users/abatilo/myproject" -> "Users-abatilo-myproject"
func SanitizePath(path string) string {
	result := strings.TrimPrefix(path, "/")
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// DefaultDataDir returns the directory the file backend uses when none is
// configured: ~/.checkmate/<sanitized-project-root> inside a git repository,
// ~/.checkmate/default anywhere else.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dataDirName, scope()), nil
}

func scope() string {
	root, err := FindProjectRoot()
	if err != nil {
		return defaultScope
	}
	if s := SanitizePath(root); s != "" {
		return s
	}
	return defaultScope
}
