package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ArtifactExtensions lists the encodings accepted for model artifacts and
// config files, in lookup order.
var ArtifactExtensions = []string{".json", ".yaml", ".yml", ".toml"}

// ExpandHome expands a leading '~' to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

// AbsDir expands '~' and returns the absolute form of dir.
func AbsDir(dir string) (string, error) {
	base, err := ExpandHome(dir)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("abs path: %w", err)
	}
	return abs, nil
}

// FormatOf maps a file extension to its decoder name: json, yaml or toml.
// It returns "" for anything else.
func FormatOf(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range ArtifactExtensions {
		if ext != known {
			continue
		}
		if ext == ".yml" {
			return "yaml"
		}
		return strings.TrimPrefix(ext, ".")
	}
	return ""
}

// SplitExt returns the basename of path without a recognised artifact
// extension. ok is false when the extension is not one of ArtifactExtensions.
func SplitExt(path string) (base string, ok bool) {
	name := filepath.Base(path)
	if FormatOf(name) == "" {
		return name, false
	}
	return strings.TrimSuffix(name, filepath.Ext(name)), true
}

// PathExists checks if the given path exists.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}
