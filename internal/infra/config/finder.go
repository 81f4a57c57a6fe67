package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/setupd/internal/domain"
)

// FindRoot walks up from startDir to the nearest directory holding
// setupd.yaml.
func FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "config.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.findroot",
			Kind: domain.KindInvalidConfig,
			Path: startDir,
			Err:  err,
		}
	}

	// A file path searches from its directory.
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		if info, err := os.Stat(filepath.Join(cur, FileName)); err == nil && !info.IsDir() {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "config.findroot",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// ResolveRoot returns the directory holding setupd.yaml above startDir, or
// startDir itself when there is none.
func ResolveRoot(startDir string) string {
	if root, err := FindRoot(startDir); err == nil {
		return root
	}
	return startDir
}
