package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/setupd/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "setupd.yaml"

// Load reads setupd.yaml from root and applies it over the defaults.
// A missing file is not an error.
func Load(root string) (domain.Config, error) {
	return LoadFile(filepath.Join(root, FileName), false)
}

// LoadFile reads the config at path. When required is false a missing file
// yields the defaults.
func LoadFile(path string, required bool) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y YAMLConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return Apply(path, cfg, y)
}
