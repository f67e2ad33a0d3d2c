package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"github.com/somlint/somlint/pkg/api/somlint"
	"sigs.k8s.io/yaml"
)

const (
	// LocalFile is looked up in the working directory.
	LocalFile = "somlint.yaml"
	// UserFile is looked up relative to the XDG config directories.
	UserFile = "somlint/config.yaml"
)

// Init writes the default configuration to file. An existing file is never
// overwritten.
func Init(file string) error {
	_, err := os.Stat(file)
	if !os.IsNotExist(err) {
		return fmt.Errorf("configuration file %s already exists", file)
	}
	data, err := yaml.Marshal(somlint.DefaultConfig())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", file, err)
	}
	return os.WriteFile(file, data, 0o644)
}

// UserConfigPath returns where the per-user configuration file belongs.
func UserConfigPath() (string, error) {
	return xdg.ConfigFile(UserFile)
}

// LoadFile reads a configuration file. Unset fields keep their defaults.
func LoadFile(file string) (*somlint.Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	cfg := somlint.DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", file, err)
	}
	return cfg, nil
}

// Discover loads the explicitly given file, or else the first of LocalFile
// and the user configuration file which exists. Without any file the
// defaults are returned. The second return value names the file used.
func Discover(explicit string) (*somlint.Config, string, error) {
	if explicit != "" {
		cfg, err := LoadFile(explicit)
		return cfg, explicit, err
	}
	candidates := []string{LocalFile}
	if userFile, err := xdg.SearchConfigFile(UserFile); err == nil {
		candidates = append(candidates, userFile)
	}
	for _, candidate := range candidates {
		cfg, err := LoadFile(candidate)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		logrus.Debugf("using configuration file %s", candidate)
		return cfg, candidate, nil
	}
	return somlint.DefaultConfig(), "", nil
}
