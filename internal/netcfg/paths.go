package netcfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appDir = "orbs"

// Profile names the config subdirectory. ORBS_PROFILE selects one, so
// several clients on one machine can keep separate settings and logs.
func Profile() string {
	return profileName(os.Getenv("ORBS_PROFILE"))
}

// profileName keeps [a-z0-9._-], turns spaces into '_' and drops the rest.
func profileName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		case r == ' ':
			return '_'
		}
		return -1
	}, s)
	if s == "" || s == "." || s == ".." {
		return "default"
	}
	return s
}

// ConfigDir returns <user config dir>/orbs/<profile>, creating it.
func ConfigDir() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("netcfg: config dir: %w", err)
	}
	dir := filepath.Join(root, appDir, Profile())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("netcfg: config dir: %w", err)
	}
	return dir, nil
}

// DefaultPath is where the client looks for its YAML config.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir+".yaml"), nil
}
