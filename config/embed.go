package config

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

// DefaultName is the tuning file shipped with the binary.
const DefaultName = "tuning.yaml"

//go:embed *.yaml
var ConfigFS embed.FS

// Load reads a tuning file. An empty name loads DefaultName, preferring the
// copy under config/ on disk so edits apply without a rebuild. Any other name
// is a path on disk.
func Load(name string) ([]byte, error) {
	if name == "" {
		if data, err := os.ReadFile(diskConfigPath(DefaultName)); err == nil {
			return data, nil
		}
		return ConfigFS.ReadFile(DefaultName)
	}
	return os.ReadFile(name)
}

func isConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml" || ext == ".toml"
}

func diskConfigPath(clean string) string {
	return filepath.Join("config", filepath.FromSlash(clean))
}
