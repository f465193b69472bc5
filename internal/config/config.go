package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default destination directories used when neither the config file nor the
// command line overrides them.
const (
	DefaultReposDir     = "./repos"
	DefaultDownloadsDir = "./downloads"
)

// Run holds the per-invocation configuration threaded explicitly through the
// dispatcher. There is no hidden global: the dispatcher builds one Run value
// up front (defaults, then config file, then flags) and hands it to every
// operation that needs a destination directory.
type Run struct {
	ReposDir     string `yaml:"github_dir"`   // Destination for cloned repositories
	DownloadsDir string `yaml:"download_dir"` // Destination for downloaded files
}

// Default returns a Run populated with the built-in directory defaults.
func Default() Run {
	return Run{
		ReposDir:     DefaultReposDir,
		DownloadsDir: DefaultDownloadsDir,
	}
}

// Load reads a YAML config file and overlays any values it sets onto the
// defaults. Keys the file omits keep their default values.
func Load(path string) (Run, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Empty values in the file fall back to the defaults rather than
	// clobbering them with "".
	if cfg.ReposDir == "" {
		cfg.ReposDir = DefaultReposDir
	}
	if cfg.DownloadsDir == "" {
		cfg.DownloadsDir = DefaultDownloadsDir
	}
	return cfg, nil
}
