package runconf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the run configuration threaded into codec construction.
// All fields are optional; zero values mean "no default".
type Config struct {
	// DefaultLanguage, when set, is used as the language override
	// parameter unless the caller supplies one explicitly.
	DefaultLanguage string `yaml:"default_language"`

	// Fallback values for the SMIL codec when the corresponding
	// parameters are not supplied.
	SMILAudioRef string `yaml:"smil_audio_ref"`
	SMILPageRef  string `yaml:"smil_page_ref"`
}

func Default() *Config {
	return &Config{}
}

// Load reads a YAML run configuration file. Missing keys keep their
// zero values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}
