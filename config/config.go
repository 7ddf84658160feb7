package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// envPrefix is prepended to upper-cased field names for environment
// variable overrides, e.g. CHILDES_EXTENSION.
const envPrefix = "CHILDES_"

// Options configures transcript analysis.
type Options struct {
	// Extension is the recording file extension the dataset walker
	// accepts, including the leading dot.
	Extension string `yaml:"extension"`

	// IgnoreTokens lists substrings stripped from token edges during
	// tokenization.
	IgnoreTokens []string `yaml:"ignore_tokens"`

	// MLUIgnore lists words excluded entirely from MLU word counts.
	MLUIgnore []string `yaml:"mlu_ignore"`

	// DefaultSpeaker is the speaker marker analyses default to.
	DefaultSpeaker string `yaml:"default_speaker"`
}

// Default returns the standard CHILDES analysis options.
func Default() Options {
	return Options{
		Extension:      ".cha",
		IgnoreTokens:   []string{",", ".", "?", "!", "(.)", "[?]"},
		MLUIgnore:      []string{",", ".", "?", "!", "(.)", "[?]"},
		DefaultSpeaker: "*CHI",
	}
}

// Load reads options from a YAML file, starting from Default and applying
// environment overrides last. A missing file is not an error; the defaults
// (plus environment) are returned.
func Load(path string) (Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return Options{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Options{}, err
	}

	opts.applyEnv()
	return opts, nil
}

// Save writes the options to a YAML file, creating parent directories as
// needed.
func (o Options) Save(path string) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (o *Options) applyEnv() {
	if v := os.Getenv(envPrefix + "EXTENSION"); v != "" {
		o.Extension = v
	}
	if v := os.Getenv(envPrefix + "DEFAULT_SPEAKER"); v != "" {
		o.DefaultSpeaker = v
	}
}
