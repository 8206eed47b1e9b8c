package config

// settingsFile represents the structure of the optional bun-deps.yaml
// configuration file.
type settingsFile struct {
	Registry       string `yaml:"registry"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	NoCache        bool   `yaml:"no_cache"`
}
