package config

// Config is the top-level bitbooks configuration.
type Config struct {
	Defaults DefaultsConfig `mapstructure:"defaults"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DefaultsConfig holds default values for a tracking session.
type DefaultsConfig struct {
	Sort     string `mapstructure:"sort"`      // initial sort criterion
	SeedFile string `mapstructure:"seed_file"` // optional YAML list loaded at startup
}

// UIConfig holds presentation settings.
type UIConfig struct {
	NoColor bool `mapstructure:"no_color"`
}
