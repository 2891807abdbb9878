package config

type Config struct {
	Source      SourceConfig      `yaml:"source"`
	Destination DestinationConfig `yaml:"destination"`
	Retention   RetentionConfig   `yaml:"retention"`
	Logging     LoggingConfig     `yaml:"logging"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

type SourceConfig struct {
	Path string `yaml:"path"` // directory that gets pruned
	Log  string `yaml:"log"`  // inventory + deletions
}

type DestinationConfig struct {
	Path string `yaml:"path"` // backup directory
	Log  string `yaml:"log"`  // copies
}

type RetentionConfig struct {
	// files older than this many whole days are deleted, the rest copied
	DeleteAfterDays int `yaml:"deleteAfterDays"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "console", "json"
}

type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // node_exporter textfile path, empty = disabled
}

// Default returns the built-in configuration used when no file is given.
func Default() Config {
	return Config{
		Source: SourceConfig{
			Path: "/home/valcann/backupsFrom",
			Log:  "/home/valcann/backupsFrom.log",
		},
		Destination: DestinationConfig{
			Path: "/home/valcann/backupsTo",
			Log:  "/home/valcann/backupsTo.log",
		},
		Retention: RetentionConfig{DeleteAfterDays: 3},
		Logging:   LoggingConfig{Level: "info", Format: "console"},
	}
}
