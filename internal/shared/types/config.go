package types

// Config represents the application configuration. Values are read from the
// environment first, then overridden by an optional TOML/YAML/JSON config
// file and finally by CLI flags.
type Config struct {
	Table       string `json:"table" yaml:"table" toml:"table" envconfig:"DDB_TABLE"`
	Bucket      string `json:"bucket" yaml:"bucket" toml:"bucket" envconfig:"S3_BUCKET_NAME"`
	Region      string `json:"region" yaml:"region" toml:"region" envconfig:"AWS_REGION" default:"eu-central-1"`
	OutputPath  string `json:"output_path" yaml:"output_path" toml:"output_path" envconfig:"OUTPUT_PATH" default:"cost_data.json"`
	TrendWindow int    `json:"trend_window" yaml:"trend_window" toml:"trend_window" envconfig:"TREND_WINDOW" default:"30"`
	LogLevel    string `json:"log_level" yaml:"log_level" toml:"log_level" envconfig:"LOG_LEVEL" default:"info"`
	Env         string `json:"env" yaml:"env" toml:"env" envconfig:"APP_ENV" default:"development"`

	// CategoryKeywords overrides the built-in classification keyword table,
	// keyed by category name. Only settable through the config file.
	CategoryKeywords map[string][]string `json:"category_keywords" yaml:"category_keywords" toml:"category_keywords" ignored:"true"`
}

// MergeFile overlays non-zero values from a loaded config file.
func (c *Config) MergeFile(file *Config) {
	if file == nil {
		return
	}
	if file.Table != "" {
		c.Table = file.Table
	}
	if file.Bucket != "" {
		c.Bucket = file.Bucket
	}
	if file.Region != "" {
		c.Region = file.Region
	}
	if file.OutputPath != "" {
		c.OutputPath = file.OutputPath
	}
	if file.TrendWindow > 0 {
		c.TrendWindow = file.TrendWindow
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
	if file.Env != "" {
		c.Env = file.Env
	}
	if len(file.CategoryKeywords) > 0 {
		c.CategoryKeywords = file.CategoryKeywords
	}
}

// MergeArgs overlays explicitly provided CLI flags, which win over both the
// environment and the config file.
func (c *Config) MergeArgs(args *CLIArgs) {
	if args == nil {
		return
	}
	if args.Table != "" {
		c.Table = args.Table
	}
	if args.Bucket != "" {
		c.Bucket = args.Bucket
	}
	if args.OutputPath != "" {
		c.OutputPath = args.OutputPath
	}
	if args.TrendWindow > 0 {
		c.TrendWindow = args.TrendWindow
	}
}
