package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for one indicator fetch.
type Config struct {
	// Provider endpoint (configurable for testing)
	BaseURL string `mapstructure:"worldbank_base_url"`

	// What to fetch
	Country   string `mapstructure:"country"`
	Indicator string `mapstructure:"indicator"`
	Format    string `mapstructure:"format"`

	LogLevel        string `mapstructure:"log_level"`
	ForecastHorizon int    `mapstructure:"forecast_horizon"`

	// Chart output
	OutputDir   string `mapstructure:"output_dir"`
	ExportName  string `mapstructure:"export_name"`
	ChartWidth  int    `mapstructure:"chart_width"`
	ChartHeight int    `mapstructure:"chart_height"`
	Show        bool   `mapstructure:"show"`
}

// setting ties a config key to its environment variable and command-line flag
type setting struct {
	key  string
	env  string
	flag string
}

var settings = []setting{
	{"worldbank_base_url", "WORLDBANK_BASE_URL", "base-url"},
	{"country", "WB_COUNTRY", "country"},
	{"indicator", "WB_INDICATOR", "indicator"},
	{"format", "WB_FORMAT", "format"},
	{"log_level", "LOG_LEVEL", "log-level"},
	{"forecast_horizon", "FORECAST_HORIZON", "horizon"},
	{"output_dir", "OUTPUT_DIR", "out-dir"},
	{"export_name", "EXPORT_NAME", "export"},
	{"chart_width", "CHART_WIDTH", "width"},
	{"chart_height", "CHART_HEIGHT", "height"},
	{"show", "SHOW_CHART", "show"},
}

const configFileFlag = "config"

// BindFlags registers the command-line flags Load reads.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(configFileFlag, "", "Path to a YAML config file")
	fs.StringP("country", "c", "", "Country code, e.g. AFG")
	fs.StringP("indicator", "i", "", "Indicator code, e.g. NY.GDP.MKTP.CN")
	fs.String("format", "json", "Response format requested from the provider")
	fs.String("base-url", "https://api.worldbank.org/v2", "Provider API root")
	fs.String("log-level", "info", "Log level: debug, info, warn, error")
	fs.Int("horizon", 5, "Years to forecast past the last observation (0 disables)")
	fs.String("out-dir", ".", "Directory the exported chart is written to")
	fs.StringP("export", "e", "", "Export the chart to <name>.html")
	fs.Int("width", 980, "Exported chart width in pixels")
	fs.Int("height", 576, "Exported chart height in pixels")
	fs.Bool("show", false, "Draw the chart in the terminal")
}

// Load reads configuration from defaults, an optional config file, a .env file,
// environment variables and finally the given flags (nil is allowed).
// Later sources take precedence.
//
// Environment variables:
//   - WB_COUNTRY, WB_INDICATOR (required unless given as flags)
//   - WB_FORMAT, WORLDBANK_BASE_URL, LOG_LEVEL, FORECAST_HORIZON
//   - OUTPUT_DIR, EXPORT_NAME, CHART_WIDTH, CHART_HEIGHT, SHOW_CHART
func Load(flags *pflag.FlagSet) (*Config, error) {
	// .env never overrides variables already set
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("worldbank_base_url", "https://api.worldbank.org/v2")
	v.SetDefault("format", "json")
	v.SetDefault("log_level", "info")
	v.SetDefault("forecast_horizon", 5)
	v.SetDefault("output_dir", ".")
	v.SetDefault("chart_width", 980)
	v.SetDefault("chart_height", 576)
	v.SetDefault("show", false)

	v.SetConfigType("yaml")
	if path := flagString(flags, configFileFlag); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.indicatorfetcher")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for _, s := range settings {
		if err := v.BindEnv(s.key, s.env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", s.env, err)
		}
		if flags == nil {
			continue
		}
		if f := flags.Lookup(s.flag); f != nil {
			if err := v.BindPFlag(s.key, f); err != nil {
				return nil, fmt.Errorf("failed to bind --%s: %w", s.flag, err)
			}
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	var missing []string
	if strings.TrimSpace(c.Country) == "" {
		missing = append(missing, "WB_COUNTRY")
	}
	if strings.TrimSpace(c.Indicator) == "" {
		missing = append(missing, "WB_INDICATOR")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if !strings.EqualFold(c.Format, "json") {
		return fmt.Errorf("unsupported format %q: only json responses can be parsed", c.Format)
	}
	if c.ForecastHorizon < 0 {
		return fmt.Errorf("invalid forecast_horizon %d (must not be negative)", c.ForecastHorizon)
	}
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return fmt.Errorf("invalid chart size %dx%d (must be positive)", c.ChartWidth, c.ChartHeight)
	}

	return nil
}

func flagString(flags *pflag.FlagSet, name string) string {
	if flags == nil {
		return ""
	}
	s, err := flags.GetString(name)
	if err != nil {
		return ""
	}
	return s
}
