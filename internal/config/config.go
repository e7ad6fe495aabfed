// Package config resolves qasummary settings from command-line flags and an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys. They double as flag names and YAML keys.
const (
	KeyTasksFile    = "tasks-file"
	KeyQAReviewers  = "qa-reviewers"
	KeyTestCoverage = "test-coverage"
	KeyBugsFixed    = "bugs-fixed"
	KeyCICDLogURL   = "cicd-log-url"
	KeyOutput       = "output"
	KeyPreview      = "preview"
	KeyTheme        = "theme"
	KeyColor        = "color"
	KeyNoColor      = "no-color"
	KeyVerbose      = "verbose"
	KeyQuiet        = "quiet"
)

const DefaultOutput = "qa-summary.md"

// Config is the resolved set of options for one run.
type Config struct {
	TasksFile    string `mapstructure:"tasks-file"`
	QAReviewers  string `mapstructure:"qa-reviewers"`
	TestCoverage string `mapstructure:"test-coverage"`
	BugsFixed    string `mapstructure:"bugs-fixed"`
	CICDLogURL   string `mapstructure:"cicd-log-url"`
	Output       string `mapstructure:"output"`

	Preview bool   `mapstructure:"preview"`
	Theme   string `mapstructure:"theme"`
	Color   bool   `mapstructure:"color"`
	NoColor bool   `mapstructure:"no-color"`
	Verbose bool   `mapstructure:"verbose"`
	Quiet   bool   `mapstructure:"quiet"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: DefaultOutput,
		Theme:  "classic",
	}
}

// SetDefaults registers default values with v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyTheme, d.Theme)
	v.SetDefault(KeyPreview, d.Preview)
	v.SetDefault(KeyVerbose, d.Verbose)
	v.SetDefault(KeyQuiet, d.Quiet)
}

// Loader builds a Config. Precedence, highest first: flags set on the
// command line, the config file, flag defaults.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a Loader reading config files from fs.
func NewLoader(fs afero.Fs) *Loader {
	v := viper.New()
	v.SetFs(fs)
	SetDefaults(v)
	return &Loader{v: v}
}

// BindFlags makes flag values visible to the loader.
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	if err := l.v.BindPFlags(flags); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	return nil
}

// Load reads path (if any) and returns the validated configuration.
func (l *Loader) Load(path string) (*Config, error) {
	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validThemes = []string{"classic", "neon", "mono"}

// Validate checks the fields that can make a run fail.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("output path must not be empty")
	}
	if c.Theme != "" {
		for _, t := range validThemes {
			if strings.EqualFold(c.Theme, t) {
				return nil
			}
		}
		return fmt.Errorf("unknown theme %q (want one of %s)", c.Theme, strings.Join(validThemes, ", "))
	}
	return nil
}
