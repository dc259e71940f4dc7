// Package config loads mcpc user configuration with viper.
//
// Values come from, in increasing precedence: built-in defaults, the YAML
// config file ($XDG_CONFIG_HOME/mcpc/config.yaml), and MCPC_* environment
// variables (MCPC_GIT_BACKEND for git.backend). Command-line flags are
// applied on top by the cli package.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jakoblorz/go-mcpc/internal/errors"
	"github.com/jakoblorz/go-mcpc/internal/git"
	"github.com/jakoblorz/go-mcpc/internal/models"
)

const (
	appName   = "mcpc"
	fileName  = "config"
	fileType  = "yaml"
	envPrefix = "MCPC"
)

// Config is the user configuration
type Config struct {
	// Language is used when -l is not given
	Language string `mapstructure:"language"`

	Tool      ToolConfig      `mapstructure:"tool"`
	Git       GitConfig       `mapstructure:"git"`
	Preflight PreflightConfig `mapstructure:"preflight"`
	Install   InstallConfig   `mapstructure:"install"`
}

// ToolConfig overrides the default tool per language
type ToolConfig struct {
	Python     string `mapstructure:"python"`
	TypeScript string `mapstructure:"typescript"`
}

// GitConfig selects how repositories are initialised
type GitConfig struct {
	Backend       string `mapstructure:"backend"`
	InitialBranch string `mapstructure:"initial_branch"`
}

// PreflightConfig tunes the dependency check
type PreflightConfig struct {
	CheckVersions bool `mapstructure:"check_versions"`
}

// InstallConfig tunes the package-manager step
type InstallConfig struct {
	Skip bool `mapstructure:"skip"`
}

// Dir returns the mcpc config directory
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+appName)
	}
	return filepath.Join(home, ".config", appName)
}

// DefaultPath returns the path of the config file
func DefaultPath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// SetDefaults registers every key with its built-in default. Keys must be
// registered for environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("language", string(models.LanguageTypeScript))
	v.SetDefault("tool.python", "")
	v.SetDefault("tool.typescript", "")
	v.SetDefault("git.backend", git.BackendExec)
	v.SetDefault("git.initial_branch", "")
	v.SetDefault("preflight.check_versions", false)
	v.SetDefault("install.skip", false)
}

// New returns a viper instance reading path (DefaultPath when empty) and
// the MCPC_* environment.
func New(path string) *viper.Viper {
	if path == "" {
		path = DefaultPath()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads the configuration. A missing file at the default location is
// not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	v := New(path)

	if _, err := os.Stat(v.ConfigFileUsed()); err == nil || explicit {
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", v.ConfigFileUsed())
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper unmarshals and validates the configuration held by v
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every configured value is usable
func (c *Config) Validate() error {
	if _, err := c.DefaultLanguage(); err != nil {
		return errors.Wrap(err, "config: language")
	}

	for _, language := range models.Languages() {
		if _, err := c.ToolFor(language); err != nil {
			return errors.Wrapf(err, "config: tool.%s", language)
		}
	}

	switch c.Git.Backend {
	case "", git.BackendExec, git.BackendEmbedded:
	default:
		return errors.Newf("config: git.backend must be %q or %q, got %q", git.BackendExec, git.BackendEmbedded, c.Git.Backend)
	}

	return nil
}

// DefaultLanguage returns the configured language, TypeScript when unset
func (c *Config) DefaultLanguage() (models.Language, error) {
	if strings.TrimSpace(c.Language) == "" {
		return models.LanguageTypeScript, nil
	}
	return models.ParseLanguage(c.Language)
}

// ToolFor returns the configured tool for language, falling back to the
// built-in default. A configured tool must be compatible with the language.
func (c *Config) ToolFor(language models.Language) (models.Tool, error) {
	var configured string
	switch language {
	case models.LanguagePython:
		configured = c.Tool.Python
	case models.LanguageTypeScript:
		configured = c.Tool.TypeScript
	}

	if strings.TrimSpace(configured) == "" {
		return models.DefaultTool(language), nil
	}

	tool, err := models.ParseTool(configured)
	if err != nil {
		return "", err
	}
	if err := models.CheckCompatible(language, tool); err != nil {
		return "", err
	}
	return tool, nil
}
