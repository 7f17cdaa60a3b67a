// Package config loads settings for the trie command.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	trie "github.com/sarthakjha889/go-dictionary-trie"
	"github.com/sarthakjha889/go-dictionary-trie/internal/wordlist"
)

// EnvPrefix prefixes environment variables, e.g. TRIE_DICTIONARY_PATH.
const EnvPrefix = "TRIE"

// Config holds all configuration for the command
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Search     SearchConfig     `mapstructure:"search"`
	Log        LogConfig        `mapstructure:"log"`
}

// DictionaryConfig describes the word list and how words are normalised
type DictionaryConfig struct {
	Path          string `mapstructure:"path"`
	Encoding      string `mapstructure:"encoding"`
	Normalise     bool   `mapstructure:"normalise"`
	CaseSensitive bool   `mapstructure:"case_sensitive"`
}

// SearchConfig holds fuzzy search defaults
type SearchConfig struct {
	Mode     string `mapstructure:"mode"`
	Distance int    `mapstructure:"distance"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from defaults, the optional file at configPath and
// the environment, in increasing order of precedence.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.path", "")
	v.SetDefault("dictionary.encoding", "utf-8")
	v.SetDefault("dictionary.normalise", true)
	v.SetDefault("dictionary.case_sensitive", false)

	v.SetDefault("search.mode", trie.AllChanges.String())
	v.SetDefault("search.distance", 1)

	v.SetDefault("log.level", zerolog.InfoLevel.String())
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if err := wordlist.ValidateEncoding(c.Dictionary.Encoding); err != nil {
		return err
	}
	if _, err := trie.ParseEditMode(c.Search.Mode); err != nil {
		return err
	}
	if c.Search.Distance < 0 {
		return errors.Newf("search distance must not be negative: %d", c.Search.Distance)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

// ParseLevel returns the zerolog level named by Level.
func (c LogConfig) ParseLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "invalid log level %q", c.Level)
	}
	return level, nil
}

// NewTrie returns an empty trie configured by the dictionary settings.
func (c DictionaryConfig) NewTrie() *trie.Trie {
	t := trie.New()
	if !c.Normalise {
		t.WithoutNormalisation()
	}
	if c.CaseSensitive {
		t.CaseSensitive()
	}
	return t
}
