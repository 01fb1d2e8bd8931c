// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/jjtimmons/superkmers/internal/report"
	"github.com/jjtimmons/superkmers/internal/score"
	"github.com/jjtimmons/superkmers/internal/superkmer"
)

// EnvPrefix is the prefix of environment variables that override settings,
// ex: SUPERKMERS_K=21
const EnvPrefix = "SUPERKMERS"

// SyncmerConfig is for the syncmers command
type SyncmerConfig struct {
	// the length of a syncmer
	K int `mapstructure:"k"`

	// the length of the s-mers compared within a syncmer
	S int `mapstructure:"s"`

	// offsets the smallest s-mer has to be at for a k-mer to be a syncmer
	Targets []int `mapstructure:"targets"`

	// fraction of syncmers to keep (by hash), 0 keeps all of them
	Downsample float64 `mapstructure:"downsample"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment
// and those available from the command line
type Config struct {
	// the k-mer length
	K int `mapstructure:"k"`

	// the minimizer length
	L int `mapstructure:"l"`

	// how minimizers are ranked: hash, lex or syncmer
	Scheme string `mapstructure:"scheme"`

	// whether an l-mer and its reverse complement rank the same
	Canonical bool `mapstructure:"canonical"`

	// the output format: tsv, json or binary
	Format string `mapstructure:"format"`

	// whether to log progress and materialize superkmers in the output
	Verbose bool `mapstructure:"verbose"`

	// Syncmer settings
	Syncmer SyncmerConfig `mapstructure:"syncmer"`
}

// setDefaults registers the defaults with viper. It's safe to call repeatedly.
func setDefaults() {
	viper.SetDefault("k", 31)
	viper.SetDefault("l", 8)
	viper.SetDefault("scheme", string(score.HashScheme))
	viper.SetDefault("canonical", true)
	viper.SetDefault("format", string(report.TSV))
	viper.SetDefault("verbose", false)
	viper.SetDefault("syncmer.k", 5)
	viper.SetDefault("syncmer.s", 2)
	viper.SetDefault("syncmer.targets", []int{2})
	viper.SetDefault("syncmer.downsample", 0.0)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

// ReadFile merges the settings file at path into viper.
func ReadFile(path string) error {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read settings from %s: %w", path, err)
	}
	return nil
}

// New returns a new Config struct populated by Viper settings
// (the defaults, a settings file, environment and command line flags)
func New() (*Config, error) {
	setDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	return &c, nil
}

// Validate checks that superkmers can be extracted with the settings.
func (c *Config) Validate() error {
	if c.L < 1 || c.L > c.K {
		return fmt.Errorf("minimizer length l=%d must be in [1, k=%d]", c.L, c.K)
	}
	if size := 2*c.K - c.L; size > superkmer.MaxSize {
		return fmt.Errorf("superkmers of k=%d, l=%d can reach %d bases (max %d)", c.K, c.L, size, superkmer.MaxSize)
	}
	if _, err := score.ParseScheme(c.Scheme); err != nil {
		return err
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// ScoreFactory returns a factory of scorers for the configured scheme.
func (c *Config) ScoreFactory() (score.Factory, error) {
	scheme, err := score.ParseScheme(c.Scheme)
	if err != nil {
		return nil, err
	}
	return score.FactoryFor(scheme, score.Options{Canonical: c.Canonical}), nil
}
