// Package config is for app wide settings that are unmarshalled
// from Viper (see: cmd/pairscore) and for scoring parameter files.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables read into settings,
// e.g. PAIRSCORE_PROGRESS=true.
const EnvPrefix = "PAIRSCORE"

// Settings are the options of a scoring run, a mix of command line
// flags and environment variables.
type Settings struct {
	// path to the scoring parameter file
	Params string `mapstructure:"params"`

	// path to the output file
	Out string `mapstructure:"out"`

	// answer yes to every confirmation
	Yes bool `mapstructure:"yes"`

	// skip pairs whose columns are all double gaps instead of failing
	SkipUndefined bool `mapstructure:"skip-undefined"`

	// show a progress bar on stderr
	Progress bool `mapstructure:"progress"`

	// print a summary after the comparisons
	Summary bool `mapstructure:"summary"`

	// print both aligned sequences with a match line
	Show bool `mapstructure:"show"`

	// log extra detail
	Verbose bool `mapstructure:"verbose"`
}

// ServerSettings configure the REST server.
type ServerSettings struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the listen address.
func (s ServerSettings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Bind prepares v to read environment variables with EnvPrefix.
func Bind(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// NewSettings returns Settings populated from v.
func NewSettings(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("unable to decode settings: %w", err)
	}
	return s, nil
}

// NewServerSettings returns ServerSettings populated from v.
func NewServerSettings(v *viper.Viper) (ServerSettings, error) {
	var s ServerSettings
	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("unable to decode server settings: %w", err)
	}
	if s.Port <= 0 || s.Port > 65535 {
		return s, fmt.Errorf("invalid port %d", s.Port)
	}
	return s, nil
}
