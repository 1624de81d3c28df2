package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Environment variable prefix for generator settings.
const envPrefix = "PRESIDIO"

var settingKeys = []string{KeyLanguages, KeyRegistry, KeyOutput, KeyInstallCommand}

// Loader resolves Settings with precedence flag > env > default.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with environment bindings and defaults.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range settingKeys {
		_ = v.BindEnv(key, EnvName(key))
	}

	v.SetDefault(KeyRegistry, DefaultRegistryPath)
	v.SetDefault(KeyOutput, DefaultOutputDir)
	v.SetDefault(KeyInstallCommand, DefaultInstallCommand)

	return &Loader{v: v}
}

// EnvName returns the environment variable consulted for key.
func EnvName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// BindFlags binds every setting flag present in fs. Flags that are not
// registered on fs are skipped.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	for _, key := range settingKeys {
		flag := fs.Lookup(key)
		if flag == nil {
			continue
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding --%s: %w", key, err)
		}
	}
	return nil
}

// Load resolves Settings. fs is used to attribute each value to its source
// and may be nil. An empty language list is not an error here; commands
// that generate call Settings.RequireLanguages.
func (l *Loader) Load(fs *pflag.FlagSet) (*Settings, []ResolvedValue, error) {
	settings := &Settings{
		Languages:      ParseLanguages(l.v.GetString(KeyLanguages)),
		RegistryPath:   l.v.GetString(KeyRegistry),
		OutputDir:      l.v.GetString(KeyOutput),
		InstallCommand: l.v.GetString(KeyInstallCommand),
	}
	if err := settings.expandPaths(); err != nil {
		return nil, nil, err
	}

	values := make([]ResolvedValue, 0, len(settingKeys))
	for _, key := range settingKeys {
		values = append(values, l.resolved(fs, key))
	}

	return settings, values, nil
}

// resolved attributes the value of key to a source. viper has already
// applied precedence; this only records where the winner came from and
// what it shadowed.
func (l *Loader) resolved(fs *pflag.FlagSet, key string) ResolvedValue {
	rv := ResolvedValue{
		Key:      key,
		Value:    l.v.GetString(key),
		Shadowed: make(map[ConfigSource]string),
	}

	flagSet := false
	if fs != nil {
		if flag := fs.Lookup(key); flag != nil {
			flagSet = flag.Changed
		}
	}
	envValue, envSet := os.LookupEnv(EnvName(key))
	envSet = envSet && envValue != ""

	switch {
	case flagSet:
		rv.Source = SourceFlag
		if envSet {
			rv.Shadowed[SourceEnv] = envValue
		}
	case envSet:
		rv.Source = SourceEnv
	default:
		rv.Source = SourceDefault
	}

	return rv
}
