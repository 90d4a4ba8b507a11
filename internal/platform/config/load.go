package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option customises Load.
type Option func(*loadOptions)

type loadOptions struct {
	dir string
}

// WithConfigDir reads the YAML files from dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.dir = dir }
}

// layer is one configuration source merged over the ones before it.
type layer struct {
	name     string
	provider koanf.Provider
	parser   koanf.Parser
}

// Load merges, lowest precedence first, the compiled-in defaults,
// base.yaml, <profile>.yaml and APP_* environment variables, then validates
// the result.
//
// Env names map onto known keys before falling back to splitting on
// underscores, so keys containing underscores stay addressable:
//
//	APP_SERVER_PORT               -> server.port
//	APP_LEAP_MAX_RANGE_SPAN       -> leap.max_range_span
//	APP_CLIENT_RETRY_MAX_ATTEMPTS -> client.retry.max_attempts
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{dir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	k, err := seeded()
	if err != nil {
		return nil, err
	}

	files := []layer{
		yamlLayer(filepath.Join(o.dir, "base.yaml")),
		yamlLayer(filepath.Join(o.dir, profile+".yaml")),
	}
	for _, l := range files {
		if err := k.Load(l.provider, l.parser); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	// Keys are known only once the files are merged.
	if err := k.Load(envProvider(k.Keys()), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	return decode(k)
}

// Default returns the validated compiled-in defaults, ignoring files and the
// environment.
func Default() (*Config, error) {
	k, err := seeded()
	if err != nil {
		return nil, err
	}
	return decode(k)
}

func yamlLayer(path string) layer {
	return layer{name: path, provider: file.Provider(path), parser: yaml.Parser()}
}

func seeded() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	return k, nil
}

// envProvider resolves APP_FOO_BAR_BAZ against keys by their underscore
// form, so it lands on foo.bar_baz when that key exists.
func envProvider(keys []string) *env.Env {
	known := lo.SliceToMap(keys, func(key string) (string, string) {
		return strings.ReplaceAll(key, ".", "_"), key
	})

	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	})
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// checkProfile rejects names that are empty or could escape the config
// directory.
func checkProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a bare name", profile)
	}
	return nil
}
