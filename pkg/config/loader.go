package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/graft/pkg/errors"
	"github.com/arthur-debert/graft/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration.
// A double underscore separates nested keys: GRAFT_ROUTES__FILE sets
// routes.file.
const EnvPrefix = "GRAFT_"

// FileNames are the configuration files looked up in the base path, in
// order. The first one found is used.
var FileNames = []string{".graft.toml", "graft.toml", ".graft.yaml", "graft.yaml"}

// Load builds the configuration from the embedded defaults, the config file
// in the base path, GRAFT_* environment variables and overrides, later
// sources winning. Overrides use dotted koanf keys such as "base_path".
func Load(overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	basePath := lookupBasePath(overrides)
	if path := FindFile(basePath); path != "" {
		logger.Debug().Str("path", path).Msg("Loading config file")
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.resolvePaths(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("basePath", cfg.BasePath).
		Str("stubRoot", cfg.StubRoot).
		Msg("Configuration loaded")

	return &cfg, nil
}

// FindFile returns the first config file present in basePath, or "".
func FindFile(basePath string) string {
	for _, name := range FileNames {
		path := filepath.Join(basePath, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// parserFor picks the koanf parser matching the file extension.
func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey turns GRAFT_STUB_ROOT into stub_root and GRAFT_ROUTES__FILE into
// routes.file.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// lookupBasePath finds the base path before the full configuration is
// loaded, so the config file inside it can be read.
func lookupBasePath(overrides map[string]interface{}) string {
	if value, ok := overrides["base_path"].(string); ok && value != "" {
		return value
	}
	if value := os.Getenv(EnvPrefix + "BASE_PATH"); value != "" {
		return value
	}
	return "."
}

// resolvePaths makes the base path absolute and resolves the stub root
// against it.
func (c *Config) resolvePaths() error {
	base, err := filepath.Abs(c.BasePath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid base path %q", c.BasePath)
	}
	c.BasePath = base

	if !filepath.IsAbs(c.StubRoot) {
		c.StubRoot = filepath.Join(base, c.StubRoot)
	}
	c.StubRoot = filepath.Clean(c.StubRoot)
	return nil
}
