package config

import (
	"github.com/arthur-debert/graft/pkg/envfile"
	"github.com/arthur-debert/graft/pkg/installer"
	"github.com/arthur-debert/graft/pkg/routes"
)

// Config is the complete graft configuration.
type Config struct {
	BasePath string   `koanf:"base_path" toml:"base_path" validate:"required"`
	StubRoot string   `koanf:"stub_root" toml:"stub_root" validate:"required"`
	EnvFiles []string `koanf:"env_files" toml:"env_files" validate:"dive,required"`
	Env      Env      `koanf:"env" toml:"env"`
	Routes   Routes   `koanf:"routes" toml:"routes"`
}

// Env describes the package-owned block written to env files.
type Env struct {
	Label string   `koanf:"label" toml:"label" validate:"required"`
	Keys  []EnvKey `koanf:"keys" toml:"keys" validate:"unique=Name,dive"`
}

// EnvKey is one package-owned variable.
type EnvKey struct {
	Name    string `koanf:"name" toml:"name" validate:"required,envkey"`
	Default string `koanf:"default" toml:"default"`
}

// Routes describes the marked block written to the route file.
type Routes struct {
	File        string `koanf:"file" toml:"file"`
	Header      string `koanf:"header" toml:"header"`
	Import      string `koanf:"import" toml:"import"`
	StartMarker string `koanf:"start_marker" toml:"start_marker" validate:"required_with=File,singleline"`
	EndMarker   string `koanf:"end_marker" toml:"end_marker" validate:"required_with=File,omitempty,singleline,nefield=StartMarker"`
	Body        string `koanf:"body" toml:"body,multiline"`
}

// InstallerSpec converts the configuration into the installer's Spec.
func (c *Config) InstallerSpec() installer.Spec {
	keys := make([]envfile.Key, 0, len(c.Env.Keys))
	for _, key := range c.Env.Keys {
		keys = append(keys, envfile.Key{Name: key.Name, Default: key.Default})
	}

	return installer.Spec{
		Env: envfile.Spec{
			Label: c.Env.Label,
			Keys:  keys,
		},
		EnvFiles: c.EnvFiles,
		Routes: routes.Block{
			Header:      c.Routes.Header,
			Import:      c.Routes.Import,
			StartMarker: c.Routes.StartMarker,
			EndMarker:   c.Routes.EndMarker,
			Body:        c.Routes.Body,
		},
		RouteFile: c.Routes.File,
	}
}
