package config

import (
	"bytes"

	"github.com/arthur-debert/graft/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// GenerateContent renders cfg as a TOML document suitable for .graft.toml.
func GenerateContent(cfg *Config) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("# graft configuration\n\n")

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return buf.String(), nil
}
