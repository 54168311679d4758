package cmd

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/arendz/kvmlink/internal/configpaths"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a servers file template"`
}

// ConfigInit scaffolds a servers file with one example entry. The format flag
// is validated by the enum; Run never sees another value.
type ConfigInit struct {
	Format string `help:"Output format" enum:"toml,yaml,json" default:"toml"`
	Output string `help:"Destination file path (defaults to client.<format> in the current directory)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

func (c *ConfigInit) Run() error {
	// One commented-out sample entry would be friendlier, but none of the
	// three formats share a comment syntax, so ship a real placeholder.
	sample := map[string]map[string]string{
		"desktop": {
			"server-address":   "192.168.0.100:5531",
			"certificate-path": "/etc/kvmlink/certificate.pem",
		},
	}

	dest := c.Output
	if dest == "" {
		dest = "client." + c.Format
	}

	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	var data []byte
	var err error
	switch c.Format {
	case "json":
		data, err = json.MarshalIndent(sample, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(sample)
	default:
		data, err = toml.Marshal(sample)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}
