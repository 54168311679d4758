// Package config loads the servers file: a mapping from server name to the
// address and pinned certificate used to reach it.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ServerEntry describes one connection candidate. Entries live for the
// duration of a single connection attempt.
type ServerEntry struct {
	Name            string
	Address         AddressSpec
	CertificatePath string
}

// serverDoc is the on-disk shape of one entry. Keys are kebab-case in every
// supported format.
type serverDoc struct {
	ServerAddress   string `toml:"server-address" yaml:"server-address" json:"server-address"`
	CertificatePath string `toml:"certificate-path" yaml:"certificate-path" json:"certificate-path"`
}

// LoadServers reads and validates the servers file. The format is chosen by
// extension; TOML is the default. Any unparseable document or server-address
// aborts with an error.
func LoadServers(path string) (map[string]ServerEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	raw := map[string]serverDoc{}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		err = toml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	servers := make(map[string]ServerEntry, len(raw))
	for name, doc := range raw {
		addr, err := ParseAddress(doc.ServerAddress)
		if err != nil {
			return nil, fmt.Errorf("server %q: %w", name, err)
		}
		if doc.CertificatePath == "" {
			return nil, fmt.Errorf("server %q: certificate-path not set", name)
		}
		servers[name] = ServerEntry{
			Name:            name,
			Address:         addr,
			CertificatePath: doc.CertificatePath,
		}
	}
	return servers, nil
}
