package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadServersTOML(t *testing.T) {
	path := writeFile(t, "client.toml", `
[desktop]
server-address = "192.168.0.100:5531"
certificate-path = "/etc/kvmlink/desktop.pem"

[laptop]
server-address = "laptop.lan:5531"
certificate-path = "/etc/kvmlink/laptop.pem"
`)

	servers, err := LoadServers(path)
	require.NoError(t, err)
	require.Len(t, servers, 2)

	desktop := servers["desktop"]
	assert.Equal(t, "desktop", desktop.Name)
	assert.Equal(t, AddressSpec{Host: "192.168.0.100", Port: 5531}, desktop.Address)
	assert.Equal(t, "/etc/kvmlink/desktop.pem", desktop.CertificatePath)
}

func TestLoadServersYAML(t *testing.T) {
	path := writeFile(t, "client.yaml", `
desktop:
  server-address: "192.168.0.100:5531"
  certificate-path: /etc/kvmlink/desktop.pem
`)

	servers, err := LoadServers(path)
	require.NoError(t, err)
	assert.Equal(t, uint16(5531), servers["desktop"].Address.Port)
}

func TestLoadServersErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "unparseable document",
			file:    "client.toml",
			content: "not = [valid",
		},
		{
			name: "bad server address",
			file: "client.toml",
			content: "[desktop]\nserver-address = \"host:port:extra\"\ncertificate-path = \"/x.pem\"\n",
		},
		{
			name: "missing certificate path",
			file: "client.toml",
			content: "[desktop]\nserver-address = \"host:5531\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := LoadServers(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadServersMissingFile(t *testing.T) {
	_, err := LoadServers(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
