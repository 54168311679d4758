//go:build linux

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemdUnitContent(t *testing.T) {
	unit := systemdUnitContent("/usr/local/bin/my kvmlink", "/etc/kvmlink/client.toml")

	assert.Contains(t, unit, `ExecStart="/usr/local/bin/my kvmlink" client "/etc/kvmlink/client.toml"`)
	assert.Contains(t, unit, "Restart=on-failure")
	assert.Contains(t, unit, "WantedBy=multi-user.target")
}
