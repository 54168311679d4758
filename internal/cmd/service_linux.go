//go:build linux

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arendz/kvmlink/internal/configpaths"
)

const (
	serviceName = "kvmlink.service"
	servicePath = "/etc/systemd/system/kvmlink.service"
)

func installService(logger *slog.Logger, configPath string) error {
	exePath, err := currentExecutable()
	if err != nil {
		return err
	}
	if configPath == "" {
		configPath = configpaths.DefaultServersPath()
	}

	unit := systemdUnitContent(exePath, configPath)
	if err := os.WriteFile(servicePath, []byte(unit), 0o644); err != nil {
		return err
	}

	steps := [][]string{
		{"daemon-reload"},
		{"enable", serviceName},
		{"restart", serviceName},
	}

	for _, args := range steps {
		if err := runSystemctl(args...); err != nil {
			return err
		}
	}

	logger.Info("systemd service installed", "path", servicePath, "exe", exePath, "config", configPath)
	return nil
}

func uninstallService(logger *slog.Logger) error {
	var errs []error

	if err := runSystemctl("stop", serviceName); err != nil {
		errs = append(errs, err)
	}
	if err := runSystemctl("disable", serviceName); err != nil {
		errs = append(errs, err)
	}

	if err := os.Remove(servicePath); err != nil && !os.IsNotExist(err) {
		errs = append(errs, err)
	}

	if err := runSystemctl("daemon-reload"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	logger.Info("systemd service removed", "path", servicePath)
	return nil
}

// systemdUnitContent restarts the client on failure, which is also how a lost
// server connection is reestablished.
func systemdUnitContent(exePath, configPath string) string {
	return fmt.Sprintf(`[Unit]
Description=kvmlink client
After=network-online.target
Wants=network-online.target

[Service]
Type=simple
ExecStart=%q client %q
Restart=on-failure
RestartSec=5

[Install]
WantedBy=multi-user.target
`, exePath, configPath)
}

func currentExecutable() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exePath)
}

func runSystemctl(args ...string) error {
	cmd := exec.Command("systemctl", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("systemctl %s failed: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}
