//go:build !linux

package cmd

import (
	"errors"
	"log/slog"
	"runtime"
)

func installService(*slog.Logger, string) error {
	return errors.New("service management is not supported on " + runtime.GOOS)
}

func uninstallService(*slog.Logger) error {
	return errors.New("service management is not supported on " + runtime.GOOS)
}
