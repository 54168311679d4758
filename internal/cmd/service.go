package cmd

import "log/slog"

// ServiceCommand manages a system service that keeps the client running.
// Because the client exits on any connection failure, running it under a
// supervisor with restart-on-failure is the intended deployment.
type ServiceCommand struct {
	Install   ServiceInstall   `cmd:"" help:"Install and start a systemd service for the client"`
	Uninstall ServiceUninstall `cmd:"" help:"Stop and remove the client systemd service"`
}

// ServiceInstall writes the unit file and starts the service.
type ServiceInstall struct {
	ConfigPath string `arg:"" optional:"" name:"config-path" help:"Servers file the service starts with" type:"path"`
}

func (s *ServiceInstall) Run(logger *slog.Logger) error {
	return installService(logger, s.ConfigPath)
}

// ServiceUninstall stops the service and removes the unit file.
type ServiceUninstall struct{}

func (s *ServiceUninstall) Run(logger *slog.Logger) error {
	return uninstallService(logger)
}
