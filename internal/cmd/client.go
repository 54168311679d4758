package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/arendz/kvmlink/internal/client"
	"github.com/arendz/kvmlink/internal/config"
	"github.com/arendz/kvmlink/internal/configpaths"
	"github.com/arendz/kvmlink/internal/log"
)

// Client connects to the configured servers and injects forwarded input.
type Client struct {
	ConfigPath string `arg:"" optional:"" name:"config-path" help:"Path to the servers file" type:"path"`
}

// Run is called by Kong when the client command is executed. A shutdown
// signal is a clean exit; any configuration, connection or streaming failure
// is returned and becomes a non-zero exit.
func (c *Client) Run(logger *slog.Logger, wireLog log.WireLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path := c.ConfigPath
	if path == "" {
		path = configpaths.DefaultServersPath()
	}

	servers, err := config.LoadServers(path)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- client.Run(ctx, logger, wireLog, servers)
	}()

	select {
	case <-ctx.Done():
		// The in-flight read is abandoned; process teardown releases it.
		logger.Info("exiting on signal")
		return nil
	case err := <-errCh:
		if errors.Is(err, context.Canceled) {
			logger.Info("exiting on signal")
			return nil
		}
		return err
	}
}
