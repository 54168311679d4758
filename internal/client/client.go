package client

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/arendz/kvmlink/input"
	"github.com/arendz/kvmlink/internal/config"
	"github.com/arendz/kvmlink/internal/log"
	"github.com/arendz/kvmlink/wire"
)

// Run connects to the fastest configured server, performs the handshake,
// brings up the virtual devices and streams events until a fatal error or
// context cancellation. Every error is fatal; there is no retry anywhere.
func Run(ctx context.Context, logger *slog.Logger, wireLog log.WireLogger, servers map[string]config.ServerEntry) error {
	res, err := race(ctx, logger, servers, dialServer)
	if err != nil {
		return err
	}

	logger.Debug("connection open, setting up TLS",
		"server", res.entry.Name,
		"addr", res.entry.Address.String(),
		"certificate", res.entry.CertificatePath)

	conn, err := handshake(ctx, logger, res)
	if err != nil {
		_ = res.conn.Close()
		return err
	}
	defer conn.Close()

	logger.Info("connected", "server", res.entry.Name, "addr", res.entry.Address.String())

	writer, err := input.NewEventWriter(logger)
	if err != nil {
		return fmt.Errorf("create event writer: %w", err)
	}
	defer writer.Close()

	var stream net.Conn = &traceConn{Conn: conn, wire: wireLog}
	return streamEvents(ctx, logger, stream, writer, wire.MessageTimeout)
}
