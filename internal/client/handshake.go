package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/arendz/kvmlink/wire"
)

// VersionMismatchError is a fatal handshake failure: the peer speaks a
// different protocol revision and there is no negotiation or downgrade.
type VersionMismatchError struct {
	Local uint16
	Peer  uint16
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("incompatible protocol version (got %d, expecting %d)", e.Peer, e.Local)
}

// handshake wraps the winning plaintext connection in TLS trusting only the
// pinned certificate, then exchanges protocol versions. On error the caller
// still owns the underlying connection.
func handshake(ctx context.Context, logger *slog.Logger, res *dialResult) (*tls.Conn, error) {
	if tcp, ok := res.conn.(*net.TCPConn); ok {
		if err := tcp.SetNoDelay(true); err != nil {
			logger.Warn("setting TCP_NODELAY failed", "error", err)
		}
	}

	pool := x509.NewCertPool()
	pool.AddCert(res.cert)

	conn := tls.Client(res.conn, &tls.Config{
		RootCAs:    pool,
		ServerName: res.entry.Address.Host,
		MinVersion: tls.VersionTLS12,
	})
	if err := conn.HandshakeContext(ctx); err != nil {
		return nil, fmt.Errorf("tls handshake with %q: %w", res.entry.Name, err)
	}

	if err := exchangeVersions(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// exchangeVersions writes the local protocol version and verifies the peer's.
func exchangeVersions(rw io.ReadWriter) error {
	if err := wire.WriteVersion(rw, wire.ProtocolVersion); err != nil {
		return err
	}
	peer, err := wire.ReadVersion(rw)
	if err != nil {
		return err
	}
	if peer != wire.ProtocolVersion {
		return &VersionMismatchError{Local: wire.ProtocolVersion, Peer: peer}
	}
	return nil
}
