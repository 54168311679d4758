// Package client establishes the encrypted session to a kvmlink server and
// runs the streaming loop that replays forwarded input locally.
package client

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"

	"github.com/arendz/kvmlink/internal/config"
)

// dialResult is a won race: an open plaintext connection together with the
// entry and pinned certificate that produced it.
type dialResult struct {
	entry config.ServerEntry
	cert  *x509.Certificate
	conn  net.Conn
}

// attemptFunc performs one connection attempt. Production uses dialServer;
// tests substitute their own.
type attemptFunc func(ctx context.Context, entry config.ServerEntry) (*dialResult, error)

// race launches one attempt per configured server and returns the first to
// succeed. A failed attempt only removes itself from consideration; the race
// continues on the remaining ones. When every attempt has failed, the last
// observed failure is returned as the cause.
//
// The target may be reachable through several addresses with different
// latencies; dialing all of them and adopting the fastest avoids the latency
// tax of trying them one by one.
func race(ctx context.Context, logger *slog.Logger, servers map[string]config.ServerEntry, attempt attemptFunc) (*dialResult, error) {
	if len(servers) == 0 {
		return nil, errors.New("no servers configured")
	}

	results := make(chan outcome, len(servers))

	for _, entry := range servers {
		logger.Info("attempting connection", "server", entry.Name, "addr", entry.Address.String())
		go func(entry config.ServerEntry) {
			res, err := attempt(ctx, entry)
			if err != nil {
				results <- outcome{err: fmt.Errorf("server %q: %w", entry.Name, err)}
				return
			}
			results <- outcome{res: res}
		}(entry)
	}

	var lastErr error
	for pending := len(servers); pending > 0; pending-- {
		select {
		case <-ctx.Done():
			go drain(results, pending)
			return nil, ctx.Err()
		case out := <-results:
			if out.err != nil {
				logger.Warn("connection attempt failed", "error", out.err)
				lastErr = out.err
				continue
			}
			// Losers are abandoned; their connections, if any, still get
			// closed once they complete.
			go drain(results, pending-1)
			return out.res, nil
		}
	}
	return nil, lastErr
}

type outcome struct {
	res *dialResult
	err error
}

// drain releases the connections of attempts that lost the race.
func drain(results <-chan outcome, pending int) {
	for i := 0; i < pending; i++ {
		if out := <-results; out.res != nil {
			_ = out.res.conn.Close()
		}
	}
}

// dialServer is the production attempt: certificate load and parse, then a
// TCP dial.
func dialServer(ctx context.Context, entry config.ServerEntry) (*dialResult, error) {
	data, err := os.ReadFile(entry.CertificatePath)
	if err != nil {
		return nil, fmt.Errorf("read certificate: %w", err)
	}

	cert, err := parseCertificate(data)
	if err != nil {
		return nil, fmt.Errorf("parse certificate: %w", err)
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", entry.Address.String())
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	return &dialResult{entry: entry, cert: cert, conn: conn}, nil
}

// parseCertificate accepts DER, falling back to PEM.
func parseCertificate(data []byte) (*x509.Certificate, error) {
	if cert, err := x509.ParseCertificate(data); err == nil {
		return cert, nil
	}
	block, _ := pem.Decode(data)
	if block == nil || block.Type != "CERTIFICATE" {
		return nil, errors.New("neither DER nor PEM encoded certificate")
	}
	return x509.ParseCertificate(block.Bytes)
}
