package client

import (
	"net"

	"github.com/arendz/kvmlink/internal/log"
)

// traceConn feeds everything read from the connection to the wire logger.
// Chunks follow read boundaries, not frame boundaries.
type traceConn struct {
	net.Conn
	wire log.WireLogger
}

func (c *traceConn) Read(p []byte) (int, error) {
	n, err := c.Conn.Read(p)
	if n > 0 {
		c.wire.Chunk(p[:n])
	}
	return n, err
}
