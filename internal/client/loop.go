package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/arendz/kvmlink/input"
	"github.com/arendz/kvmlink/wire"
)

// eventSink consumes decoded events. Production uses *input.EventWriter.
type eventSink interface {
	Write(input.Event) error
}

// streamEvents runs the post-handshake read loop. Each read is bounded by
// timeout; the server's keep-alives arrive well inside that window, so an
// expired deadline means the link is dead and the loop fails. There is no
// reconnect: recovery is an external restart.
func streamEvents(ctx context.Context, logger *slog.Logger, conn net.Conn, sink eventSink, timeout time.Duration) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return fmt.Errorf("set read deadline: %w", err)
		}

		msg, err := wire.ReadMessage(conn)
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				return fmt.Errorf("read timed out after %s", timeout)
			}
			return err
		}

		switch msg.Kind {
		case wire.KindEvent:
			if err := sink.Write(*msg.Event); err != nil {
				return fmt.Errorf("write event: %w", err)
			}
		case wire.KindKeepAlive:
			// Nothing to do; the read itself reset the deadline.
		}
	}
}
