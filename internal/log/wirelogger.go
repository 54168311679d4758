package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// WireLogger handles raw protocol frame logging with optional file output.
type WireLogger interface {
	Chunk(data []byte)
}

// wireLogger implements WireLogger with thread-safe output.
type wireLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewWire creates a new WireLogger. If writer is nil, returns a no-op logger.
func NewWire(w io.Writer) WireLogger {
	return &wireLogger{w: w}
}

// Chunk emits a single-line log of one received chunk with timestamp and hex
// dump. Input frames are tiny, so dumping them whole is fine.
func (l *wireLogger) Chunk(data []byte) {
	if len(data) == 0 || l.w == nil {
		return
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	line := fmt.Sprintf("%s S->C chunk: %d bytes, hex: %s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		len(data),
		hexbuf.String())

	l.mu.Lock()
	_, _ = l.w.Write([]byte(line))
	l.mu.Unlock()
}
