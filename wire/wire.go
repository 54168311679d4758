// Package wire implements the framed message protocol spoken between a
// kvmlink server and client: a fixed-width version exchange followed by
// length-prefixed CBOR messages.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/arendz/kvmlink/input"
)

// ProtocolVersion is exchanged right after the TLS handshake. There is no
// negotiation: any mismatch is fatal for the session.
const ProtocolVersion uint16 = 1

// MessageTimeout bounds a single message read. The server sends keep-alives
// well within this window, so hitting the timeout means the link is dead.
const MessageTimeout = 5 * time.Second

// MaxMessageSize caps a single frame. Input events are tiny; anything larger
// is a corrupt or hostile stream.
const MaxMessageSize = 64 * 1024

// Kind discriminates the message variants.
type Kind uint8

const (
	KindEvent Kind = iota + 1
	KindKeepAlive
)

// Message is one protocol frame. Event is set only for KindEvent; a
// keep-alive carries no payload and exists solely to reset the read timeout.
type Message struct {
	Kind  Kind         `cbor:"m"`
	Event *input.Event `cbor:"e,omitempty"`
}

// Event wraps an input event into a message.
func Event(ev input.Event) Message {
	return Message{Kind: KindEvent, Event: &ev}
}

// KeepAlive returns the empty keep-alive message.
func KeepAlive() Message {
	return Message{Kind: KindKeepAlive}
}

// WriteVersion writes the fixed-width protocol version.
func WriteVersion(w io.Writer, version uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], version)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("write version: %w", err)
	}
	return nil
}

// ReadVersion reads the peer's fixed-width protocol version.
func ReadVersion(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("read version: %w", err)
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// WriteMessage writes one length-prefixed frame.
func WriteMessage(w io.Writer, msg Message) error {
	body, err := cbor.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	if len(body) > MaxMessageSize {
		return fmt.Errorf("message too large: %d bytes", len(body))
	}

	var prefix [4]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(body)))
	if _, err := w.Write(prefix[:]); err != nil {
		return fmt.Errorf("write length: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	return nil
}

// ReadMessage reads one length-prefixed frame and decodes it. A frame that
// decodes but does not form a valid message (unknown kind, event message
// without an event) is an error: the stream framing can no longer be trusted.
func ReadMessage(r io.Reader) (Message, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return Message{}, fmt.Errorf("read length: %w", err)
	}
	length := binary.BigEndian.Uint32(prefix[:])
	if length > MaxMessageSize {
		return Message{}, fmt.Errorf("message too large: %d bytes", length)
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return Message{}, fmt.Errorf("read body: %w", err)
	}

	var msg Message
	if err := cbor.Unmarshal(body, &msg); err != nil {
		return Message{}, fmt.Errorf("decode message: %w", err)
	}

	switch msg.Kind {
	case KindEvent:
		if msg.Event == nil {
			return Message{}, errors.New("event message without event payload")
		}
	case KindKeepAlive:
	default:
		return Message{}, fmt.Errorf("unknown message kind %d", msg.Kind)
	}
	return msg, nil
}
