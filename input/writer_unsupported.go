//go:build !linux

package input

import (
	"errors"
	"log/slog"
)

// NewEventWriter requires uinput; only Linux is supported.
func NewEventWriter(logger *slog.Logger) (*EventWriter, error) {
	return nil, errors.New("virtual input devices are only supported on linux")
}
