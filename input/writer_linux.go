//go:build linux

package input

import (
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// NewEventWriter constructs the virtual mouse and keyboard. The two
// constructions run concurrently since each is a long chain of blocking
// syscalls. Failure of either device is fatal and releases whichever device
// was already constructed.
func NewEventWriter(logger *slog.Logger) (*EventWriter, error) {
	var mouse, keyboard *device

	var g errgroup.Group
	g.Go(func() error {
		d, err := newDevice(deviceMouse)
		if err != nil {
			return err
		}
		mouse = d
		return nil
	})
	g.Go(func() error {
		d, err := newDevice(deviceKeyboard)
		if err != nil {
			return err
		}
		keyboard = d
		return nil
	})

	if err := g.Wait(); err != nil {
		if mouse != nil {
			_ = mouse.Close()
		}
		if keyboard != nil {
			_ = keyboard.Close()
		}
		return nil, err
	}

	logger.Debug("virtual devices ready",
		"mouse", deviceMouse.deviceName(), "keyboard", deviceKeyboard.deviceName())
	return newEventWriter(logger, mouse, keyboard), nil
}
