package input

import (
	"context"
	"errors"
	"log/slog"

	"github.com/arendz/kvmlink/internal/log"
)

// eventDevice is the slice of a virtual device the writer needs. The concrete
// implementation is platform specific.
type eventDevice interface {
	WriteEvent(Event) error
	Close() error
}

// EventWriter owns one virtual mouse and one virtual keyboard and routes each
// forwarded event to the device that advertises the matching capability.
type EventWriter struct {
	logger   *slog.Logger
	mouse    eventDevice
	keyboard eventDevice
}

func newEventWriter(logger *slog.Logger, mouse, keyboard eventDevice) *EventWriter {
	return &EventWriter{logger: logger, mouse: mouse, keyboard: keyboard}
}

// targetFor decides which device receives an event. Relative motion and
// scroll always belong to the mouse. Key events go to the mouse only for the
// three buttons it exposes through its button capability range; everything
// else is keyboard territory.
func targetFor(ev Event) deviceType {
	if ev.Kind == KindKey {
		switch ev.Key {
		case BtnLeft, BtnRight, BtnMiddle:
			return deviceMouse
		}
		return deviceKeyboard
	}
	return deviceMouse
}

// Write injects one event into the local input subsystem.
func (w *EventWriter) Write(ev Event) error {
	target := targetFor(ev)
	w.logger.Log(context.Background(), log.LevelTrace, "inject event",
		"device", target.String(), "event", ev.String())

	if target == deviceKeyboard {
		return w.keyboard.WriteEvent(ev)
	}
	return w.mouse.WriteEvent(ev)
}

// Close releases both devices. Each device is destroyed exactly once.
func (w *EventWriter) Close() error {
	return errors.Join(w.mouse.Close(), w.keyboard.Close())
}
