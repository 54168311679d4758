//go:build linux

package input

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

const uinputPath = "/dev/uinput"

// uinput ioctl requests and limits from linux/uinput.h.
const (
	uinputMaxNameSize = 80

	uiDevCreate  = 0x5501
	uiDevDestroy = 0x5502
	uiSetEvBit   = 0x40045564
	uiSetKeyBit  = 0x40045565
	uiSetRelBit  = 0x40045566

	busUSB = 0x03
)

type inputID struct {
	BusType uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// uinputUserDev mirrors struct uinput_user_dev from linux/uinput.h.
type uinputUserDev struct {
	Name       [uinputMaxNameSize]byte
	ID         inputID
	EffectsMax uint32
	AbsMax     [64]int32
	AbsMin     [64]int32
	AbsFuzz    [64]int32
	AbsFlat    [64]int32
}

// inputEvent mirrors struct input_event from linux/input.h. Time is always
// zero on write; the kernel stamps events on injection.
type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// The raw syscalls are indirected so tests can exercise the device lifecycle
// without /dev/uinput.
var (
	sysOpen     = unix.Open
	sysIoctlSet = unix.IoctlSetInt
	sysIoctlRet = unix.IoctlRetInt
	sysWrite    = unix.Write
	sysClose    = unix.Close
)

// device pairs the uinput file descriptor with the injection node created
// from it. The two are acquired and released strictly together: a failure
// during setup closes the descriptor before the error propagates, and Close
// destroys the node before releasing the descriptor.
type device struct {
	fd  int
	typ deviceType
}

// newDevice opens /dev/uinput, advertises the device type's capability table
// and materializes the injection node. This is a blocking, syscall-heavy
// sequence; callers run it on its own goroutine so it never stalls protocol
// I/O.
func newDevice(typ deviceType) (*device, error) {
	fd, err := sysOpen(uinputPath, unix.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", uinputPath, err)
	}

	if err := setupDevice(fd, typ); err != nil {
		sysClose(fd)
		return nil, fmt.Errorf("set up %s: %w", typ, err)
	}

	if _, err := sysIoctlRet(fd, uiDevCreate); err != nil {
		sysClose(fd)
		return nil, fmt.Errorf("create %s: %w", typ, err)
	}

	return &device{fd: fd, typ: typ}, nil
}

func setupDevice(fd int, typ deviceType) error {
	for _, c := range typ.capabilities() {
		if err := sysIoctlSet(fd, uiSetEvBit, int(c.evType)); err != nil {
			return fmt.Errorf("enable event type %#x: %w", c.evType, err)
		}

		var req uint
		switch c.evType {
		case EvKey:
			req = uiSetKeyBit
		case EvRel:
			req = uiSetRelBit
		default:
			// EV_SYN needs no per-code enabling; every uinput device reports sync.
			continue
		}

		for _, r := range c.codes {
			for code := r.lo; code <= r.hi; code++ {
				if err := sysIoctlSet(fd, req, int(code)); err != nil {
					return fmt.Errorf("enable event code %#x/%#x: %w", c.evType, code, err)
				}
			}
		}
	}

	setup := uinputUserDev{
		ID: inputID{
			BusType: busUSB,
			Vendor:  deviceVendor,
			Product: deviceProduct,
			Version: deviceVersion,
		},
	}
	copy(setup.Name[:], typ.deviceName())

	buf := unsafe.Slice((*byte)(unsafe.Pointer(&setup)), int(unsafe.Sizeof(setup)))
	if _, err := sysWrite(fd, buf); err != nil {
		return fmt.Errorf("write device setup: %w", err)
	}
	return nil
}

// WriteEvent injects one logical event: the translated raw record followed by
// the mandatory sync report.
func (d *device) WriteEvent(ev Event) error {
	records, err := injectionRecords(ev)
	if err != nil {
		return err
	}
	for _, raw := range records {
		if err := d.writeRaw(raw); err != nil {
			return err
		}
	}
	return nil
}

func (d *device) writeRaw(raw RawEvent) error {
	ev := inputEvent{Type: raw.Type, Code: raw.Code, Value: raw.Value}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&ev)), int(unsafe.Sizeof(ev)))
	if _, err := sysWrite(d.fd, buf); err != nil {
		return fmt.Errorf("write %s event: %w", d.typ, err)
	}
	return nil
}

// Close destroys the injection node, then releases the descriptor.
func (d *device) Close() error {
	_, derr := sysIoctlRet(d.fd, uiDevDestroy)
	cerr := sysClose(d.fd)
	if derr != nil {
		return fmt.Errorf("destroy %s: %w", d.typ, derr)
	}
	return cerr
}
