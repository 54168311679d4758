//go:build linux

package input

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func restoreSyscalls(t *testing.T) {
	t.Cleanup(func() {
		sysOpen = unix.Open
		sysIoctlSet = unix.IoctlSetInt
		sysIoctlRet = unix.IoctlRetInt
		sysWrite = unix.Write
		sysClose = unix.Close
	})
}

func TestNewDeviceClosesDescriptorOnSetupFailure(t *testing.T) {
	restoreSyscalls(t)

	var closed []int
	sysOpen = func(string, int, uint32) (int, error) { return 7, nil }
	sysIoctlSet = func(fd int, req uint, value int) error {
		if req == uiSetKeyBit {
			return unix.EINVAL
		}
		return nil
	}
	sysClose = func(fd int) error {
		closed = append(closed, fd)
		return nil
	}

	_, err := newDevice(deviceKeyboard)
	require.Error(t, err)
	assert.ErrorIs(t, err, unix.EINVAL)
	assert.Equal(t, []int{7}, closed)
}

func TestNewDeviceClosesDescriptorOnCreateFailure(t *testing.T) {
	restoreSyscalls(t)

	var closed []int
	sysOpen = func(string, int, uint32) (int, error) { return 7, nil }
	sysIoctlSet = func(int, uint, int) error { return nil }
	sysWrite = func(fd int, p []byte) (int, error) { return len(p), nil }
	sysIoctlRet = func(fd int, req uint) (int, error) { return 0, unix.EBUSY }
	sysClose = func(fd int) error {
		closed = append(closed, fd)
		return nil
	}

	_, err := newDevice(deviceMouse)
	require.Error(t, err)
	assert.ErrorIs(t, err, unix.EBUSY)
	assert.Equal(t, []int{7}, closed)
}

func TestWriteEventWritesRecordThenSync(t *testing.T) {
	restoreSyscalls(t)

	var records []inputEvent
	sysWrite = func(fd int, p []byte) (int, error) {
		require.Equal(t, 7, fd)
		records = append(records, *(*inputEvent)(unsafe.Pointer(&p[0])))
		return len(p), nil
	}

	d := &device{fd: 7, typ: deviceMouse}
	require.NoError(t, d.WriteEvent(MouseMove(AxisX, 3)))

	require.Len(t, records, 2)
	assert.Equal(t, EvRel, records[0].Type)
	assert.Equal(t, RelX, records[0].Code)
	assert.Equal(t, int32(3), records[0].Value)
	assert.Equal(t, EvSyn, records[1].Type)
	assert.Equal(t, SynReport, records[1].Code)
	assert.Equal(t, int32(0), records[1].Value)
}

func TestWriteEventRejectsUnknownKind(t *testing.T) {
	restoreSyscalls(t)

	sysWrite = func(int, []byte) (int, error) {
		t.Fatal("nothing should be written")
		return 0, nil
	}

	d := &device{fd: 7, typ: deviceMouse}
	var unknownErr *UnknownEventError
	assert.ErrorAs(t, d.WriteEvent(Event{Kind: 99}), &unknownErr)
}

func TestCloseDestroysNodeBeforeReleasingDescriptor(t *testing.T) {
	restoreSyscalls(t)

	var ops []string
	sysIoctlRet = func(fd int, req uint) (int, error) {
		assert.Equal(t, uint(uiDevDestroy), req)
		ops = append(ops, "destroy")
		return 0, nil
	}
	sysClose = func(fd int) error {
		ops = append(ops, "close")
		return nil
	}

	d := &device{fd: 7, typ: deviceMouse}
	require.NoError(t, d.Close())
	assert.Equal(t, []string{"destroy", "close"}, ops)
}

func TestCloseReleasesDescriptorEvenWhenDestroyFails(t *testing.T) {
	restoreSyscalls(t)

	var ops []string
	sysIoctlRet = func(fd int, req uint) (int, error) {
		ops = append(ops, "destroy")
		return 0, unix.ENODEV
	}
	sysClose = func(fd int) error {
		ops = append(ops, "close")
		return nil
	}

	d := &device{fd: 7, typ: deviceKeyboard}
	err := d.Close()
	assert.ErrorIs(t, err, unix.ENODEV)
	assert.Equal(t, []string{"destroy", "close"}, ops)
}
