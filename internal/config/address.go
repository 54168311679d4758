package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// AddressSpec is a parsed host:port server descriptor. The host is any
// string, including the empty one; only the structure of the descriptor is
// validated, not whether the host resolves.
type AddressSpec struct {
	Host string
	Port uint16
}

// ParseAddress splits a descriptor on ':'. Exactly two segments are allowed;
// the second must be an unsigned 16-bit port.
func ParseAddress(s string) (AddressSpec, error) {
	parts := strings.Split(s, ":")
	switch {
	case len(parts) < 2:
		return AddressSpec{}, fmt.Errorf("invalid server address %q: expected host:port", s)
	case len(parts) > 2:
		return AddressSpec{}, fmt.Errorf("invalid server address %q: extraneous data after port", s)
	}

	port, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return AddressSpec{}, fmt.Errorf("invalid port in server address %q: %w", s, err)
	}

	return AddressSpec{Host: parts[0], Port: uint16(port)}, nil
}

func (a AddressSpec) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(int(a.Port)))
}
