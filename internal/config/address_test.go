package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    AddressSpec
		wantErr bool
	}{
		{name: "hostname and port", in: "desktop.lan:5531", want: AddressSpec{Host: "desktop.lan", Port: 5531}},
		{name: "ip and port", in: "192.168.0.100:22", want: AddressSpec{Host: "192.168.0.100", Port: 22}},
		{name: "empty host allowed", in: ":5531", want: AddressSpec{Host: "", Port: 5531}},
		{name: "max port", in: "a:65535", want: AddressSpec{Host: "a", Port: 65535}},
		{name: "no colon", in: "desktop.lan", wantErr: true},
		{name: "missing port", in: "desktop.lan:", wantErr: true},
		{name: "non-numeric port", in: "desktop.lan:http", wantErr: true},
		{name: "overflowing port", in: "desktop.lan:65536", wantErr: true},
		{name: "negative port", in: "desktop.lan:-1", wantErr: true},
		{name: "extraneous segment", in: "desktop.lan:5531:extra", wantErr: true},
		{name: "empty string", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAddress(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddressSpecString(t *testing.T) {
	assert.Equal(t, "desktop.lan:5531", AddressSpec{Host: "desktop.lan", Port: 5531}.String())
}
