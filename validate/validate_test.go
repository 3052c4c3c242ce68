package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	nt "filterbar/entity"
)

func TestIp(t *testing.T) {

	tests := []struct {
		name        string
		text        string
		expectValid bool
		normalized  string
		message     string
	}{
		{
			name:        "bare address normalizes to /32",
			text:        "192.168.1.1",
			expectValid: true,
			normalized:  "192.168.1.1/32",
		},
		{
			name:        "cidr kept as is",
			text:        "192.168.1.0/24",
			expectValid: true,
			normalized:  "192.168.1.0/24",
		},
		{
			name:        "trimmed before normalizing",
			text:        "  10.0.0.1  ",
			expectValid: true,
			normalized:  "10.0.0.1/32",
		},
		{
			name:        "width 22 boundary valid",
			text:        "10.0.0.0/22",
			expectValid: true,
			normalized:  "10.0.0.0/22",
		},
		{
			name:        "width 32 boundary valid",
			text:        "10.0.0.1/32",
			expectValid: true,
			normalized:  "10.0.0.1/32",
		},
		{
			name:    "width 21 too wide",
			text:    "10.0.0.0/21",
			message: "CIDR range must be between 22 and 32",
		},
		{
			name:    "width 33 impossible",
			text:    "10.0.0.1/33",
			message: "CIDR range must be between 22 and 32",
		},
		{
			name:    "slash with no width",
			text:    "10.0.0.1/",
			message: "CIDR range must be between 22 and 32",
		},
		{
			name:    "octet too large",
			text:    "256.0.0.1",
			message: "each octet must be between 0 and 255",
		},
		{
			name:    "octet negative",
			text:    "10.-1.0.1",
			message: "each octet must be between 0 and 255",
		},
		{
			name:    "octet not numeric",
			text:    "10.x.0.1",
			message: "each octet must be between 0 and 255",
		},
		{
			name:    "three octets",
			text:    "10.0.1",
			message: "must be an IP address like 10.1.2.3 or a CIDR range like 10.1.2.0/24",
		},
		{
			name:    "empty",
			text:    "",
			message: "must be an IP address like 10.1.2.3 or a CIDR range like 10.1.2.0/24",
		},
		{
			name:    "not an address at all",
			text:    "potato",
			message: "must be an IP address like 10.1.2.3 or a CIDR range like 10.1.2.0/24",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Ip(tc.text)
			assert.Equal(t, tc.expectValid, res.Valid)
			assert.Equal(t, tc.normalized, res.Normalized)
			assert.Equal(t, tc.message, res.Message)
		})
	}
}

func TestPort(t *testing.T) {

	tests := []struct {
		name        string
		text        string
		expectValid bool
		message     string
	}{
		{name: "low boundary valid", text: "1", expectValid: true},
		{name: "high boundary valid", text: "65535", expectValid: true},
		{name: "zero invalid", text: "0", message: "port must be between 1 and 65535"},
		{name: "too large invalid", text: "65536", message: "port must be between 1 and 65535"},
		{name: "range valid", text: "445-500", expectValid: true},
		{name: "range inverted", text: "500-445", message: "range start must be less than end"},
		{name: "range equal bounds", text: "500-500", message: "range start must be less than end"},
		{name: "range bound out of range", text: "0-500", message: "ports must be between 1 and 65535"},
		{name: "list valid", text: "22,80,443", expectValid: true},
		{name: "list with spaces valid", text: "22, 80, 443", expectValid: true},
		{name: "list names offender", text: "22,99999,443", message: `"99999" is not a valid port`},
		{name: "list with junk entry", text: "22,x", message: `"x" is not a valid port`},
		{name: "not numeric", text: "https", message: "must be a port, a range like 440-450, or a comma-separated list"},
		{name: "empty", text: "", message: "must be a port, a range like 440-450, or a comma-separated list"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Port(tc.text)
			assert.Equal(t, tc.expectValid, res.Valid)
			assert.Equal(t, tc.message, res.Message)
			assert.Empty(t, res.Normalized)
		})
	}
}

func TestTokenValue(t *testing.T) {

	tests := []struct {
		name        string
		validation  string
		value       string
		expectValid bool
	}{
		{name: "ip tag dispatches", validation: "ip", value: "1.2.3.4", expectValid: true},
		{name: "ipAddress tag dispatches", validation: "ipAddress", value: "999.2.3.4", expectValid: false},
		{name: "port tag dispatches", validation: "port", value: "80", expectValid: true},
		{name: "portNumber tag dispatches", validation: "portNumber", value: "0", expectValid: false},
		{name: "no tag passes", validation: "", value: "anything", expectValid: true},
		{name: "unknown tag passes", validation: "hostname", value: "anything", expectValid: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := TokenValue(tc.value, nt.Property{Key: "x", Label: "X", Validation: tc.validation})
			assert.Equal(t, tc.expectValid, res.Valid)
		})
	}
}
