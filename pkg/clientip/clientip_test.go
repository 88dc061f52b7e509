package clientip

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	req.RemoteAddr = "203.0.113.9:51234"
	assert.Equal(t, "203.0.113.9", RealClientIP(req))

	req.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", RealClientIP(req))

	// Proxy headers are ignored.
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	req.RemoteAddr = "198.51.100.4"
	assert.Equal(t, "198.51.100.4", RealClientIP(req))
}
