package cmd

import (
	"testing"

	"mtoohey.com/echo/internal/protocol"
	"mtoohey.com/echo/internal/testutil/assert"

	"github.com/alecthomas/kong"
)

func parseGlobals(t *testing.T, args ...string) (Globals, error) {
	t.Helper()

	var g Globals
	parser, err := kong.New(&g, TypeMappers...)
	if err != nil {
		t.Fatalf("failed to create parser: %s", err)
	}

	_, err = parser.Parse(args)
	return g, err
}

func TestGlobals_Defaults(t *testing.T) {
	g, err := parseGlobals(t)
	assert.NoError(t, err)
	assert.Equal(t, protocol.Address{Host: protocol.DefaultHost, Port: protocol.DefaultPort}, g.Address())
	assert.Equal(t, protocol.DefaultBufferSize, g.ReceiveBufferSize())
	assert.Equal(t, "", g.LogPath)
}

func TestGlobals_Port(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		g, err := parseGlobals(t, "--port", "4000")
		assert.NoError(t, err)
		assert.Equal(t, Port(4000), g.Port)
	})

	t.Run("service name", func(t *testing.T) {
		g, err := parseGlobals(t, "-p", "http")
		assert.NoError(t, err)
		assert.Equal(t, Port(80), g.Port)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := parseGlobals(t, "--port", "70000")
		assert.Error(t, err)
	})

	t.Run("unknown service", func(t *testing.T) {
		_, err := parseGlobals(t, "--port", "not-a-service")
		assert.Error(t, err)
	})
}

func TestGlobals_ReceiveBufferSize(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		expected int
	}{
		{"zero", 0, 1},
		{"negative", -5, 1},
		{"default", protocol.DefaultBufferSize, protocol.DefaultBufferSize},
		{"huge", 1 << 30, protocol.MaxBufferSize},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Globals{BufferSize: test.size}.ReceiveBufferSize())
		})
	}
}
