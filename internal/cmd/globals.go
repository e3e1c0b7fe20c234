package cmd

import (
	"mtoohey.com/echo/internal/protocol"
	"mtoohey.com/echo/internal/util"
)

// Port is a TCP port. On the command line it may be given as a number or as a
// service name such as "http".
type Port uint16

// Globals contains values that apply to multiple commands.
type Globals struct {
	// Host is the host to bind or connect to, depending on the command.
	Host string `short:"H" default:"127.0.0.1" help:"The host to bind or connect to, depending on the command."`
	// Port is the port to bind or connect to, depending on the command.
	Port Port `short:"p" default:"12345" help:"The port (or service name) to bind or connect to, depending on the command."`
	// BufferSize is the most bytes read by a single receive. Values outside of
	// [1, 65536] are clamped.
	BufferSize int `short:"b" default:"1024" help:"The most bytes read by a single receive; anything past this is discarded."`
	// LogPath is the path of the file that diagnostic logs are appended to. Logs
	// are discarded if this flag is not provided.
	LogPath string `short:"l" type:"path" help:"The path of the file diagnostic logs are appended to. Logs are discarded if this flag is not provided."`
}

// Address returns the configured address.
func (g Globals) Address() protocol.Address {
	return protocol.Address{
		Host: g.Host,
		Port: uint16(g.Port),
	}
}

// ReceiveBufferSize returns BufferSize clamped to the supported range.
func (g Globals) ReceiveBufferSize() int {
	return util.Clamp(1, g.BufferSize, protocol.MaxBufferSize)
}
