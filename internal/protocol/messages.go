package protocol

import (
	"net"
	"strconv"
	"strings"
)

const (
	// DefaultHost is the host the server binds to and the client dials when no
	// other host is configured.
	DefaultHost = "127.0.0.1"

	// DefaultPort is the port the server binds to and the client dials when no
	// other port is configured.
	DefaultPort = 12345

	// DefaultBufferSize is the largest number of bytes read by a single
	// receive.
	DefaultBufferSize = 1024

	// MaxBufferSize is the upper bound that configured buffer sizes are
	// clamped to.
	MaxBufferSize = 1 << 16

	// Backlog is the number of pending connections the server's socket will
	// queue before they are accepted.
	Backlog = 1
)

// Message is an opaque sequence of bytes. There is no framing: a message is
// whatever a single receive returns.
type Message []byte

// Text decodes m for display. The bytes are interpreted as UTF-8, with any
// invalid sequences replaced by U+FFFD.
func Text(m Message) string {
	return strings.ToValidUTF8(string(m), "�")
}

// Address identifies the TCP endpoint that the server listens on and the
// client connects to.
type Address struct {
	// Host is the host name or IPv4 address.
	Host string
	// Port is the TCP port.
	Port uint16
}

func (a Address) String() string {
	return net.JoinHostPort(a.Host, strconv.FormatUint(uint64(a.Port), 10))
}
