package protocol

import (
	"fmt"
	"io"
	"net"
)

// Listener listens for and accepts client connections.
type Listener interface {
	// Listen begins listening for connections. Calling Listen on a Listener
	// that is already listening does nothing.
	//
	// Calling Listen, then Close, then Listen again is invalid. Instead, a new
	// Listener should be created.
	Listen() error

	// Accept blocks and accepts the next client connection.
	//
	// It should return an error satsifying errors.Is(err, net.ErrClosed) when
	// the Listener is closed.
	Accept() (Conn, error)

	// Addr returns the address being listened on, or nil if Listen has not
	// succeeded yet.
	Addr() net.Addr

	fmt.Stringer
	io.Closer
}
