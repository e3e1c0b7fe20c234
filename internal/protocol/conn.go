package protocol

import (
	"fmt"
	"io"
	"net"
)

// Conn represents one end of an echo connection.
type Conn interface {
	// Receive blocks and returns whatever a single read yields, up to the
	// connection's buffer size. Anything the peer sent past that is not
	// reassembled. If the peer finished sending without sending anything, an
	// empty message and a nil error are returned.
	//
	// It should return an error satisfying errors.Is(err, net.ErrClosed) when
	// the operation cannot be completed because the connection was closed.
	Receive() (Message, error)

	// Send blocks until the whole message has been transmitted.
	//
	// It should return an error satisfying errors.Is(err, net.ErrClosed) when
	// the operation cannot be completed because the connection was closed.
	Send(Message) error

	// CloseWrite signals to the peer that this end will send nothing more,
	// while leaving it able to receive.
	CloseWrite() error

	// RemoteAddr returns the address of the other end of the connection.
	RemoteAddr() net.Addr

	fmt.Stringer
	io.Closer
}
