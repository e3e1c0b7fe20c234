package channelconn

import (
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"mtoohey.com/echo/internal/protocol"
)

// Addr is the net.Addr of channel connections and listeners.
type Addr string

func (Addr) Network() string { return "channel" }

func (a Addr) String() string { return string(a) }

// ChannelListener listens for channel connections.
type ChannelListener struct {
	// BufferSize is the most bytes a single Receive returns, on both ends of
	// the connections this listener creates. If it is not positive,
	// protocol.DefaultBufferSize is used.
	BufferSize int

	// closed indicates that the listener has been closed.
	closed atomic.Bool
	// closedCh gets closed when this listener is closed.
	closedCh chan struct{}

	// connCh is used to send connections from a call to Conn to a waiting call
	// to Accept.
	connCh chan *ChannelConn
	// conns counts connections, to give each a distinct address.
	conns atomic.Uint64
}

func (cl *ChannelListener) Close() error {
	if cl.closed.Swap(true) {
		// Already closed, don't need to do anything.
		return nil
	}

	// Stop all calls to Accept and Conn.
	close(cl.closedCh)

	return nil
}

func (cl *ChannelListener) Listen() error { return nil }

var errListenerClosed = fmt.Errorf("channel listener closed: %w", net.ErrClosed)

func (cl *ChannelListener) Accept() (protocol.Conn, error) {
	if cl.closed.Load() {
		return nil, errListenerClosed
	}

	select {
	case <-cl.closedCh:
		return nil, errListenerClosed

	case conn := <-cl.connCh:
		return conn, nil
	}
}

func (cl *ChannelListener) Addr() net.Addr {
	return Addr("listener")
}

func (cl *ChannelListener) String() string {
	return fmt.Sprintf("channel listener %v", cl.connCh)
}

// Conn returns a new connection and hands the opposite end of the connection
// to an ongoing call to this Listener's Accept method. This function will block
// if there is no ongoing Accept call. If the listener is closed while this
// function is blocked waiting for an accept call, it will return nil.
func (cl *ChannelListener) Conn() *ChannelConn {
	if cl.closed.Load() {
		return nil
	}

	bufferSize := cl.BufferSize
	if bufferSize <= 0 {
		bufferSize = protocol.DefaultBufferSize
	}

	n := cl.conns.Add(1)
	done := make(chan struct{})
	doneOnce := &sync.Once{}
	clientSend := make(chan protocol.Message)
	serverSend := make(chan protocol.Message)

	select {
	case <-cl.closedCh:
		return nil

	case cl.connCh <- &ChannelConn{
		done:       done,
		doneOnce:   doneOnce,
		receive:    clientSend,
		send:       serverSend,
		bufferSize: bufferSize,
		addr:       Addr(fmt.Sprintf("client-%d", n)),
	}:

		return &ChannelConn{
			done:       done,
			doneOnce:   doneOnce,
			receive:    serverSend,
			send:       clientSend,
			bufferSize: bufferSize,
			addr:       Addr(fmt.Sprintf("server-%d", n)),
		}
	}
}

func NewChannelListener(bufferSize int) *ChannelListener {
	return &ChannelListener{
		BufferSize: bufferSize,
		connCh:     make(chan *ChannelConn),
		closedCh:   make(chan struct{}),
	}
}

var _ protocol.Listener = &ChannelListener{}
