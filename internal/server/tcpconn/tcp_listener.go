package tcpconn

import (
	"fmt"
	"net"
	"sync"

	"mtoohey.com/echo/internal/protocol"
)

// TCPListener listens for connections on a TCP/IPv4 socket.
type TCPListener struct {
	// Address is the address that should be bound.
	Address protocol.Address
	// Backlog is the number of pending connections the socket will queue.
	Backlog int
	// BufferSize is the receive buffer size of accepted connections. If it is
	// not positive, protocol.DefaultBufferSize is used.
	BufferSize int

	// mu protects writes to tl.
	mu sync.Mutex
	// tl is the underlying listener.
	tl *net.TCPListener
}

func (l *TCPListener) Close() error {
	l.mu.Lock()

	var err error
	if l.tl != nil {
		err = l.tl.Close()
		l.tl = nil
	}

	l.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to close tcp listener: %w", err)
	}

	return nil
}

func (l *TCPListener) Listen() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.tl != nil {
		return nil
	}

	addr, err := net.ResolveTCPAddr("tcp4", l.Address.String())
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", l.Address, err)
	}

	tl, err := listenTCP4(addr, l.Backlog)
	if err != nil {
		return fmt.Errorf("listen tcp failed: %w", err)
	}
	l.tl = tl

	return nil
}

func (l *TCPListener) Accept() (protocol.Conn, error) {
	l.mu.Lock()
	tl := l.tl
	l.mu.Unlock()

	if tl == nil {
		return nil, net.ErrClosed
	}

	tc, err := tl.AcceptTCP()
	if err != nil {
		// AcceptTCP already wraps net.ErrClosed when the listener is closed
		return nil, fmt.Errorf("accept tcp failed: %w", err)
	}

	return &tcpConn{
		tc:         tc,
		bufferSize: receiveSize(l.BufferSize),
	}, nil
}

func (l *TCPListener) Addr() net.Addr {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.tl == nil {
		return nil
	}

	return l.tl.Addr()
}

func (l *TCPListener) String() string {
	addrString := "<nil>"
	if addr := l.Addr(); addr != nil {
		addrString = addr.String()
	}

	return fmt.Sprintf("tcp listener %s", addrString)
}

var _ protocol.Listener = &TCPListener{}
