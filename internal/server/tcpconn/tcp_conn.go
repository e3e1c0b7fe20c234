package tcpconn

import (
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"

	"mtoohey.com/echo/internal/protocol"
)

type tcpConn struct {
	tc *net.TCPConn
	// bufferSize is the capacity of the buffer used by a single Receive.
	bufferSize int
}

func (tc *tcpConn) Close() error {
	if err := tc.tc.Close(); err != nil {
		return fmt.Errorf("tcp close failed: %w", err)
	}

	return nil
}

func (tc *tcpConn) CloseWrite() error {
	if err := tc.tc.CloseWrite(); err != nil {
		return fmt.Errorf("tcp close write failed: %w", err)
	}

	return nil
}

func (tc *tcpConn) Receive() (protocol.Message, error) {
	buf := make(protocol.Message, tc.bufferSize)

	// exactly one read: whatever it returns is the whole message
	n, err := tc.tc.Read(buf)
	if n > 0 {
		return buf[:n], nil
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			// the peer shut down its write side without sending anything
			return protocol.Message{}, nil
		}

		return nil, fmt.Errorf("tcp receive failed: %w", err)
	}

	return buf[:0], nil
}

func (tc *tcpConn) Send(m protocol.Message) error {
	// Write only returns early with an error, so this sends all of m
	if _, err := tc.tc.Write(m); err != nil {
		if errors.Is(err, syscall.EPIPE) {
			return fmt.Errorf("tcp conn closed: %w", net.ErrClosed)
		}

		return fmt.Errorf("tcp send failed: %w", err)
	}

	return nil
}

func (tc *tcpConn) RemoteAddr() net.Addr {
	return tc.tc.RemoteAddr()
}

func (tc *tcpConn) String() string {
	return fmt.Sprintf("tcp conn %s", tc.tc.RemoteAddr())
}

// receiveSize returns n, or protocol.DefaultBufferSize if n is not positive.
func receiveSize(n int) int {
	if n <= 0 {
		return protocol.DefaultBufferSize
	}

	return n
}

// NewTCPClientConn dials the server at addr over TCP/IPv4. There is no retry
// and no timeout. A bufferSize that is not positive means
// protocol.DefaultBufferSize.
func NewTCPClientConn(addr protocol.Address, bufferSize int) (protocol.Conn, error) {
	raddr, err := net.ResolveTCPAddr("tcp4", addr.String())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", addr, err)
	}

	tc, err := net.DialTCP("tcp4", nil, raddr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
	}

	return &tcpConn{
		tc:         tc,
		bufferSize: receiveSize(bufferSize),
	}, nil
}

var _ protocol.Conn = &tcpConn{}
