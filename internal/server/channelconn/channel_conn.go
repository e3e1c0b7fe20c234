package channelconn

import (
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"mtoohey.com/echo/internal/protocol"
	"mtoohey.com/echo/internal/util"
)

// ChannelConn can be used to exchange messages over Go channels.
//
// Receive, Send, and Close can be called on multiple goroutines
// simultaneously. CloseWrite must not race with Send on the same end. Closing
// either end tears down the connection: the other end then behaves as if its
// peer had finished sending, and this end returns errors satisfying
// errors.Is(err, net.ErrClosed).
type ChannelConn struct {
	// closed indicates that this end has been closed.
	closed atomic.Bool
	// done is shared by both ends and gets closed when either end is closed.
	done chan struct{}
	// doneOnce is shared by both ends and guards closing done.
	doneOnce *sync.Once

	// writeClosed indicates that send has been closed by this end.
	writeClosed atomic.Bool

	// receive receives messages. It is closed by the other end once that end
	// will send nothing more.
	receive <-chan protocol.Message
	// send can be used to send messages.
	send chan<- protocol.Message

	// bufferSize is the most bytes a single Receive returns.
	bufferSize int
	// addr identifies the other end.
	addr Addr
}

func (cc *ChannelConn) Close() error {
	if cc.closed.Swap(true) {
		// Already closed, don't need to do anything.
		return nil
	}

	// Stop all senders and receivers on both ends.
	cc.doneOnce.Do(func() { close(cc.done) })

	return nil
}

func (cc *ChannelConn) CloseWrite() error {
	if cc.closed.Load() {
		return errConnClosed
	}

	if !cc.writeClosed.Swap(true) {
		close(cc.send)
	}

	return nil
}

var errConnClosed = fmt.Errorf("channel conn closed: %w", net.ErrClosed)

func (cc *ChannelConn) Receive() (protocol.Message, error) {
	if cc.closed.Load() {
		return nil, errConnClosed
	}

	select {
	case <-cc.done:
		if cc.closed.Load() {
			return nil, errConnClosed
		}

		// The other end went away, which reads the same as it finishing.
		return protocol.Message{}, nil

	case m, ok := <-cc.receive:
		if !ok {
			// The other end finished without sending anything.
			return protocol.Message{}, nil
		}

		// Whatever doesn't fit in the buffer is dropped, the same as a single
		// socket read followed by a close.
		return m[:util.Min(len(m), cc.bufferSize)], nil
	}
}

func (cc *ChannelConn) Send(m protocol.Message) error {
	if cc.closed.Load() || cc.writeClosed.Load() {
		return errConnClosed
	}

	// the receiver owns what it gets
	m = append(protocol.Message{}, m...)

	select {
	case <-cc.done:
		return errConnClosed

	case cc.send <- m:
		return nil
	}
}

func (cc *ChannelConn) RemoteAddr() net.Addr {
	return cc.addr
}

func (cc *ChannelConn) String() string {
	return fmt.Sprintf("channel conn %s", cc.addr)
}

var _ protocol.Conn = &ChannelConn{}
