package server

import (
	"fmt"
	"io"
	"log"

	"mtoohey.com/echo/internal/protocol"
)

// Server accepts exactly one connection, echoes a single message back on it,
// and then closes everything.
type Server struct {
	logger *log.Logger
	// out receives the human readable progress of the exchange.
	out io.Writer

	listener protocol.Listener
}

// NewServer creates a new server that will serve on l. The server takes
// ownership of l and closes it when Serve returns.
func NewServer(l protocol.Listener, out io.Writer, logger *log.Logger) *Server {
	return &Server{
		logger:   logger,
		out:      out,
		listener: l,
	}
}

// Close closes the listening socket, unblocking a Serve that is waiting for
// its connection.
func (s *Server) Close() error {
	s.logger.Println("closing listener")

	return s.listener.Close()
}

// Serve listens, accepts a single connection, and echoes a single receive
// back to it. Both the connection and the listener are closed before Serve
// returns, whether or not it succeeded.
func (s *Server) Serve() (err error) {
	s.logger.Println("beginning serve")
	defer s.logger.Println("finished serve")

	// listen failures are reported before anything has been acquired, but the
	// listener still gets closed in case it was partially set up
	defer func() {
		closeErr := s.listener.Close()

		if err == nil {
			err = closeErr
		} else if closeErr != nil {
			s.logger.Printf("failed to close %s: %s", s.listener, closeErr)
		}
	}()

	if err := s.listener.Listen(); err != nil {
		return fmt.Errorf("listen failed: %w", err)
	}

	s.logger.Printf("started %s", s.listener)
	s.printf("Server listening on %s\n", s.listener.Addr())

	c, err := s.listener.Accept()
	if err != nil {
		return fmt.Errorf("accept failed: %w", err)
	}
	defer func() {
		closeErr := c.Close()

		if err == nil {
			err = closeErr
		} else if closeErr != nil {
			s.logger.Printf("failed to close %s: %s", c, closeErr)
		}
	}()

	s.logger.Printf("accepted connection from: %s", c)
	s.printf("Client connected: %s\n", c.RemoteAddr())

	return s.echo(c)
}

// echo performs the single receive and send of the exchange on c.
func (s *Server) echo(c protocol.Conn) error {
	m, err := c.Receive()
	if err != nil {
		return fmt.Errorf("receive from %s failed: %w", c, err)
	}

	s.logger.Printf("received %d bytes from %s", len(m), c)
	s.printf("Received: %s\n", protocol.Text(m))

	if err := c.Send(m); err != nil {
		return fmt.Errorf("send to %s failed: %w", c, err)
	}

	s.logger.Printf("echoed %d bytes to %s", len(m), c)

	return nil
}

// printf writes progress to out. A failure to report progress doesn't stop
// the exchange.
func (s *Server) printf(format string, a ...any) {
	if _, err := fmt.Fprintf(s.out, format, a...); err != nil {
		s.logger.Printf("failed to write output: %s", err)
	}
}
