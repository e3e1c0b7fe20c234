package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"mtoohey.com/echo/internal/protocol"
)

// ErrNoInput is returned by Prompt when input ends before anything was read.
var ErrNoInput = errors.New("no message entered")

// Initiator drives the connecting side of an exchange.
type Initiator struct {
	logger *log.Logger
	in     *bufio.Reader
	out    io.Writer
}

func NewInitiator(in io.Reader, out io.Writer, logger *log.Logger) *Initiator {
	return &Initiator{
		logger: logger,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Prompt asks for a message and reads a single line. The line ending is not
// part of the message.
func (i *Initiator) Prompt() (protocol.Message, error) {
	if _, err := fmt.Fprint(i.out, "Enter message: "); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}

	line, err := i.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read message: %w", err)
		}

		if line == "" {
			return nil, ErrNoInput
		}

		// the last line doesn't have to be terminated
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return protocol.Message(line), nil
}

// Exchange sends m in full on conn, then waits for and returns the single
// reply.
func (i *Initiator) Exchange(conn protocol.Conn, m protocol.Message) (protocol.Message, error) {
	if err := conn.Send(m); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	i.logger.Printf("sent %d bytes to %s", len(m), conn)

	// nothing else will be sent, and saying so lets an empty message arrive
	// as one
	if err := conn.CloseWrite(); err != nil {
		return nil, fmt.Errorf("failed to finish sending: %w", err)
	}

	reply, err := conn.Receive()
	if err != nil {
		return nil, fmt.Errorf("failed to receive reply: %w", err)
	}

	i.logger.Printf("received %d bytes from %s", len(reply), conn)

	return reply, nil
}

// Report prints the reply.
func (i *Initiator) Report(reply protocol.Message) error {
	if _, err := fmt.Fprintf(i.out, "Server replied: %s\n", protocol.Text(reply)); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	return nil
}
