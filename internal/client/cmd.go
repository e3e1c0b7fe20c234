package client

import (
	"fmt"
	"io"
	"log"
	"os"

	"mtoohey.com/echo/internal/cmd"
	"mtoohey.com/echo/internal/protocol"
	"mtoohey.com/echo/internal/server/tcpconn"
)

// Cmd runs the connecting side of the exchange.
type Cmd struct {
	Message *string `arg:"" optional:"" help:"Message to send. Prompted for on standard input if not provided."`
}

func (c *Cmd) Run(g cmd.Globals) error {
	logger, err := g.Logger("client")
	if err != nil {
		return err
	}

	return c.run(g, os.Stdin, os.Stdout, logger)
}

func (c *Cmd) run(g cmd.Globals, in io.Reader, out io.Writer, logger *log.Logger) (err error) {
	addr := g.Address()

	// connect before asking for anything, so that a missing server is
	// reported straight away
	conn, err := tcpconn.NewTCPClientConn(addr, g.ReceiveBufferSize())
	if err != nil {
		return fmt.Errorf("failed to create connection: %w", err)
	}
	defer func() {
		closeErr := conn.Close()

		if err == nil {
			err = closeErr
		}
	}()

	logger.Printf("connected to %s", addr)

	i := NewInitiator(in, out, logger)

	var m protocol.Message
	if c.Message != nil {
		m = protocol.Message(*c.Message)
	} else {
		m, err = i.Prompt()
		if err != nil {
			return err
		}
	}

	reply, err := i.Exchange(conn, m)
	if err != nil {
		return err
	}

	return i.Report(reply)
}
