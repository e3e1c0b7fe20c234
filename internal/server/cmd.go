package server

import (
	"os"

	"mtoohey.com/echo/internal/cmd"
	"mtoohey.com/echo/internal/protocol"
	"mtoohey.com/echo/internal/server/tcpconn"
)

// Cmd runs the listening side of the exchange.
type Cmd struct{}

func (c *Cmd) Run(g cmd.Globals) error {
	logger, err := g.Logger("server")
	if err != nil {
		return err
	}

	s := NewServer(&tcpconn.TCPListener{
		Address:    g.Address(),
		Backlog:    protocol.Backlog,
		BufferSize: g.ReceiveBufferSize(),
	}, os.Stdout, logger)

	return s.Serve()
}
