package main

import (
	"os"

	"mtoohey.com/echo/internal/client"
	"mtoohey.com/echo/internal/cmd"
	"mtoohey.com/echo/internal/protocol"
	"mtoohey.com/echo/internal/server"

	"github.com/alecthomas/kong"
)

type cli struct {
	cmd.Globals

	Version kong.VersionFlag `short:"v" help:"Print version information and exit."`

	Server server.Cmd    `cmd:"" help:"Accept one connection and echo one message back."`
	Client client.Cmd    `cmd:"" help:"Send one message to the server and print its reply."`
	Config cmd.ConfigCmd `cmd:"" help:"Print the resolved configuration."`
}

func main() {
	var c cli
	parser := kong.Must(&c, append(cmd.TypeMappers,
		kong.Name("echo"),
		kong.Description("Single-shot TCP echo."),
		kong.Vars{"version": protocol.Version},
		kong.UsageOnError(),
	)...)

	cfgArgs, err := cmd.LoadGlobalsConfig()
	parser.FatalIfErrorf(err)

	ctx, err := parser.Parse(append(cfgArgs, os.Args[1:]...))
	parser.FatalIfErrorf(err)

	parser.FatalIfErrorf(ctx.Run(c.Globals))
}
