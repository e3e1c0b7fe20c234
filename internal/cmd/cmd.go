package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"mtoohey.com/echo/internal/protocol"

	"github.com/mattn/go-runewidth"
)

// ConfigCmd prints the configuration that other commands would run with.
type ConfigCmd struct{}

func (c *ConfigCmd) Run(g Globals) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	logPath := g.LogPath
	if logPath == "" {
		logPath = "-"
	}

	return writeTable(os.Stdout, [][2]string{
		{"host", g.Host},
		{"port", strconv.Itoa(int(g.Port))},
		{"address", g.Address().String()},
		{"buffer-size", strconv.Itoa(g.ReceiveBufferSize())},
		{"backlog", strconv.Itoa(protocol.Backlog)},
		{"log-path", logPath},
		{"config-file", path},
		{"version", protocol.Version},
	})
}

// writeTable writes rows as two aligned columns.
func writeTable(w io.Writer, rows [][2]string) error {
	keyWidth := 0
	for _, row := range rows {
		if width := runewidth.StringWidth(row[0]); width > keyWidth {
			keyWidth = width
		}
	}

	for _, row := range rows {
		padding := strings.Repeat(" ", keyWidth-runewidth.StringWidth(row[0]))
		if _, err := fmt.Fprintf(w, "%s%s %s\n", row[0], padding, row[1]); err != nil {
			return fmt.Errorf("write failed: %w", err)
		}
	}

	return nil
}
