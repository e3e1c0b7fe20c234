package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rogpeppe/go-internal/lockedfile"
)

// lockedWriter appends every write to the file at path while holding a lock
// on it, so a server and a client can share one log file.
type lockedWriter struct {
	path string
}

func openLog(path string) (*lockedfile.File, error) {
	return lockedfile.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
}

func (w lockedWriter) Write(p []byte) (n int, err error) {
	f, err := openLog(w.path)
	if err != nil {
		return 0, err
	}
	defer func() {
		closeErr := f.Close()

		if err == nil {
			err = closeErr
		}
	}()

	return f.Write(p)
}

// Logger returns a logger writing to LogPath, or discarding everything if
// LogPath is empty. Each entry is prefixed with name.
func (g Globals) Logger(name string) (*log.Logger, error) {
	var out io.Writer = io.Discard
	if g.LogPath != "" {
		// check that the file is usable now rather than on the first entry
		f, err := openLog(g.LogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("failed to close log file: %w", err)
		}

		out = lockedWriter{path: g.LogPath}
	}

	return log.New(out, fmt.Sprintf("%s: ", name), log.LstdFlags), nil
}
