package cmd

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"mtoohey.com/echo/internal/testutil/assert"
)

func TestGlobals_Logger(t *testing.T) {
	t.Run("discard", func(t *testing.T) {
		logger, err := Globals{}.Logger("server")
		assert.NoError(t, err)
		logger.Println("nowhere")
	})

	t.Run("shared file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "echo.log")

		server, err := Globals{LogPath: path}.Logger("server")
		assert.NoError(t, err)
		client, err := Globals{LogPath: path}.Logger("client")
		assert.NoError(t, err)

		server.Println("listening")
		client.Println("connecting")
		server.Println("echoed")

		b, err := os.ReadFile(path)
		assert.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
		assert.Equal(t, 3, len(lines))
		assert.True(t, strings.HasPrefix(lines[0], "server: "))
		assert.Contains(t, lines[0], "listening")
		assert.True(t, strings.HasPrefix(lines[1], "client: "))
		assert.Contains(t, lines[2], "echoed")
	})

	t.Run("concurrent writers", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "echo.log")

		server, err := Globals{LogPath: path}.Logger("server")
		assert.NoError(t, err)
		client, err := Globals{LogPath: path}.Logger("client")
		assert.NoError(t, err)

		const writers, entries = 8, 25
		payload := strings.Repeat("x", 4096)

		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			logger := server
			if i%2 == 1 {
				logger = client
			}

			wg.Add(1)
			go func(logger *log.Logger, i int) {
				defer wg.Done()
				for j := 0; j < entries; j++ {
					logger.Printf("writer %d entry %d %s", i, j, payload)
				}
			}(logger, i)
		}
		wg.Wait()

		b, err := os.ReadFile(path)
		assert.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
		assert.Equal(t, writers*entries, len(lines))
		for _, line := range lines {
			// an interleaved write would break either the prefix or the
			// payload at the end of the line
			assert.True(t, strings.HasPrefix(line, "server: ") || strings.HasPrefix(line, "client: "))
			assert.True(t, strings.HasSuffix(line, " "+payload))
		}
	})

	t.Run("bad path", func(t *testing.T) {
		_, err := Globals{LogPath: filepath.Join(t.TempDir(), "missing", "echo.log")}.Logger("server")
		assert.Error(t, err)
	})
}
