package cmd

import (
	"bytes"
	"testing"

	"mtoohey.com/echo/internal/testutil/assert"
)

func TestWriteTable(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		assert.NoError(t, writeTable(&buf, nil))
		assert.Equal(t, "", buf.String())
	})

	t.Run("aligned", func(t *testing.T) {
		var buf bytes.Buffer
		assert.NoError(t, writeTable(&buf, [][2]string{
			{"host", "127.0.0.1"},
			{"buffer-size", "1024"},
		}))
		assert.Equal(t, "host        127.0.0.1\nbuffer-size 1024\n", buf.String())
	})

	t.Run("wide runes", func(t *testing.T) {
		var buf bytes.Buffer
		assert.NoError(t, writeTable(&buf, [][2]string{
			{"主机", "a"},
			{"port", "b"},
		}))
		assert.Equal(t, "主机 a\nport b\n", buf.String())
	})
}
