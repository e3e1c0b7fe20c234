package protocol

import (
	"testing"

	"mtoohey.com/echo/internal/testutil/assert"
)

func TestText(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", Text(nil))
	})

	t.Run("ascii", func(t *testing.T) {
		assert.Equal(t, "hello", Text(Message("hello")))
	})

	t.Run("multibyte", func(t *testing.T) {
		assert.Equal(t, "héllo 世界", Text(Message("héllo 世界")))
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		assert.Equal(t, "a�b", Text(Message{'a', 0xff, 0xfe, 'b'}))
	})
}

func TestAddress_String(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		assert.Equal(t, "127.0.0.1:12345", Address{Host: DefaultHost, Port: DefaultPort}.String())
	})

	t.Run("name", func(t *testing.T) {
		assert.Equal(t, "localhost:0", Address{Host: "localhost"}.String())
	})
}
