package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForwardWriterTrimsNewlines(t *testing.T) {
	t.Parallel()

	var got string

	w := forwardWriter{emit: func(message string, _ ...interface{}) {
		got = message
	}}

	n, err := w.Write([]byte("upstream ready\r\n"))

	assert.NoError(t, err)
	assert.Equal(t, len("upstream ready\r\n"), n)
	assert.Equal(t, "upstream ready", got)
}
