package logger

import (
	"bytes"
	"log"

	"github.com/gin-gonic/gin"
)

// forwardWriter is an io.Writer that hands each line to a logging function,
// so libraries writing plain text end up in the JSON log stream.
type forwardWriter struct {
	emit func(message string, args ...interface{})
}

func (w forwardWriter) Write(p []byte) (int, error) {
	w.emit(string(bytes.TrimRight(p, "\r\n")))

	return len(p), nil
}

// SetupStdLog routes the standard library log output through our JSON logger.
// The console's own code logs via Interface; this catches third-party noise.
func SetupStdLog(l Interface) {
	log.SetFlags(0)
	log.SetOutput(forwardWriter{emit: l.Warn})
}

// SetupGin routes Gin's request and error logs through our JSON logger.
func SetupGin(l Interface) {
	gin.DefaultWriter = forwardWriter{emit: l.Info}
	gin.DefaultErrorWriter = forwardWriter{emit: func(message string, args ...interface{}) {
		l.Error(message, args...)
	}}
}
