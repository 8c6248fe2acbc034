package logs

import (
	"bytes"
	"io"
	"os"
	"testing"
)

type Writer io.Writer

func (Module) Writer(
	t *testing.T,
) Writer {
	if t != nil {
		return testWriter{t}
	}
	return os.Stderr
}

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}
