package pkg

import (
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// LogTee duplicates log output to every writer, e.g. stdout and the rotated
// log file. A failing writer does not stop the others.
type LogTee struct {
	writers []io.Writer
}

func NewLogTee(writers ...io.Writer) *LogTee {
	return &LogTee{writers: writers}
}

// Write reports len(p) only when every writer took the whole entry.
func (t *LogTee) Write(p []byte) (int, error) {
	var err error
	n := len(p)
	for i, w := range t.writers {
		written, werr := w.Write(p)
		if werr == nil && written < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, fmt.Errorf("log writer %d: %w", i, werr))
			n = min(n, written)
		}
	}
	return n, err
}
