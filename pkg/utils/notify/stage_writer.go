package notify

import (
	"fmt"
	"io"
	"sync"
	"unicode"
	"unicode/utf8"
)

// StageSeparatingWriter wraps an io.Writer and inserts a blank line before every
// title line (a line starting with an emoji) once something has been written.
//
// Usage:
//
//	writer := notify.NewStageSeparatingWriter(cmd.OutOrStdout())
//	cmd.SetOut(writer)
type StageSeparatingWriter struct {
	underlying io.Writer
	hasWritten bool
	mu         sync.Mutex
}

// NewStageSeparatingWriter creates a new StageSeparatingWriter wrapping the given writer.
func NewStageSeparatingWriter(underlying io.Writer) *StageSeparatingWriter {
	return &StageSeparatingWriter{underlying: underlying}
}

// Write implements io.Writer.
func (w *StageSeparatingWriter) Write(data []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(data) == 0 {
		return 0, nil
	}

	if w.hasWritten && startsWithEmoji(data) {
		_, writeErr := w.underlying.Write([]byte{'\n'})
		if writeErr != nil {
			return 0, fmt.Errorf("failed to write stage separator: %w", writeErr)
		}
	}

	bytesWritten, err := w.underlying.Write(data)
	if bytesWritten > 0 {
		w.hasWritten = true
	}

	if err != nil {
		return bytesWritten, fmt.Errorf("failed to write data: %w", err)
	}

	return bytesWritten, nil
}

// Fd exposes the file descriptor of the wrapped writer so terminal detection
// keeps working through the wrapper. It returns ^uintptr(0) when the wrapped
// writer is not backed by a file.
func (w *StageSeparatingWriter) Fd() uintptr {
	if file, ok := w.underlying.(interface{ Fd() uintptr }); ok {
		return file.Fd()
	}

	return ^uintptr(0)
}

// startsWithEmoji reports whether data starts with a pictographic title emoji
// such as 🚀 or 📦. Status symbols (► ✔ ✗ ⚠ ℹ ⏲) and spinner frames are not titles.
func startsWithEmoji(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	firstRune, _ := utf8.DecodeRune(data)
	if firstRune == utf8.RuneError {
		return false
	}

	switch firstRune {
	case '►', '✔', '✗', '⚠', 'ℹ', '⏲':
		return false
	}

	return unicode.Is(unicode.So, firstRune)
}
