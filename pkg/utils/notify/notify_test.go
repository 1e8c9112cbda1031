package notify_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MunavvarSinan/node-docker-cli/pkg/utils/notify"
)

func TestWriteMessage_Types(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		msgType notify.MessageType
		want    string
	}{
		{name: "error", msgType: notify.ErrorType, want: "✗ hello\n"},
		{name: "warning", msgType: notify.WarningType, want: "⚠ hello\n"},
		{name: "activity", msgType: notify.ActivityType, want: "► hello\n"},
		{name: "success", msgType: notify.SuccessType, want: "✔ hello\n"},
		{name: "info", msgType: notify.InfoType, want: "ℹ hello\n"},
		{name: "hint", msgType: notify.HintType, want: "hello\n"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			notify.WriteMessage(notify.Message{
				Type:    testCase.msgType,
				Content: "hello",
				Writer:  &out,
			})

			if got := out.String(); got != testCase.want {
				t.Fatalf("output mismatch. want %q, got %q", testCase.want, got)
			}
		})
	}
}

func TestWriteMessage_WithFormatting(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.WriteMessage(notify.Message{
		Type:    notify.ErrorType,
		Content: "error: %s (%d)",
		Args:    []any{"failed", 42},
		Writer:  &out,
	})

	want := "✗ error: failed (42)\n"
	if got := out.String(); got != want {
		t.Fatalf("output mismatch. want %q, got %q", want, got)
	}
}

func TestWriteMessage_MultiLineContentIndented(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.WriteMessage(notify.Message{
		Type:    notify.SuccessType,
		Content: "first line\nsecond line\n\nthird line",
		Writer:  &out,
	})

	want := "✔ first line\n  second line\n\n  third line\n"
	if got := out.String(); got != want {
		t.Fatalf("output mismatch. want %q, got %q", want, got)
	}
}

func TestTitlef(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.Titlef(&out, "🚀", "creating %s", "demo")

	want := "🚀 creating demo\n"
	if got := out.String(); got != want {
		t.Fatalf("output mismatch. want %q, got %q", want, got)
	}
}

func TestWriteMessage_TitleType_DefaultEmoji(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.WriteMessage(notify.Message{
		Type:    notify.TitleType,
		Content: "title",
		Writer:  &out,
	})

	want := "ℹ️ title\n"
	if got := out.String(); got != want {
		t.Fatalf("output mismatch. want %q, got %q", want, got)
	}
}

type fixedTimer struct {
	total time.Duration
	stage time.Duration
}

func (t *fixedTimer) Start() {}

func (t *fixedTimer) NewStage() {}

func (t *fixedTimer) GetTiming() (time.Duration, time.Duration) { return t.total, t.stage }

func TestSuccessWithTimerf_RendersTimingBlock(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	tmr := &fixedTimer{total: 3 * time.Second, stage: 500 * time.Millisecond}

	notify.SuccessWithTimerf(&out, tmr, "cloned %s", "template")

	want := "✔ cloned template\n⏲ current: 500ms\n  total:  3s\n"
	if got := out.String(); got != want {
		t.Fatalf("output mismatch. want %q, got %q", want, got)
	}
}

func TestWriteMessage_ErrorType_DoesNotRenderTimingBlock(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.WriteMessage(notify.Message{
		Type:    notify.ErrorType,
		Content: "test error",
		Timer:   &fixedTimer{total: time.Second},
		Writer:  &out,
	})

	want := "✗ test error\n"
	if got := out.String(); got != want {
		t.Fatalf("output mismatch. want %q, got %q", want, got)
	}
}

type failingWriter struct{}

var errNotifyWriterFailed = errors.New("write failed")

func (f failingWriter) Write(_ []byte) (int, error) {
	return 0, errNotifyWriterFailed
}

//nolint:paralleltest // Replaces os.Stderr.
func TestWriteMessage_HandleNotifyError(t *testing.T) {
	origStderr := os.Stderr

	pipeReader, pipeWriter, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	defer func() { _ = pipeReader.Close() }()

	os.Stderr = pipeWriter

	defer func() { os.Stderr = origStderr }()

	notify.Successf(failingWriter{}, "should fallback")

	_ = pipeWriter.Close()

	data, readErr := io.ReadAll(pipeReader)
	if readErr != nil {
		t.Fatalf("failed to read stderr: %v", readErr)
	}

	if !strings.Contains(string(data), "notify: failed to print message") {
		t.Fatalf("expected error log, got %q", string(data))
	}
}
