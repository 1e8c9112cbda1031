package notify_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MunavvarSinan/node-docker-cli/pkg/utils/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer guards a bytes.Buffer shared with the spinner's animation goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestSpinner_NonTTY_PrintsLifecycleLines(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	spinner := notify.NewSpinner(&out)

	spinner.Start("cloning template")
	spinner.Succeed("template cloned")
	spinner.Start("installing dependencies")
	spinner.Fail("failed to install dependencies")
	spinner.Start("initializing git repository")
	spinner.Warn("failed to initialize git repository")

	want := "► cloning template\n" +
		"✔ template cloned\n" +
		"► installing dependencies\n" +
		"✗ failed to install dependencies\n" +
		"► initializing git repository\n" +
		"⚠ failed to initialize git repository\n"
	assert.Equal(t, want, out.String())
}

func TestSpinner_WithTimer(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	tmr := &fixedTimer{total: 2 * time.Second, stage: time.Second}
	spinner := notify.NewSpinner(&out, notify.WithSpinnerTimer(tmr))

	spinner.Start("cloning template")
	spinner.Succeed("template cloned")

	assert.Equal(t, "► cloning template\n✔ template cloned\n⏲ current: 1s\n  total:  2s\n", out.String())
}

func TestSpinner_TTY_AnimatesAndClears(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}

	spinner := notify.NewSpinner(
		out,
		notify.WithTTY(true),
		notify.WithTickInterval(time.Millisecond),
	)

	spinner.Start("installing dependencies")

	require.Eventually(t, func() bool {
		return strings.Count(out.String(), "installing dependencies") > 1
	}, time.Second, time.Millisecond)

	spinner.Succeed("dependencies installed")

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "\r\033[K"))
	assert.True(t, strings.HasSuffix(got, "\r\033[K✔ dependencies installed\n"))
}

func TestSpinner_SucceedWithoutStart(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.NewSpinner(&out, notify.WithTTY(true)).Succeed("done")

	assert.Equal(t, "✔ done\n", out.String())
}
