// Package opener selects the host operating system's "open this folder" command.
package opener

import (
	"fmt"
	"runtime"

	"github.com/MunavvarSinan/node-docker-cli/pkg/cmd/runner"
)

// Opener is the platform-specific generic folder opener.
type Opener int

const (
	// PosixOpener opens folders with xdg-open (Linux and other Unix desktops).
	PosixOpener Opener = iota
	// MacOpener opens folders with macOS's open.
	MacOpener
	// WindowsOpener opens folders with cmd's start builtin.
	WindowsOpener
)

// ForPlatform resolves the opener for a GOOS value. Anything that is neither
// darwin nor windows falls back to the POSIX opener.
func ForPlatform(goos string) Opener {
	switch goos {
	case "darwin":
		return MacOpener
	case "windows":
		return WindowsOpener
	default:
		return PosixOpener
	}
}

// Detect resolves the opener for the running binary.
func Detect() Opener {
	return ForPlatform(runtime.GOOS)
}

// Command returns the invocation that opens path.
func (o Opener) Command(path string) runner.Command {
	switch o {
	case MacOpener:
		return runner.Command{Name: "open", Args: []string{path}}
	case WindowsOpener:
		// start is a cmd builtin; the empty string is the window title argument.
		return runner.Command{Name: "cmd", Args: []string{"/c", "start", "", path}}
	default:
		return runner.Command{Name: "xdg-open", Args: []string{path}}
	}
}

// String returns a human-readable name for the opener.
func (o Opener) String() string {
	switch o {
	case PosixOpener:
		return "xdg-open"
	case MacOpener:
		return "open"
	case WindowsOpener:
		return "start"
	default:
		return fmt.Sprintf("Opener(%d)", int(o))
	}
}
