// Package asciiart renders the CLI's banner.
package asciiart

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Logo returns the block letter logo, one string per line.
func Logo() []string {
	return []string{
		" _   _           _        ____  _             _",
		"| \\ | | ___   __| | ___  / ___|| |_ __ _ _ __| |_ ___ _ __",
		"|  \\| |/ _ \\ / _` |/ _ \\ \\___ \\| __/ _` | '__| __/ _ \\ '__|",
		"| |\\  | (_) | (_| |  __/  ___) | || (_| | |  | ||  __/ |",
		"|_| \\_|\\___/ \\__,_|\\___| |____/ \\__\\__,_|_|   \\__\\___|_|",
	}
}

// Tagline returns the line printed under the logo.
func Tagline() string {
	return "Node.js + Docker project starter"
}

var (
	logoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(12)).
			Bold(true)

	taglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(6)).
			Italic(true)
)

// PrintLogo writes the styled logo and tagline to writer.
func PrintLogo(writer io.Writer) {
	_, _ = fmt.Fprintln(writer, logoStyle.Render(strings.Join(Logo(), "\n")))
	_, _ = fmt.Fprintln(writer, taglineStyle.Render(Tagline()))
}
