// Package prompt provides the interactive questions asked while provisioning a project.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MunavvarSinan/node-docker-cli/pkg/utils/notify"
	fcolor "github.com/fatih/color"
)

// ErrNoInput is returned when the input stream ends before an answer was given.
var ErrNoInput = errors.New("no input available")

// Validator checks an answer. A non-nil error is shown and the question is asked again.
type Validator func(answer string) error

// Prompter asks the user questions.
type Prompter interface {
	// Input asks for free text and re-asks until validate accepts the trimmed answer.
	Input(label string, validate Validator) (string, error)
	// Confirm asks a yes/no question. An empty answer selects defaultYes.
	Confirm(label string, defaultYes bool) (bool, error)
}

// TerminalPrompter reads answers line by line from a reader, usually stdin.
type TerminalPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewTerminalPrompter creates a prompter reading from in and writing questions to out.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// Input implements Prompter.
func (p *TerminalPrompter) Input(label string, validate Validator) (string, error) {
	for {
		p.ask(label, "")

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}

		if validate == nil {
			return answer, nil
		}

		validationErr := validate(answer)
		if validationErr == nil {
			return answer, nil
		}

		notify.Errorf(p.writer, "%s", validationErr)
	}
}

// Confirm implements Prompter. Unrecognized answers are asked again; end of
// input selects the default.
func (p *TerminalPrompter) Confirm(label string, defaultYes bool) (bool, error) {
	hint := "(y/N)"
	if defaultYes {
		hint = "(Y/n)"
	}

	for {
		p.ask(label, hint)

		answer, err := p.readLine()
		if errors.Is(err, ErrNoInput) {
			_, _ = fmt.Fprintln(p.writer)

			return defaultYes, nil
		}

		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		notify.Errorf(p.writer, "please answer yes or no")
	}
}

func (p *TerminalPrompter) ask(label, hint string) {
	question := fcolor.New(fcolor.FgGreen).Sprint("? ") + fcolor.New(fcolor.Bold).Sprint(label)
	if hint != "" {
		question += " " + fcolor.New(fcolor.FgHiBlack).Sprint(hint)
	}

	_, _ = fmt.Fprint(p.writer, question+" ")
}

// readLine returns the trimmed next line. A final line without a newline is
// still returned; only an empty stream yields ErrNoInput.
func (p *TerminalPrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}

		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}

		return "", fmt.Errorf("read answer: %w", err)
	}

	return strings.TrimSpace(line), nil
}

var _ Prompter = (*TerminalPrompter)(nil)
