package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/MKhiriev/go-pass-vault/internal/app"
)

// ErrNoInput is returned when stdin ends before a value was entered.
var ErrNoInput = errors.New("no input provided")

// Prompter reads hidden values such as master keys and secrets.
type Prompter interface {
	ReadSecret(prompt string) (string, error)
}

// terminalPrompter reads without echo when in is a terminal and falls back
// to reading one line otherwise, so the CLI can be scripted.
type terminalPrompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

// NewPrompter returns a [Prompter] over in that writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	return &terminalPrompter{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

func (p *terminalPrompter) ReadSecret(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		value, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(value), nil
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// readConfirmed asks for a value twice and fails when the answers differ.
func readConfirmed(p Prompter, prompt, confirm string) (string, error) {
	first, err := p.ReadSecret(prompt)
	if err != nil {
		return "", err
	}

	second, err := p.ReadSecret(confirm)
	if err != nil {
		return "", err
	}

	if first != second {
		return "", app.ErrKeysDoNotMatch
	}
	return first, nil
}
