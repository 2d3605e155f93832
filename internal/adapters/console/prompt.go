package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Prompter reads line-oriented input with a prompt. It wraps any
// reader/writer pair so the kiosk can be driven by a test script as
// easily as by a terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine prints the prompt and returns the next line, trimmed.
// io.EOF is returned when the input is exhausted.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadFloat reads a decimal number. A nil value means the input was
// blank or not a number.
func (p *Prompter) ReadFloat(prompt string) (*float64, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return nil, err
	}
	f, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return nil, nil
	}
	return &f, nil
}

// ReadDate reads an ISO calendar date (YYYY-MM-DD). A nil value means
// the input did not parse.
func (p *Prompter) ReadDate(prompt string) (*time.Time, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return nil, err
	}
	t, err := time.Parse("2006-01-02", line)
	if err != nil {
		return nil, nil
	}
	return &t, nil
}
