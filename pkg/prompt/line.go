package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line prompts over plain reader/writer pairs, one answer per line. An
// empty answer accepts the default; end of input cancels.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine creates a line prompter.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

// readLine returns the next line without its terminator. ok is false at
// end of input with nothing read.
func (l *Line) readLine() (string, bool, error) {
	line, err := l.in.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			if line == "" {
				return "", false, nil
			}
			return strings.TrimRight(line, "\r"), true, nil
		}
		return "", false, err
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}

func (l *Line) Text(title, defaultValue string) (string, bool, error) {
	if defaultValue != "" {
		fmt.Fprintf(l.out, "%s [%s]: ", title, defaultValue)
	} else {
		fmt.Fprintf(l.out, "%s: ", title)
	}
	line, ok, err := l.readLine()
	if !ok || err != nil {
		return "", false, err
	}
	if line == "" {
		return defaultValue, true, nil
	}
	return line, true, nil
}

func (l *Line) Confirm(message string) (bool, error) {
	fmt.Fprintf(l.out, "%s [y/N]: ", message)
	line, ok, err := l.readLine()
	if !ok || err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Choose lists the options numbered from 1. The answer may be the number
// or the option key. An empty answer cancels.
func (l *Line) Choose(title string, options []Option) (string, bool, error) {
	if len(options) == 0 {
		return "", false, ErrNoOptions
	}
	fmt.Fprintln(l.out, title)
	for i, o := range options {
		fmt.Fprintf(l.out, "  %d) %s\n", i+1, o.Label)
	}
	for {
		fmt.Fprint(l.out, "> ")
		line, ok, err := l.readLine()
		if !ok || err != nil {
			return "", false, err
		}
		answer := strings.TrimSpace(line)
		if answer == "" {
			return "", false, nil
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return options[n-1].Key, true, nil
		}
		for _, o := range options {
			if strings.EqualFold(o.Key, answer) {
				return o.Key, true, nil
			}
		}
		fmt.Fprintf(l.out, "unknown choice %q\n", answer)
	}
}
