package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetOptionalText prints a prompt and reads a single line. An empty line
// means "no change" and returns nil; anything else, including whitespace
// around a value, is trimmed and returned. Used for sparse profile edits
// where blanking a field must be a deliberate word.
func GetOptionalText(reader *bufio.Reader, prompt string, w io.Writer) (*string, error) {
	line, err := GetSimpleText(reader, prompt+" (empty = keep, '-' = clear)", w)
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, nil
	}
	if line == "-" {
		empty := ""
		return &empty, nil
	}
	return &line, nil
}

// GetPassword prints a password prompt to w and reads a password
// from the user's terminal without echo. A newline is printed after
// the read to keep the UI tidy.
func GetPassword(w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// GetCommaList prints a prompt and reads a comma-separated list. An empty
// line returns nil; "-" returns an empty (but non-nil) list.
func GetCommaList(reader *bufio.Reader, prompt string, w io.Writer) (*[]string, error) {
	line, err := GetOptionalText(reader, prompt+", comma separated", w)
	if err != nil || line == nil {
		return nil, err
	}
	if *line == "" {
		empty := []string{}
		return &empty, nil
	}

	parts := strings.Split(*line, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return &items, nil
}
