package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

const dateLayout = "2006-01-02"

// promptLine prints a prompt to w and reads a single line of input from
// reader, with the trailing newline trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func promptLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
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

// promptDefault is promptLine with a default: an empty answer keeps def.
func promptDefault(reader *bufio.Reader, prompt, def string, w io.Writer) (string, error) {
	label := prompt
	if def != "" {
		label = fmt.Sprintf("%s [%s]", prompt, def)
	}
	line, err := promptLine(reader, label, w)
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// promptList reads one item per line until an empty line.
func promptList(reader *bufio.Reader, prompt string, w io.Writer) ([]string, error) {
	if _, err := fmt.Fprint(w, prompt+" (one per line, empty line to finish)\n"); err != nil {
		return nil, err
	}

	var items []string
	for {
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		items = append(items, line)
	}
	return items, nil
}

// promptBool asks a yes/no question; an empty answer keeps def.
func promptBool(reader *bufio.Reader, prompt string, def bool, w io.Writer) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	line, err := promptLine(reader, fmt.Sprintf("%s (%s)", prompt, hint), w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// promptOptionalInt reads an integer; an empty answer means "not set".
func promptOptionalInt(reader *bufio.Reader, prompt string, def *int, w io.Writer) (*int, error) {
	defStr := ""
	if def != nil {
		defStr = strconv.Itoa(*def)
	}
	line, err := promptDefault(reader, prompt, defStr, w)
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", line)
	}
	return &n, nil
}

// promptDate reads a YYYY-MM-DD date; an empty answer means "not set".
func promptDate(reader *bufio.Reader, prompt string, w io.Writer) (*time.Time, error) {
	line, err := promptLine(reader, prompt+" (YYYY-MM-DD, empty to skip)", w)
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, line)
	if err != nil {
		return nil, fmt.Errorf("not a date: %q", line)
	}
	return &t, nil
}
