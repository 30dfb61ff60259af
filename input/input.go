// Package input reads puzzle-style text input: one record per line,
// surrounding whitespace trimmed, blank lines dropped.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// ReadLines opens path and returns its non-empty, trimmed lines.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	lines, err := Lines(f)
	if err != nil {
		return nil, fmt.Errorf("input: reading %s: %w", path, err)
	}

	return lines, nil
}

// Lines splits r on '\n' and returns the non-empty, trimmed lines in order.
// A trailing '\r' is removed with the rest of the surrounding whitespace.
func Lines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var out []string
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
