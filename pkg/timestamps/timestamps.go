// Package timestamps reads and normalizes timestamp files.
package timestamps

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"regexp"
	"strings"
	"time"
)

const (
	bom = "\ufeff"

	maxLine = 16 << 20
)

var fraction = regexp.MustCompile(`\.\d+`)

// Clean drops non printable ASCII characters, surrounding whitespace and
// fractional seconds from a raw timestamp line.
func Clean(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if r >= 0x20 && r <= 0x7e {
			b.WriteRune(r)
		}
	}
	return fraction.ReplaceAllString(strings.TrimSpace(b.String()), "")
}

// Read returns the cleaned lines of r. Blank lines are kept.
func Read(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	scanner.Split(scanLines)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, bom)
			first = false
		}
		lines = append(lines, Clean(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// scanLines is bufio.ScanLines that also ends a line on a lone '\r'.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// need one more byte to tell "\r" from "\r\n"
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}

var dayLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Day parses the date part of a timestamp and returns midnight UTC of the
// calendar day it names.
func Day(date string) (time.Time, error) {
	var err error
	for _, layout := range dayLayouts {
		var t time.Time
		if t, err = time.Parse(layout, date); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, err
}

// Date returns the date part of a cleaned timestamp.
func Date(ts string) string {
	fields := strings.Fields(ts)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
