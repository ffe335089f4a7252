package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxLineBytes bounds a single maze row read by Parse.
const maxLineBytes = 1 << 20

// Parse reads a maze in the text format
//
//	<rows>,<cols>
//	<row 0: exactly cols characters>
//	...
//	<row rows-1>
//
// Validation is strict: the header must hold two positive integers, the
// number of data lines must equal rows, and every line must hold exactly
// cols characters. Trailing blank lines after the last row are ignored and
// a trailing '\r' is stripped from each line. Rows must be valid UTF-8 so
// that Grid.String reproduces them byte for byte. Every failure matches
// ErrFormat and nothing is returned on failure.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	// 1. Header
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%w: reading header: %w", ErrFormat, err)
		}
		return nil, fmt.Errorf("%w: missing header line", ErrFormat)
	}
	rows, cols, err := parseHeader(sc.Text())
	if err != nil {
		return nil, err
	}

	// 2. Rows
	cells := make([][]rune, 0, min(rows, 1024))
	lineNo := 1
	for sc.Scan() {
		lineNo++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if len(cells) == rows {
			if strings.TrimSpace(line) != "" {
				return nil, fmt.Errorf("%w: line %d: more than %d rows", ErrFormat, lineNo, rows)
			}
			continue
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: line %d: invalid UTF-8", ErrFormat, lineNo)
		}
		row := []rune(line)
		if len(row) != cols {
			return nil, fmt.Errorf("%w: line %d: row has %d characters, want %d",
				ErrFormat, lineNo, len(row), cols)
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrFormat, lineNo+1, err)
	}
	if len(cells) != rows {
		return nil, fmt.Errorf("%w: declared %d rows, found %d", ErrFormat, rows, len(cells))
	}

	// 3. Rows are already owned here; skip New's copy.
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// parseHeader reads "<rows>,<cols>", tolerating whitespace around each field.
func parseHeader(line string) (rows, cols int, err error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: header %q: want \"<rows>,<cols>\"", ErrFormat, line)
	}
	rows, err = strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: header rows: %w", ErrFormat, err)
	}
	cols, err = strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: header cols: %w", ErrFormat, err)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("%w: %w: header declares %dx%d", ErrFormat, ErrEmptyGrid, rows, cols)
	}
	return rows, cols, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// ReadFile opens path and parses it as a maze.
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
