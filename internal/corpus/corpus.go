// SPDX-License-Identifier: MIT
// File: corpus.go
// Role: Corpus path validation and line reading.

// Package corpus reads the text a word graph is built from.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// maxLineBytes bounds a single corpus line.
const maxLineBytes = 1 << 20

// ErrInvalidPath is returned when the corpus path is not a readable regular file.
var ErrInvalidPath = errors.New("corpus: not a readable regular file")

// ValidatePath checks that path names a regular file the process can open.
func ValidatePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPath, path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPath, path, err)
	}
	return f.Close()
}

// ReadLines returns the lines of r without their line terminators
// ("\n" or "\r\n").
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("corpus: reading lines: %w", err)
	}
	return lines, nil
}

// Load validates path and returns its lines.
func Load(path string) ([]string, error) {
	if err := ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()
	return ReadLines(f)
}
