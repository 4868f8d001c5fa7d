package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/infrastructure/textbuffer"
)

// StdinPath selects standard input as the text source.
const StdinPath = "-"

// BufferOptions describes the text surface a one-shot command edits.
type BufferOptions struct {
	// Cursor and SelectEnd are byte offsets or 1-based "line:col"
	// positions. An empty SelectEnd collapses the selection at Cursor.
	Cursor     string
	SelectEnd  string
	SingleLine bool
	SurfaceID  string
}

// ReadInput reads path, or stdin when path is empty or "-".
func ReadInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == StdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteFile replaces path with text, keeping its permissions.
func WriteFile(path, text string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(text), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// NewBuffer creates an in-memory buffer over text whose native cut, copy
// and paste go through cb.
func NewBuffer(text string, cb port.Clipboard, opts BufferOptions) (*textbuffer.NativeMemory, error) {
	start, err := ParsePosition(text, opts.Cursor)
	if err != nil {
		return nil, fmt.Errorf("--cursor: %w", err)
	}
	end := start
	if opts.SelectEnd != "" {
		if end, err = ParsePosition(text, opts.SelectEnd); err != nil {
			return nil, fmt.Errorf("--select-end: %w", err)
		}
	}

	surface := opts.SurfaceID
	if surface == "" {
		surface = "cli"
	}
	bufOpts := []textbuffer.Option{
		textbuffer.WithSurfaceID(surface),
		textbuffer.WithSelection(start, end),
	}
	if opts.SingleLine {
		bufOpts = append(bufOpts, textbuffer.WithSingleLine())
	}
	return textbuffer.WithNativeClipboard(textbuffer.NewMemory(text, bufOpts...), cb), nil
}

// ParsePosition turns a byte offset or a 1-based "line:col" into a byte
// offset into text. Columns count bytes. Positions past the end clamp.
func ParsePosition(text, pos string) (int, error) {
	pos = strings.TrimSpace(pos)
	if pos == "" {
		return 0, nil
	}

	lineStr, colStr, isLineCol := strings.Cut(pos, ":")
	if !isLineCol {
		offset, err := strconv.Atoi(pos)
		if err != nil || offset < 0 {
			return 0, fmt.Errorf("invalid position %q", pos)
		}
		return min(offset, len(text)), nil
	}

	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return 0, fmt.Errorf("invalid line in %q", pos)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil || col < 1 {
		return 0, fmt.Errorf("invalid column in %q", pos)
	}

	offset := 0
	for i := 1; i < line; i++ {
		nl := strings.IndexByte(text[offset:], '\n')
		if nl < 0 {
			return len(text), nil
		}
		offset += nl + 1
	}
	lineEnd := len(text)
	if nl := strings.IndexByte(text[offset:], '\n'); nl >= 0 {
		lineEnd = offset + nl
	}
	return min(offset+col-1, lineEnd), nil
}
