package textops

import "strings"

// LineBoundaries returns the [start, end) span of the line containing pos,
// excluding its newline. A position on a "\n" belongs to the line that
// newline terminates.
func LineBoundaries(text string, pos int) (start, end int) {
	pos = clamp(pos, 0, len(text))
	start = strings.LastIndexByte(text[:pos], '\n') + 1
	if i := strings.IndexByte(text[pos:], '\n'); i >= 0 {
		end = pos + i
	} else {
		end = len(text)
	}
	return start, end
}

// CurrentLine returns the text of the line containing pos.
func CurrentLine(text string, pos int) string {
	start, end := LineBoundaries(text, pos)
	return text[start:end]
}

// TouchedLines returns the span covering every line the selection touches.
// A selection ending exactly at the start of a line does not include it.
func TouchedLines(text string, start, end int) (blockStart, blockEnd int) {
	start = clamp(start, 0, len(text))
	end = clamp(end, start, len(text))
	last := end
	if end > start && text[end-1] == '\n' {
		last = end - 1
	}
	blockStart, _ = LineBoundaries(text, start)
	_, blockEnd = LineBoundaries(text, last)
	return blockStart, blockEnd
}

// LeadingWhitespace returns the run of spaces and tabs at the start of line.
func LeadingWhitespace(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i]
}

// lineStarts returns the offset of every line start within [blockStart, blockEnd].
func lineStarts(text string, blockStart, blockEnd int) []int {
	starts := []int{blockStart}
	for i := blockStart; i < blockEnd; i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// removeLines deletes the line block [blockStart, blockEnd) together with its
// trailing newline, if any, and returns the new text and caret position. The
// caret stays at the block's former start.
func removeLines(text string, blockStart, blockEnd int) (string, int) {
	if blockEnd < len(text) {
		blockEnd++
	}
	return text[:blockStart] + text[blockEnd:], blockStart
}
