package source

import "strings"

// File pairs source text with a precomputed line index so byte offsets can
// be mapped to 1-based line/column positions.
type File struct {
	Name       string
	Content    string
	lineStarts []uint32
}

// NewFile builds the line index for the given content.
func NewFile(name, content string) *File {
	starts := []uint32{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, uint32(i+1))
		}
	}
	return &File{Name: name, Content: content, lineStarts: starts}
}

// Position maps a byte offset to a 1-based line and column.
func (f *File) Position(offset uint32) (line, column int) {
	lo, hi := 0, len(f.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, int(offset-f.lineStarts[lo]) + 1
}

// Line returns the text of the 1-based line number, without the newline.
func (f *File) Line(num int) string {
	if num < 1 || num > len(f.lineStarts) {
		return ""
	}
	start := f.lineStarts[num-1]
	rest := f.Content[start:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return rest[:i]
	}
	return rest
}
