package source

import (
	"path/filepath"
)

// removeBOM strips a leading UTF-8 byte order mark, if present.
// Any other high-bit bytes are left in place; the lexer rejects them
// with a diagnostic instead of guessing an encoding.
func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}
	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

// buildLineIndex collects byte offsets of every '\n' in content.
// LineIdx[i] is the offset of the newline terminating line i+1.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 64)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// toLineCol converts a byte offset into a 1-based line/column pair
// using a precomputed line index. Binary search over LineIdx.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// количество переводов строки строго до off == номер строки - 1
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) / 2
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line := uint32(lo) + 1
	var lineStart uint32
	if lo > 0 {
		lineStart = lineIdx[lo-1] + 1
	}
	return LineCol{Line: line, Col: off - lineStart + 1}
}

func normalizePath(path string) string {
	return filepath.Clean(path)
}

// BaseName returns the last path element.
func BaseName(path string) string {
	return filepath.Base(path)
}

// RelativePath returns path relative to baseDir.
func RelativePath(path, baseDir string) (string, error) {
	return filepath.Rel(baseDir, path)
}
