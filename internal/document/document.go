package document

import (
	"fmt"
	"os"
	"strings"
)

// Terminator ends every line the tool writes.
const Terminator = "\n"

// Document is the input file's content, kept both whole (for the trailing terminator
// check) and split into terminator-stripped lines.
type Document struct {
	Raw   string
	Lines []string
}

// Load reads the file at path into a Document.
func Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	return New(string(content)), nil
}

// New builds a Document from raw text.
func New(raw string) *Document {
	return &Document{
		Raw:   raw,
		Lines: SplitLines(raw),
	}
}

// SplitLines splits text on "\n", "\r\n" and a lone "\r". Terminators are dropped, and
// text ending in a terminator does not yield a trailing empty line.
func SplitLines(text string) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)

	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}

	if start < len(text) {
		lines = append(lines, text[start:])
	}

	return lines
}

// Join assembles output text: every line followed by Terminator, or "" for no lines.
func Join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(Terminator)
	}
	return b.String()
}
