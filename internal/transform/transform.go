// Package transform applies the line transformations selected by an invocation.
// Stages run in a fixed order: replace, prefix, encode, duplicate.
package transform

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/yash15112001/texttool/internal/args"
)

// Run applies every stage whose flag is present in inv to lines and returns the
// resulting lines. inv must already have passed validation.
func Run(inv *args.Invocation, lines []string) []string {
	if inv.Has(args.Replace) {
		lines = Replace(lines,
			inv.Param(args.Replace, 0),
			inv.Param(args.Replace, 1),
			inv.Has(args.CaseInsensitiveReplace))
		log.Debug().Str("stage", "replace").Int("lines", len(lines)).Msg("stage applied")
	}

	if inv.Has(args.Prefix) {
		lines = Prefix(lines, inv.Param(args.Prefix, 0))
		log.Debug().Str("stage", "prefix").Int("lines", len(lines)).Msg("stage applied")
	}

	if inv.Has(args.Encode) {
		shift, _ := strconv.Atoi(inv.Param(args.Encode, 0))
		lines = Encode(lines, shift)
		log.Debug().Str("stage", "encode").Int("rotation", Rotation(shift)).Msg("stage applied")
	}

	if inv.Has(args.Duplicate) {
		n, _ := strconv.Atoi(inv.Param(args.Duplicate, 0))
		lines = Duplicate(lines, n)
		log.Debug().Str("stage", "duplicate").Int("lines", len(lines)).Msg("stage applied")
	}

	return lines
}

// Replace substitutes the first literal occurrence of search in each line with repl.
// With caseInsensitive set, ASCII letters match regardless of case; repl is always
// inserted as given.
func Replace(lines []string, search, repl string, caseInsensitive bool) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		at := indexOf(line, search, caseInsensitive)
		if at < 0 {
			out[i] = line
			continue
		}
		out[i] = line[:at] + repl + line[at+len(search):]
	}
	return out
}

// Prefix prepends prefix to every line, empty lines included.
func Prefix(lines []string, prefix string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = prefix + line
	}
	return out
}

// Duplicate emits each line n+1 times in a row.
func Duplicate(lines []string, n int) []string {
	if n < 0 {
		n = 0
	}

	out := make([]string, 0, len(lines)*(n+1))
	for _, line := range lines {
		for i := 0; i < n+1; i++ {
			out = append(out, line)
		}
	}
	return out
}

func indexOf(s, substr string, caseInsensitive bool) int {
	if !caseInsensitive {
		return strings.Index(s, substr)
	}

	// ASCII folding maps byte for byte, so offsets in the folded copy are valid in s.
	return strings.Index(foldASCII(s), foldASCII(substr))
}

func foldASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
