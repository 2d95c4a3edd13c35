package validate

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yash15112001/texttool/internal/args"
	"github.com/yash15112001/texttool/internal/document"
)

const (
	minDuplicates = 1
	maxDuplicates = 10

	minShift = -25
	maxShift = 25
)

const (
	ErrMsgOutputConflict     = "-f and -o cannot be combined"
	ErrMsgUnexpectedParams   = "flag takes no parameters"
	ErrMsgWrongParamCount    = "wrong number of parameters"
	ErrMsgOutputExists       = "output file already exists"
	ErrMsgCaseWithoutReplace = "-i requires -r"
	ErrMsgReplaceWithEncode  = "-r and -c cannot be combined"
	ErrMsgEmptySearch        = "search text must not be empty"
	ErrMsgEmptyPrefix        = "prefix must not be empty"
	ErrMsgNotAnInteger       = "parameter is not an integer"
	ErrMsgOutOfRange         = "parameter out of range"
	ErrMsgMissingTerminator  = "non-empty input must end with a line terminator"
	ErrMsgInvalidEncoding    = "input is not valid UTF-8"
)

type rule func(inv *args.Invocation, content string) error

// rules run in order; the first violation rejects the invocation.
var rules = []rule{
	checkOutputMode,
	checkOutputFile,
	checkCaseInsensitive,
	checkReplace,
	checkPrefix,
	checkDuplicate,
	checkEncode,
	checkContent,
}

// Run reports whether the invocation, together with the raw input content, may be
// processed. Any rejection wraps args.ErrInvalidInvocation.
func Run(inv *args.Invocation, content string) error {
	for _, check := range rules {
		if err := check(inv, content); err != nil {
			return err
		}
	}

	return nil
}

// checkOutputMode enforces that -f is parameterless and excludes -o.
func checkOutputMode(inv *args.Invocation, _ string) error {
	if !inv.Has(args.WriteInPlace) {
		return nil
	}

	if inv.Has(args.OutputFile) {
		return args.Invalid(args.WriteInPlace, ErrMsgOutputConflict)
	}

	return requireParams(inv, args.WriteInPlace, 0)
}

// checkOutputFile requires a single path that does not exist yet. Lstat is used so a
// dangling symlink also counts as an existing entry.
func checkOutputFile(inv *args.Invocation, _ string) error {
	if !inv.Has(args.OutputFile) {
		return nil
	}

	if err := requireParams(inv, args.OutputFile, 1); err != nil {
		return err
	}

	outputPath := inv.Param(args.OutputFile, 0)
	if _, err := os.Lstat(outputPath); err == nil {
		return args.Invalid(args.OutputFile, fmt.Sprintf("%s: %s", ErrMsgOutputExists, outputPath))
	}

	return nil
}

func checkCaseInsensitive(inv *args.Invocation, _ string) error {
	if !inv.Has(args.CaseInsensitiveReplace) {
		return nil
	}

	if !inv.Has(args.Replace) {
		return args.Invalid(args.CaseInsensitiveReplace, ErrMsgCaseWithoutReplace)
	}

	return requireParams(inv, args.CaseInsensitiveReplace, 0)
}

// checkReplace requires a non-empty search text and a replacement, which may be empty.
func checkReplace(inv *args.Invocation, _ string) error {
	if !inv.Has(args.Replace) {
		return nil
	}

	if inv.Has(args.Encode) {
		return args.Invalid(args.Replace, ErrMsgReplaceWithEncode)
	}

	if err := requireParams(inv, args.Replace, 2); err != nil {
		return err
	}

	if inv.Param(args.Replace, 0) == "" {
		return args.Invalid(args.Replace, ErrMsgEmptySearch)
	}

	return nil
}

func checkPrefix(inv *args.Invocation, _ string) error {
	if !inv.Has(args.Prefix) {
		return nil
	}

	if err := requireParams(inv, args.Prefix, 1); err != nil {
		return err
	}

	if inv.Param(args.Prefix, 0) == "" {
		return args.Invalid(args.Prefix, ErrMsgEmptyPrefix)
	}

	return nil
}

func checkDuplicate(inv *args.Invocation, _ string) error {
	return checkIntegerFlag(inv, args.Duplicate, minDuplicates, maxDuplicates)
}

func checkEncode(inv *args.Invocation, _ string) error {
	return checkIntegerFlag(inv, args.Encode, minShift, maxShift)
}

// checkContent requires non-empty input to end with a terminator and to decode as UTF-8.
func checkContent(_ *args.Invocation, content string) error {
	if content == "" {
		return nil
	}

	if !strings.HasSuffix(content, document.Terminator) {
		return args.Invalid("", ErrMsgMissingTerminator)
	}

	if !utf8.ValidString(content) {
		return args.Invalid("", ErrMsgInvalidEncoding)
	}

	return nil
}

// checkIntegerFlag requires, when flag is present, exactly one base-10 integer
// parameter within [lo, hi].
func checkIntegerFlag(inv *args.Invocation, flag args.Flag, lo, hi int) error {
	if !inv.Has(flag) {
		return nil
	}

	if err := requireParams(inv, flag, 1); err != nil {
		return err
	}

	value, err := strconv.Atoi(inv.Param(flag, 0))
	if err != nil {
		return args.Invalid(flag, fmt.Sprintf("%s: %q", ErrMsgNotAnInteger, inv.Param(flag, 0)))
	}

	if value < lo || value > hi {
		return args.Invalid(flag, fmt.Sprintf("%s: %d not in [%d, %d]", ErrMsgOutOfRange, value, lo, hi))
	}

	return nil
}

func requireParams(inv *args.Invocation, flag args.Flag, n int) error {
	if got := len(inv.Params(flag)); got != n {
		if n == 0 {
			return args.Invalid(flag, ErrMsgUnexpectedParams)
		}
		return args.Invalid(flag, fmt.Sprintf("%s: want %d, got %d", ErrMsgWrongParamCount, n, got))
	}

	return nil
}
