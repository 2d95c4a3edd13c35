package args

import (
	"fmt"
	"os"
)

// Flag is the long name of a command-line option.
type Flag string

const (
	WriteInPlace           Flag = "write-in-place"
	OutputFile             Flag = "output-file"
	CaseInsensitiveReplace Flag = "case-insensitive-replace"
	Replace                Flag = "replace"
	Prefix                 Flag = "prefix"
	Encode                 Flag = "encode"
	Duplicate              Flag = "duplicate"
)

const (
	// readPermissionBit is the bit representing read permission for the file owner (0400 in octal).
	readPermissionBit = 1 << 8
)

// switches maps every accepted command-line spelling to its flag.
var switches = map[string]Flag{
	"-f": WriteInPlace,
	"-o": OutputFile,
	"-i": CaseInsensitiveReplace,
	"-r": Replace,
	"-p": Prefix,
	"-c": Encode,
	"-d": Duplicate,
}

// Invocation holds the parsed command line: each flag that was given together with
// the parameters that followed its last occurrence, and the input file path.
type Invocation struct {
	Flags     map[Flag][]string
	InputPath string
}

// Has reports whether flag was given on the command line.
func (inv *Invocation) Has(flag Flag) bool {
	_, ok := inv.Flags[flag]
	return ok
}

// Params returns the parameters recorded for flag.
func (inv *Invocation) Params(flag Flag) []string {
	return inv.Flags[flag]
}

// Param returns the i-th parameter of flag, or "" when there is none.
func (inv *Invocation) Param(flag Flag, i int) string {
	params := inv.Flags[flag]
	if i < 0 || i >= len(params) {
		return ""
	}
	return params[i]
}

// Parse tokenizes the command-line arguments (program name excluded) and checks
// that the input file can be read.
func Parse(arguments []string) (*Invocation, error) {
	inv, err := Tokenize(arguments)
	if err != nil {
		return nil, err
	}

	if err := validateInputFile(inv.InputPath); err != nil {
		return nil, err
	}

	return inv, nil
}

// Tokenize builds an Invocation from the raw arguments. The last argument is always
// the input path. Every other argument either opens a new parameter list for a flag,
// replacing whatever an earlier occurrence of the same flag collected, or is appended
// to the list of the most recent flag.
func Tokenize(arguments []string) (*Invocation, error) {
	if len(arguments) == 0 {
		return nil, invalid("", ErrMsgNoArguments)
	}

	inv := &Invocation{
		Flags:     make(map[Flag][]string),
		InputPath: arguments[len(arguments)-1],
	}

	var current Flag
	for _, token := range arguments[:len(arguments)-1] {
		if flag, isFlag := switches[token]; isFlag {
			current = flag
			inv.Flags[flag] = []string{}
			continue
		}

		if current == "" {
			return nil, invalid("", fmt.Sprintf("%s: %q", ErrMsgParamBeforeFlag, token))
		}
		inv.Flags[current] = append(inv.Flags[current], token)
	}

	return inv, nil
}

// validateInputFile checks that input exists, is a regular file and is readable.
func validateInputFile(inputPath string) error {
	inputFileInfo, err := os.Stat(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return invalid("", fmt.Sprintf("%s: %s", ErrMsgInputMissing, inputPath))
		}

		// This error occurs when the input file is not accessible due to system errors.
		return wrapInvalid(err, fmt.Sprintf("%s: %s", ErrMsgInputInaccessible, inputPath))
	}

	if inputFileInfo.IsDir() {
		return invalid("", fmt.Sprintf("%s: %s", ErrMsgInputIsDirectory, inputPath))
	}

	if inputFileInfo.Mode().Perm()&(readPermissionBit) == 0 {
		return invalid("", fmt.Sprintf("%s: %s", ErrMsgInputNotReadable, inputPath))
	}

	return nil
}
