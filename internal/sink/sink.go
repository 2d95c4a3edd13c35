package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/yash15112001/texttool/internal/args"
)

// Kind identifies where the transformed text goes.
type Kind int

const (
	Stdout Kind = iota
	InPlace
	NewFile
)

// newFilePermissions is the mode of files created with -o.
const newFilePermissions = 0o644

func (k Kind) String() string {
	switch k {
	case Stdout:
		return "stdout"
	case InPlace:
		return "in-place"
	case NewFile:
		return "new-file"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sink is the output destination chosen for an invocation.
type Sink struct {
	Kind Kind

	// Path of the file written for InPlace and NewFile; empty for Stdout.
	Path string
}

// Select picks the sink for a validated invocation: -f rewrites the input file, -o
// creates a new file, and neither means standard output.
func Select(inv *args.Invocation) Sink {
	switch {
	case inv.Has(args.WriteInPlace):
		return Sink{Kind: InPlace, Path: inv.InputPath}
	case inv.Has(args.OutputFile):
		return Sink{Kind: NewFile, Path: inv.Param(args.OutputFile, 0)}
	default:
		return Sink{Kind: Stdout}
	}
}

// Write sends data to the sink. stdout receives the data for the Stdout kind.
func Write(s Sink, data []byte, stdout io.Writer) error {
	switch s.Kind {
	case Stdout:
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	case InPlace:
		return rewriteFile(s.Path, data)
	case NewFile:
		return createFile(s.Path, data)
	default:
		return fmt.Errorf("unknown sink kind: %s", s.Kind)
	}
}

// rewriteFile truncates the existing file and writes data, keeping its mode.
func rewriteFile(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("failed to open input file for rewriting: %w", err)
	}

	return writeAndClose(file, data)
}

// createFile creates path exclusively, so a file that appeared after validation is
// reported instead of overwritten.
func createFile(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, newFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	return writeAndClose(file, data)
}

func writeAndClose(file *os.File, data []byte) error {
	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", file.Name(), err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", file.Name(), err)
	}

	return nil
}
