package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/itsatony/go-cuserr"
	"github.com/rs/zerolog/log"

	"github.com/yash15112001/texttool/internal/args"
	"github.com/yash15112001/texttool/internal/config"
	"github.com/yash15112001/texttool/internal/document"
	"github.com/yash15112001/texttool/internal/logging"
	"github.com/yash15112001/texttool/internal/sink"
	"github.com/yash15112001/texttool/internal/transform"
	"github.com/yash15112001/texttool/internal/validate"
)

const usage = "Usage: texttool [ -f | -o output_file_name | -i | -r old new | -p prefix | -c n | -d n ] FILE"

const (
	exitCodeSuccess = 0
	exitCodeUsage   = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code. Every failure,
// whatever its cause, prints the usage line and leaves all files untouched.
func run(arguments []string, stdout, stderr io.Writer) int {
	logging.Setup(config.FromEnv(os.Getenv), stderr)

	if err := process(arguments, stdout); err != nil {
		logFailure(err)
		fmt.Fprintln(stderr, usage)
		return exitCodeUsage
	}

	return exitCodeSuccess
}

func process(arguments []string, stdout io.Writer) error {
	// Parse the command line and make sure the input file is there.
	inv, err := args.Parse(arguments)
	if err != nil {
		return err
	}
	log.Debug().Str("input", inv.InputPath).Int("flags", len(inv.Flags)).Msg("arguments parsed")

	doc, err := document.Load(inv.InputPath)
	if err != nil {
		return err
	}

	if err := validate.Run(inv, doc.Raw); err != nil {
		return err
	}

	output := document.Join(transform.Run(inv, doc.Lines))

	target := sink.Select(inv)
	if err := sink.Write(target, []byte(output), stdout); err != nil {
		return err
	}
	log.Debug().Stringer("sink", target.Kind).Int("bytes", len(output)).Msg("output written")

	return nil
}

// logFailure records why an invocation failed. It only shows up when logging is enabled.
func logFailure(err error) {
	event := log.Debug().Err(err).Bool("invalid_invocation", errors.Is(err, args.ErrInvalidInvocation))

	var customErr *cuserr.CustomError
	if errors.As(err, &customErr) {
		if flag, ok := customErr.GetMetadata(args.MetaKeyFlag); ok {
			event = event.Str("flag", flag)
		}
	}

	event.Msg("invocation rejected")
}
