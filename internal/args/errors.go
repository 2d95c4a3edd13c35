package args

import (
	"errors"
	"fmt"

	"github.com/itsatony/go-cuserr"
)

// ErrInvalidInvocation is the single failure outcome of parsing and validation. Every
// rejected command line wraps it; callers never need to know which rule fired.
var ErrInvalidInvocation = errors.New("invalid invocation")

// ErrCodeInvocation categorizes every invalid-invocation error.
const ErrCodeInvocation = "TEXTTOOL_INVOCATION"

// MetaKeyFlag names the flag a rule violation refers to, when there is one.
const MetaKeyFlag = "flag"

const (
	ErrMsgNoArguments       = "no arguments given"
	ErrMsgParamBeforeFlag   = "parameter given before any flag"
	ErrMsgInputMissing      = "input file does not exist"
	ErrMsgInputInaccessible = "cannot access input file"
	ErrMsgInputIsDirectory  = "input is a directory, not a file"
	ErrMsgInputNotReadable  = "input file is not readable"
)

// Invalid returns an ErrInvalidInvocation carrying msg and, when flag is set, the
// offending flag as metadata.
func Invalid(flag Flag, msg string) error {
	return invalid(flag, msg)
}

func invalid(flag Flag, msg string) error {
	err := cuserr.WrapStdError(ErrInvalidInvocation, ErrCodeInvocation, msg)
	if flag != "" {
		err = err.WithMetadata(MetaKeyFlag, string(flag))
	}
	return err
}

// wrapInvalid keeps cause reachable through errors.Is alongside ErrInvalidInvocation.
func wrapInvalid(cause error, msg string) error {
	return cuserr.WrapStdError(fmt.Errorf("%w: %w", ErrInvalidInvocation, cause), ErrCodeInvocation, msg)
}
