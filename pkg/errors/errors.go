package errors

import (
	"fmt"
	"os"
	"strings"

	"fclip/pkg/logger"

	"github.com/fatih/color"
)

type ExitCode int

const (
	ExitCodeSuccess       ExitCode = 0
	ExitCodeGeneral       ExitCode = 1
	ExitCodeConfig        ExitCode = 2
	ExitCodeInit          ExitCode = 3
	ExitCodeUnavailable   ExitCode = 4
	ExitCodeNoData        ExitCode = 5
	ExitCodeConversion    ExitCode = 6
	ExitCodeCodec         ExitCode = 7
	ExitCodeValidation    ExitCode = 8
	ExitCodeFileOperation ExitCode = 9
	ExitCodeCancellation  ExitCode = 10
)

type Error struct {
	Code       ExitCode
	Message    string
	Underlying error
	Suggestion string
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Underlying)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func New(code ExitCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func NewWithError(code ExitCode, message string, err error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

func NewWithSuggestion(code ExitCode, message string, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if wrapped, ok := err.(*Error); ok {
		return &Error{
			Code:       wrapped.Code,
			Message:    message + ": " + wrapped.Message,
			Underlying: wrapped.Underlying,
			Suggestion: wrapped.Suggestion,
		}
	}

	return &Error{
		Code:       ExitCodeGeneral,
		Message:    message,
		Underlying: err,
	}
}

func IsExitCode(err error, code ExitCode) bool {
	if err == nil {
		return false
	}

	if e, ok := err.(*Error); ok {
		return e.Code == code
	}

	return false
}

// InitError marks a failed clipboard toolkit initialization. The failure
// is cached process-wide, so every subsequent operation reports the same
// cause.
func InitError(err error) *Error {
	return &Error{
		Code:       ExitCodeInit,
		Message:    "clipboard initialization failed",
		Underlying: err,
		Suggestion: "Make sure a display server is available (DISPLAY or WAYLAND_DISPLAY must be set).",
	}
}

// UnavailableError marks a clipboard selection that could not be reached.
func UnavailableError(err error) *Error {
	return &Error{
		Code:       ExitCodeUnavailable,
		Message:    "clipboard unavailable",
		Underlying: err,
	}
}

// NoDataError marks an empty clipboard or a selection without the
// requested content.
func NoDataError(message string) *Error {
	return &Error{
		Code:    ExitCodeNoData,
		Message: message,
	}
}

// ConversionError reports paths that failed path/URI conversion when the
// caller asked for strict handling of the batch.
func ConversionError(skipped []string) *Error {
	return &Error{
		Code:       ExitCodeConversion,
		Message:    fmt.Sprintf("%d path(s) could not be converted to URIs: %s", len(skipped), strings.Join(skipped, ", ")),
		Suggestion: "Use absolute paths, or drop --strict to skip unconvertible entries.",
	}
}

// CodecError marks an image decode or encode failure.
func CodecError(operation string, err error) *Error {
	return &Error{
		Code:       ExitCodeCodec,
		Message:    "image codec failed: " + operation,
		Underlying: err,
	}
}

func ConfigError(message string) *Error {
	return &Error{
		Code:       ExitCodeConfig,
		Message:    message,
		Suggestion: "Check your configuration file or set the FCLIP_* environment variables.",
	}
}

func ValidationError(message string) *Error {
	return &Error{
		Code:    ExitCodeValidation,
		Message: message,
	}
}

func FileOperationError(message string, err error) *Error {
	return &Error{
		Code:       ExitCodeFileOperation,
		Message:    message,
		Underlying: err,
	}
}

func CancelledError(operation string) *Error {
	return &Error{
		Code:       ExitCodeCancellation,
		Message:    fmt.Sprintf("Operation cancelled: %s", operation),
		Suggestion: "The operation was interrupted. No changes were made.",
	}
}

// HandleReturn processes an error, prints it to stderr, and returns the
// matching exit code. The caller is responsible for exiting the program.
func HandleReturn(err error) ExitCode {
	if err == nil {
		return ExitCodeSuccess
	}

	var exitCode ExitCode = ExitCodeGeneral
	var message string
	var suggestion string

	if e, ok := err.(*Error); ok {
		exitCode = e.Code
		message = e.Message
		suggestion = e.Suggestion

		if e.Underlying != nil {
			logger.Error().Err(e.Underlying).Msg(e.Message)
		} else {
			logger.Error().Msg(e.Message)
		}
	} else {
		message = err.Error()
		logger.Error().Msg(message)
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(os.Stderr)
	red.Fprint(os.Stderr, "Error: ")
	fmt.Fprintln(os.Stderr, message)

	if suggestion != "" {
		yellow.Fprint(os.Stderr, "Suggestion: ")
		lines := strings.Split(suggestion, "\n")
		for i, line := range lines {
			if i == 0 {
				fmt.Fprintln(os.Stderr, line)
			} else {
				fmt.Fprintln(os.Stderr, "           "+line)
			}
		}
	}

	fmt.Fprintln(os.Stderr)

	return exitCode
}

// HandleQuietReturn maps an error to its exit code without user-facing
// output beyond the error log.
func HandleQuietReturn(err error) ExitCode {
	if err == nil {
		return ExitCodeSuccess
	}

	if e, ok := err.(*Error); ok {
		return e.Code
	}

	logger.Error().Err(err).Msg("operation failed")
	return ExitCodeGeneral
}
