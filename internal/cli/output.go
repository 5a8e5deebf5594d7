package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/tally/internal/csvcodec"
	"github.com/roach88/tally/internal/inventory"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Rejected operation (validation or parse failure)
	ExitCommandError = 2 // Command error (unreadable files, bad database, etc.)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// IsExitError reports whether err is (or wraps) an ExitError.
func IsExitError(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// newFormatter builds the formatter for a command invocation, with
// verbose logs on stderr so they never corrupt JSON output.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "EMPTY_NAME", "INVALID_PRICE", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	// Human-readable text output
	fmt.Fprintln(f.Writer, data)
	return nil
}

// successWith renders the status message in text mode and the structured
// payload in JSON mode.
func (f *OutputFormatter) successWith(message string, payload interface{}) error {
	if f.Format == "json" {
		return f.Success(payload)
	}
	return f.Success(message)
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// reportError renders an engine error through the formatter and converts
// it into an ExitError. Validation and parse failures exit 1; anything
// else (I/O, corrupt database) exits 2.
func reportError(f *OutputFormatter, err error) error {
	var ve *inventory.ValidationError
	if errors.As(err, &ve) {
		f.Error(string(ve.Code), ve.Message, map[string]string{
			"field": ve.Field,
			"value": ve.Value,
		})
		return WrapExitError(ExitFailure, ve.Message, err)
	}

	var pe *csvcodec.ParseError
	if errors.As(err, &pe) {
		f.Error(string(pe.Code), pe.Error(), map[string]interface{}{
			"line":  pe.Line,
			"field": pe.Field,
			"value": pe.Value,
		})
		return WrapExitError(ExitFailure, pe.Error(), err)
	}

	f.Error("IO_FAILURE", err.Error(), nil)
	return WrapExitError(ExitCommandError, "operation failed", err)
}

// itemPayload is the JSON representation of an inventory item.
type itemPayload struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	CategoryDisplay string  `json:"category_display"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	LastTransaction string  `json:"last_transaction"`
}

func newItemPayload(item *inventory.Item) itemPayload {
	return itemPayload{
		ID:              item.ID,
		Name:            item.Name,
		Category:        item.Category.String(),
		CategoryDisplay: item.Category.DisplayName(),
		Quantity:        item.Quantity,
		Price:           item.Price,
		LastTransaction: csvcodec.FormatTimestamp(item.LastTransaction),
	}
}
