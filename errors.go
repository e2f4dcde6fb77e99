package mdpress

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for library operations.
var (
	// ErrNoInput is fatal: nothing is built when no source document resolves.
	ErrNoInput = errors.New("no input file found")

	// ErrConversion matches every *ConversionError.
	ErrConversion = errors.New("conversion failed")

	// Option validation errors.
	ErrInvalidMargin   = errors.New("invalid margin")
	ErrInvalidTOCLevel = errors.New("invalid TOC level")
	ErrInvalidDate     = errors.New("invalid datestamp format")

	// Post-build errors.
	ErrOpen   = errors.New("open failed")
	ErrRemove = errors.New("remove failed")
)

// ConversionError reports an external tool that failed. It is recovered:
// the builder prints it and moves on to the next target.
type ConversionError struct {
	Tool     string // executable name
	File     string // file the tool was asked to convert
	ExitCode int    // -1 when the process never started
	Output   string // combined stdout and stderr
	Err      error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("%s build failed: %s Return Code: %d", e.Tool, e.File, e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += " Error Message: " + out
	} else if e.Err != nil {
		msg += " Error Message: " + e.Err.Error()
	}
	return msg
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrConversion) true for any ConversionError.
func (e *ConversionError) Is(target error) bool { return target == ErrConversion }
