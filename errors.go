package getch

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInputAvailable is matched by both ErrEndOfStream and ErrWouldBlock, for callers which do not care why nothing was read
	ErrNoInputAvailable = errors.New("no input available")

	// ErrEndOfStream is returned when the descriptor reports end of stream, i.e. nothing will ever be read from it
	ErrEndOfStream = fmt.Errorf("%w: end of stream", ErrNoInputAvailable)

	// ErrWouldBlock is returned when no input is pending yet, but more may arrive later
	ErrWouldBlock = fmt.Errorf("%w: would block", ErrNoInputAvailable)

	// ErrUnsupported is wrapped by FlagQueryError on platforms without descriptor status flags
	ErrUnsupported = errors.New("descriptor flags are not supported on this platform")
)

// A FlagQueryError indicates the status flags of a descriptor could not be read
type FlagQueryError struct {
	Fd  int
	Err error
}

// Error implements error
func (e *FlagQueryError) Error() string {
	return fmt.Sprintf("querying flags of fd %d: %v", e.Fd, e.Err)
}

// Unwrap returns the underlying cause
func (e *FlagQueryError) Unwrap() error {
	return e.Err
}

// A FlagSetError indicates non-blocking mode could not be enabled on a descriptor
type FlagSetError struct {
	Fd  int
	Err error
}

// Error implements error
func (e *FlagSetError) Error() string {
	return fmt.Sprintf("setting non-blocking mode on fd %d: %v", e.Fd, e.Err)
}

// Unwrap returns the underlying cause
func (e *FlagSetError) Unwrap() error {
	return e.Err
}

// A FlagRestoreError indicates a character was read, but the descriptor's original flags could not be put back
type FlagRestoreError struct {
	Fd    int
	Flags int
	Err   error
}

// Error implements error
func (e *FlagRestoreError) Error() string {
	return fmt.Sprintf("restoring flags %#o on fd %d: %v", e.Flags, e.Fd, e.Err)
}

// Unwrap returns the underlying cause
func (e *FlagRestoreError) Unwrap() error {
	return e.Err
}

// A ReadError is any read failure other than end of stream or would-block
type ReadError struct {
	Fd  int
	Err error
}

// Error implements error
func (e *ReadError) Error() string {
	return fmt.Sprintf("reading fd %d: %v", e.Fd, e.Err)
}

// Unwrap returns the underlying cause
func (e *ReadError) Unwrap() error {
	return e.Err
}

const (
	// ExitOK is the exit status of a successful read
	ExitOK = 0
	// ExitFlags is the exit status when descriptor flags could not be queried, set, or restored
	ExitFlags = 1
	// ExitEndOfStream is the exit status when the input has ended
	ExitEndOfStream = 2
	// ExitWouldBlock is the exit status when no input was pending
	ExitWouldBlock = 3
	// ExitReadFailed is the exit status for any other failure
	ExitReadFailed = 4
)

// ExitCode maps the result of a poll to a process exit status
func ExitCode(err error) int {
	var queryErr *FlagQueryError
	var setErr *FlagSetError
	var restoreErr *FlagRestoreError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &queryErr), errors.As(err, &setErr), errors.As(err, &restoreErr):
		return ExitFlags
	case errors.Is(err, ErrEndOfStream):
		return ExitEndOfStream
	case errors.Is(err, ErrWouldBlock):
		return ExitWouldBlock
	default:
		return ExitReadFailed
	}
}
