// Package getch reads a single character from a descriptor without blocking.
//
// A poll temporarily switches the descriptor into non-blocking mode, makes exactly one read of at most one byte,
// and puts the descriptor's original status flags back before returning, regardless of the outcome.
package getch

import (
	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"
)

// StdinFd is the descriptor number of standard input
const StdinFd = 0

// A ReadAttempt records a single poll of a descriptor
type ReadAttempt struct {
	// Fd is the descriptor that was polled
	Fd int
	// OriginalFlags are the descriptor's status flags before non-blocking mode was enabled. They are restored once the poll finishes.
	OriginalFlags int
	// Terminal is true if the descriptor refers to a terminal
	Terminal bool
	// Char is the character read. It is only meaningful if Err is nil.
	Char byte
	// Err is the outcome of the poll, the same as returned from Reader.Poll()
	Err error
}

// Ok returns true if a character was read
func (a *ReadAttempt) Ok() bool {
	return a.Err == nil
}

// A Reader polls a single descriptor for one character
type Reader struct {
	Fd  int
	Log logr.Logger
}

// NewReader returns a Reader for a raw descriptor number
func NewReader(fd int) *Reader {
	return &Reader{Fd: fd}
}

// Stdin returns a Reader for standard input
func Stdin() *Reader {
	return NewReader(StdinFd)
}

// WithLog sets the logger for this Reader. If never called, GlobalLog is used
func (r *Reader) WithLog(log logr.Logger) *Reader {
	r.Log = log
	return r
}

func (r *Reader) log() logr.Logger {
	if r.Log.GetSink() == nil {
		return GlobalLog
	}
	return r.Log
}

// Poll makes a single attempt to read one character. It never waits for input to arrive.
// If nothing is pending, the returned error matches ErrWouldBlock, and if the input has ended, ErrEndOfStream.
// The returned ReadAttempt is never nil, and its Err is the same as the returned error.
func (r *Reader) Poll() (attempt *ReadAttempt, err error) {
	log := r.log().WithValues("fd", r.Fd)
	attempt = &ReadAttempt{Fd: r.Fd}
	defer func() {
		attempt.Err = err
		if err != nil {
			log.V(PollLogLevel).Info("no character read", "error", err.Error())
			return
		}
		log.V(PollLogLevel).Info("read character", "char", attempt.Char)
	}()

	lease, err := acquireNonBlocking(r.Fd)
	if err != nil {
		return attempt, err
	}
	defer lease.release(log, &err)
	attempt.OriginalFlags = lease.flags
	attempt.Terminal = isatty.IsTerminal(uintptr(r.Fd))
	log.V(DebugLogLevel).Info("non-blocking mode acquired", "flags", lease.flags, "terminal", attempt.Terminal)

	buf := make([]byte, 1)
	n, err := readOnce(r.Fd, buf)
	switch {
	case isWouldBlock(err):
		return attempt, ErrWouldBlock
	case err != nil:
		return attempt, &ReadError{Fd: r.Fd, Err: err}
	case n == 0:
		return attempt, ErrEndOfStream
	}
	attempt.Char = buf[0]
	return attempt, nil
}

// ReadChar polls standard input once for a single character
func ReadChar() (byte, error) {
	attempt, err := Stdin().Poll()
	return attempt.Char, err
}

type nonBlockLease struct {
	fd    int
	flags int
}

func acquireNonBlocking(fd int) (*nonBlockLease, error) {
	flags, err := getFlags(fd)
	if err != nil {
		return nil, &FlagQueryError{Fd: fd, Err: err}
	}
	err = setFlags(fd, flags|nonBlockFlag)
	if err != nil {
		return nil, &FlagSetError{Fd: fd, Err: err}
	}
	return &nonBlockLease{fd: fd, flags: flags}, nil
}

// release puts back the original flags. A failure to do so only replaces retErr if the read itself succeeded.
func (l *nonBlockLease) release(log logr.Logger, retErr *error) {
	err := setFlags(l.fd, l.flags)
	if err == nil {
		log.V(DebugLogLevel).Info("flags restored", "flags", l.flags)
		return
	}
	if *retErr != nil {
		log.Error(err, "restoring flags after failed read", "flags", l.flags)
		return
	}
	*retErr = &FlagRestoreError{Fd: l.fd, Flags: l.flags, Err: err}
}
