package getch

import "github.com/go-logr/logr"

// GlobalLog is the default logger to use if a Reader does not have one set.
// It defaults to a no-op logger
var GlobalLog logr.Logger = logr.Discard()

// PollLogLevel is the verbosity level to log to when a poll completes
var PollLogLevel = 1

// DebugLogLevel is the verbosity level to log to for internal debugging messages
var DebugLogLevel = 10
