// readchar polls stdin once for a single byte and prints it to stdout.
// It exits 0 if a byte was read, and non-zero if nothing was pending, the input has ended, or stdin could not be switched to non-blocking mode.
package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"

	"github.com/meln5674/getch"
)

const exitUsage = 1

type options struct {
	verbosity int
	fd        int
}

func newRootCommand(stdout io.Writer, pollErr *error) *cobra.Command {
	opts := options{fd: getch.StdinFd}
	cmd := &cobra.Command{
		Use:           "readchar",
		Short:         "Read a single character from stdin without waiting for one",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			stdr.SetVerbosity(opts.verbosity)
			logger := stdr.New(log.New(cmd.ErrOrStderr(), "readchar ", log.LstdFlags))
			getch.GlobalLog = logger

			char, err := readChar(cmd, opts.fd)
			err = emit(stdout, char, err)
			if err != nil {
				*pollErr = err
				logger.V(1).Info("poll failed", "error", err.Error(), "exitCode", getch.ExitCode(err))
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&opts.verbosity, "verbosity", "v", 0, "Log verbosity, logs go to stderr")
	cmd.Flags().IntVar(&opts.fd, "fd", getch.StdinFd, "Descriptor to poll instead of stdin")
	return cmd
}

func readChar(cmd *cobra.Command, fd int) (byte, error) {
	if !cmd.Flags().Changed("fd") {
		return getch.ReadChar()
	}
	attempt, err := getch.NewReader(fd).Poll()
	return attempt.Char, err
}

// emit writes the character if one was read, which includes when only restoring the descriptor's flags failed
func emit(stdout io.Writer, char byte, pollErr error) error {
	var restoreErr *getch.FlagRestoreError
	if pollErr != nil && !errors.As(pollErr, &restoreErr) {
		return pollErr
	}
	if _, err := stdout.Write([]byte{char}); err != nil {
		return err
	}
	return pollErr
}

func run(args []string, stdout, stderr io.Writer) int {
	var pollErr error
	cmd := newRootCommand(stdout, &pollErr)
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if err == nil {
		return getch.ExitOK
	}
	if pollErr == nil {
		cmd.PrintErrln("Error:", err.Error())
		return exitUsage
	}
	return getch.ExitCode(pollErr)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
