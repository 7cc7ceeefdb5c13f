//go:build unix

package getch

import (
	"errors"

	"golang.org/x/sys/unix"
)

const nonBlockFlag = unix.O_NONBLOCK

func getFlags(fd int) (int, error) {
	return unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
}

// setFlags is swapped out in tests
var setFlags = func(fd int, flags int) error {
	_, err := unix.FcntlInt(uintptr(fd), unix.F_SETFL, flags)
	return err
}

// readOnce bypasses os.File so that the runtime poller never parks on the descriptor
func readOnce(fd int, buf []byte) (int, error) {
	return unix.Read(fd, buf)
}

func isWouldBlock(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
}
