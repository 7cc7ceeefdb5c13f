//go:build !unix

package getch

const nonBlockFlag = 0

func getFlags(fd int) (int, error) {
	return 0, ErrUnsupported
}

func setFlags(fd int, flags int) error {
	return ErrUnsupported
}

func readOnce(fd int, buf []byte) (int, error) {
	return 0, ErrUnsupported
}

func isWouldBlock(err error) bool {
	return false
}
