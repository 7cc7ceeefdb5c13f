//go:build unix

package gomega

import (
	"fmt"

	gformat "github.com/onsi/gomega/format"
	gtypes "github.com/onsi/gomega/types"
	"golang.org/x/sys/unix"
)

type NonBlockingMatcher struct {
	flags int
}

// BeNonBlocking succeeds if the actual value is a descriptor number with O_NONBLOCK set in its status flags
func BeNonBlocking() gtypes.GomegaMatcher {
	return &NonBlockingMatcher{}
}

func (m *NonBlockingMatcher) Match(actual interface{}) (success bool, err error) {
	fd, ok := actual.(int)
	if !ok {
		return false, fmt.Errorf("BeNonBlocking expects a descriptor number, got\n%s", gformat.Object(actual, 1))
	}
	m.flags, err = unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	if err != nil {
		return false, err
	}
	return m.flags&unix.O_NONBLOCK != 0, nil
}

func (m *NonBlockingMatcher) FailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected fd %v to be non-blocking, but its flags were %#o", actual, m.flags)
}

func (m *NonBlockingMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected fd %v to be blocking, but its flags were %#o", actual, m.flags)
}
