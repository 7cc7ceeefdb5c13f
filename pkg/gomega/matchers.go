package gomega

import (
	"fmt"

	"github.com/meln5674/getch"
	g "github.com/onsi/gomega"
	gformat "github.com/onsi/gomega/format"
	gtypes "github.com/onsi/gomega/types"
)

type ReadCharMatcher struct {
	Expected byte
}

// HaveReadChar succeeds if the actual value is a *getch.ReadAttempt which succeeded and read the expected character
func HaveReadChar(expected byte) gtypes.GomegaMatcher {
	return &ReadCharMatcher{Expected: expected}
}

func (m *ReadCharMatcher) Match(actual interface{}) (success bool, err error) {
	attempt, ok := actual.(*getch.ReadAttempt)
	if !ok || attempt == nil {
		return false, fmt.Errorf("HaveReadChar expects a non-nil *getch.ReadAttempt, got\n%s", gformat.Object(actual, 1))
	}
	check := g.Succeed()
	success, err = check.Match(attempt.Err)
	if !success || err != nil {
		return
	}
	return attempt.Char == m.Expected, nil
}

func (m *ReadCharMatcher) FailureMessage(actual interface{}) (message string) {
	attempt := actual.(*getch.ReadAttempt)
	if attempt.Err != nil {
		return g.Succeed().FailureMessage(attempt.Err)
	}
	return fmt.Sprintf("Expected to read %q, but read %q", m.Expected, attempt.Char)
}

func (m *ReadCharMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected not to read %q", m.Expected)
}
