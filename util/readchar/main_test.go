//go:build unix

package main_test

import (
	"io"
	"os"
	"os/exec"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"

	"github.com/meln5674/getch"
)

// stdinPipe returns a pipe whose read end is handed to readchar as stdin
func stdinPipe(contents string, closeWriter bool) (r, w *os.File) {
	r, w, err := os.Pipe()
	Expect(err).ToNot(HaveOccurred())
	DeferCleanup(r.Close)
	if contents != "" {
		_, err = w.WriteString(contents)
		Expect(err).ToNot(HaveOccurred())
	}
	if closeWriter {
		Expect(w.Close()).To(Succeed())
	} else {
		DeferCleanup(w.Close)
	}
	return r, w
}

func runReadchar(stdin *os.File, args ...string) *gexec.Session {
	cmd := exec.Command(readchar, args...)
	cmd.Stdin = stdin
	session, err := gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
	Expect(err).ToNot(HaveOccurred())
	Eventually(session, 10*time.Second).Should(gexec.Exit())
	return session
}

var _ = Describe("readchar", func() {
	When("a single byte is piped in", func() {
		It("should print it and exit 0", func() {
			r, _ := stdinPipe("A", true)
			session := runReadchar(r)
			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out.Contents()).To(Equal([]byte("A")))
		})
	})

	When("the input is empty", func() {
		It("should print nothing and exit non-zero", func() {
			r, _ := stdinPipe("", true)
			session := runReadchar(r)
			Expect(session.ExitCode()).To(Equal(getch.ExitEndOfStream))
			Expect(session.Out.Contents()).To(BeEmpty())
			Expect(session.Err.Contents()).To(BeEmpty())
		})
	})

	When("input has not arrived yet", func() {
		It("should exit non-zero without waiting for it", func() {
			r, w := stdinPipe("", false)
			session := runReadchar(r)
			Expect(session.ExitCode()).To(Equal(getch.ExitWouldBlock))
			Expect(session.Out.Contents()).To(BeEmpty())

			_, err := w.WriteString("A")
			Expect(err).ToNot(HaveOccurred())
			session = runReadchar(r)
			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out.Contents()).To(Equal([]byte("A")))
		})
	})

	When("more than one byte is available", func() {
		It("should consume only one", func() {
			r, _ := stdinPipe("AB", true)
			session := runReadchar(r)
			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out.Contents()).To(Equal([]byte("A")))
			rest, err := io.ReadAll(r)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(rest)).To(Equal("B"))
		})
	})

	When("ran twice against independent inputs", func() {
		It("should behave the same each time", func() {
			first, _ := stdinPipe("A", true)
			second, _ := stdinPipe("A", true)
			Expect(runReadchar(first).Out.Contents()).To(Equal([]byte("A")))
			Expect(runReadchar(second).Out.Contents()).To(Equal([]byte("A")))
		})
	})

	When("verbose", func() {
		It("should log failures to stderr only", func() {
			r, _ := stdinPipe("", true)
			session := runReadchar(r, "-v", "1")
			Expect(session.ExitCode()).To(Equal(getch.ExitEndOfStream))
			Expect(session.Out.Contents()).To(BeEmpty())
			Expect(string(session.Err.Contents())).To(ContainSubstring("end of stream"))
		})
	})

	When("given positional arguments", func() {
		It("should reject them", func() {
			r, _ := stdinPipe("A", true)
			session := runReadchar(r, "extra")
			Expect(session.ExitCode()).ToNot(Equal(0))
			Expect(session.Out.Contents()).To(BeEmpty())
		})
	})
})
