package e2e

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Sarronnn/Algorithms-Date-Constraint/cmd/root"
)

func TestE2E(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "E2E Suite")
}

func Logf(f string, v ...interface{}) {
	if !strings.HasSuffix(f, "\n") {
		f += "\n"
	}
	fmt.Fprintf(GinkgoWriter, f, v...)
}

// The schedule command reports through the process stdout, so the
// command run is wrapped in a pipe swap.
func execute(args ...string) (string, error) {
	stdout := os.Stdout
	r, w, err := os.Pipe()
	Expect(err).ToNot(HaveOccurred())
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	cmd := root.NewRootCmd()
	cmd.SetArgs(args)
	runErr := cmd.Execute()

	Expect(w.Close()).To(Succeed())
	out, err := io.ReadAll(r)
	Expect(err).ToNot(HaveOccurred())

	Logf("output of %v:\n%s", args, out)
	return string(out), runErr
}

func writeProblem(content string) string {
	path := filepath.Join(GinkgoT().TempDir(), "problem.yaml")
	Expect(os.WriteFile(path, []byte(content), 0600)).To(Succeed())
	return path
}

var _ = Describe("Basic schedule command test", func() {
	When("a satisfiable problem file is given", func() {
		It("should print a date for every meeting", func() {
			path := writeProblem(`
meetings: 3
range_start: "2026-09-01"
range_end: "2026-09-14"
constraints:
  - {left: 0, op: "<", right: 1}
  - {left: 1, op: "<", right: 2}
  - {left: 2, op: "!=", date: "2026-09-03"}
`)
			out, err := execute("schedule", path)
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("solution found:"))
			Expect(out).To(ContainSubstring("meeting 0: 2026-09-01"))
			Expect(out).To(ContainSubstring("meeting 1: 2026-09-02"))
			Expect(out).To(ContainSubstring("meeting 2: 2026-09-04"))
		})
	})

	When("an unsatisfiable problem file is given", func() {
		It("should report the conflict and exit cleanly", func() {
			path := writeProblem(`
meetings: 1
range_start: "2026-09-01"
range_end: "2026-09-14"
constraints:
  - {left: 0, op: "<", date: "2026-09-03"}
  - {left: 0, op: ">", date: "2026-09-05"}
`)
			out, err := execute("schedule", path)
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("no solution found: constraints not satisfiable"))
			Expect(out).To(ContainSubstring("(0 < 2026-09-03)"))
			Expect(out).To(ContainSubstring("(0 > 2026-09-05)"))
		})
	})

	When("the problem file does not exist", func() {
		It("should fail", func() {
			_, err := execute("schedule", filepath.Join(GinkgoT().TempDir(), "absent.yaml"))
			Expect(err).To(MatchError(ContainSubstring("not found")))
		})
	})

	When("the bench command runs a small workload", func() {
		It("should report agreeing verdicts and timings", func() {
			out, err := execute("bench", "--meetings", "4", "--days", "6", "--constraints", "5", "--runs", "3", "--seed", "7")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("problems: 3"))
			Expect(out).To(ContainSubstring("csp engine:"))
			Expect(out).To(ContainSubstring("sat check:"))
		})
	})
})
