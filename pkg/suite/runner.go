// Package suite counts check outcomes and produces the final verdict.
package suite

import (
	"github.com/vertti/witness/pkg/check"
	"github.com/vertti/witness/pkg/output"
	"github.com/vertti/witness/pkg/subproc"
)

// Runner runs checks in order and keeps the pass/fail counters.
// One Runner per process invocation; it is not safe for concurrent use,
// and does not need to be: checks run sequentially, each blocking until
// its subprocess exits.
type Runner struct {
	exec subproc.Runner
	pass int
	fail int
}

// New returns a Runner that executes check commands through exec.
func New(exec subproc.Runner) *Runner {
	return &Runner{exec: exec}
}

// Check runs one named command, prints its PASS/FAIL line, and bumps
// exactly one counter. Failure is a normal outcome, not an error: nothing
// propagates, so a broken check can never skip the checks after it.
func (r *Runner) Check(name string, cmd subproc.Command) check.Result {
	c := &subproc.Check{Name: name, Command: cmd, Runner: r.exec}
	result := c.Run()
	r.Record(result)
	return result
}

// Record counts an already-produced result and prints its line.
// Check goes through here; so can results from any other check.Checker.
func (r *Runner) Record(result check.Result) {
	output.PrintCheck(result)
	if result.OK() {
		r.pass++
	} else {
		r.fail++
	}
}

// Report prints the cumulative totals. It mutates nothing and may be
// called any number of times, including between checks.
func (r *Runner) Report() {
	output.PrintReport(r.pass, r.fail)
}

// Passed returns the number of checks that passed so far.
func (r *Runner) Passed() int { return r.pass }

// Failed returns the number of checks that failed so far.
func (r *Runner) Failed() int { return r.fail }

// ExitCode returns the process exit code for the suite: 0 if every check
// passed, 1 otherwise. The os.Exit call itself belongs to the command
// layer, as the last action of the program.
func (r *Runner) ExitCode() int {
	if r.fail == 0 {
		return 0
	}
	return 1
}

// Verdict prints the final pass/fail message and returns the exit code.
func (r *Runner) Verdict() int {
	output.PrintVerdict(r.fail == 0)
	return r.ExitCode()
}
