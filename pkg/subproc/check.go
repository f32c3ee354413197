package subproc

import "github.com/vertti/witness/pkg/check"

var _ check.Checker = (*Check)(nil)

// Check runs one named external command and reports its exit status.
type Check struct {
	Name    string
	Command Command
	Runner  Runner // injected for testing
}

// Run executes the command and maps its outcome to a Result.
// A launch failure (program not found, not executable) is the same failed
// check as a non-zero exit: one broken check must never abort the suite.
func (c *Check) Run() check.Result {
	if err := c.Runner.Run(c.Command); err != nil {
		return check.Fail(c.Name, err)
	}
	return check.Pass(c.Name)
}
