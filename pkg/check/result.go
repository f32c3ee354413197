package check

// Status represents the outcome of a check.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name   string // human-readable label, e.g. "update", "add-dep"
	Status Status // PASS or FAIL
	Err    error  // underlying error for failures (non-zero exit or launch failure)
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusPass
}

// Pass returns a passing result for name.
func Pass(name string) Result {
	return Result{Name: name, Status: StatusPass}
}

// Fail returns a failing result for name, keeping err for callers that
// want to show what went wrong. The counters never look at err.
func Fail(name string, err error) Result {
	return Result{Name: name, Status: StatusFail, Err: err}
}
