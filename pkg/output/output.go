// Package output renders harness results on stdout.
//
// The line formats are a contract: scripts grep for "PASS - " and
// "FAIL - " prefixes and for the final "Test passed"/"Test failed"
// verdict, so color codes only ever wrap the status token.
package output

import (
	"fmt"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/witness/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, reset = "", "", ""
	}
}

// PrintCheck outputs exactly one line for a check result.
func PrintCheck(r check.Result) {
	if r.OK() {
		fmt.Printf("%sPASS%s - %s\n", green, reset, r.Name)
	} else {
		fmt.Printf("%sFAIL%s - %s\n", red, reset, r.Name)
	}
}

// PrintReport outputs the cumulative pass/fail totals.
func PrintReport(pass, fail int) {
	fmt.Printf("PASS: %d\n", pass)
	fmt.Printf("FAIL: %d\n", fail)
}

// PrintVerdict outputs the final suite verdict.
func PrintVerdict(passed bool) {
	if passed {
		fmt.Printf("%sTest passed%s\n", green, reset)
	} else {
		fmt.Printf("%sTest failed%s\n", red, reset)
	}
}
