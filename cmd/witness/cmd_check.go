package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/witness/pkg/subproc"
	"github.com/vertti/witness/pkg/suite"
)

var checkPaths []string

var checkCmd = &cobra.Command{
	Use:   "check <name> -- <program> [args...]",
	Short: "Run a single ad-hoc check",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringArrayVar(&checkPaths, "path", nil, "directory to prepend to PATH for the check command (repeatable)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	name, command := splitCheckArgs(args)

	s := suite.New(&subproc.RealRunner{ExtraPath: checkPaths})
	s.Check(name, command)
	s.Report()
	os.Exit(s.Verdict())
	return nil
}

// splitCheckArgs maps "name program arg..." onto the check label and its
// command. Cobra has already stripped a "--" separator if one was given.
func splitCheckArgs(args []string) (string, subproc.Command) {
	return args[0], subproc.NewCommand(args[1], args[2:]...)
}
