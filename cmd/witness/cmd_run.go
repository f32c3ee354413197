package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/witness/pkg/subproc"
	"github.com/vertti/witness/pkg/suite"
	"github.com/vertti/witness/pkg/suitefile"
)

var (
	runFile     string
	runPaths    []string
	runProgress bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run checks from a .witness file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runFile, "file", "", "path to .witness file (default: search up from current directory)")
	runCmd.Flags().StringArrayVar(&runPaths, "path", nil, "directory to prepend to PATH for check commands (repeatable)")
	runCmd.Flags().BoolVar(&runProgress, "progress", false, "print running totals after each check")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	explicit := runFile
	if len(args) == 1 {
		explicit = args[0]
	}

	suitePath, err := suitefile.FindFile(wd, explicit)
	if err != nil {
		return err
	}

	entries, err := suitefile.ParseFile(suitePath)
	if err != nil {
		return err
	}

	s := suite.New(&subproc.RealRunner{ExtraPath: runPaths})
	for _, entry := range entries {
		s.Check(entry.Name, entry.Command)
		if runProgress {
			s.Report()
		}
	}

	// Final report and verdict; this exit is the program's last action.
	s.Report()
	os.Exit(s.Verdict())
	return nil
}
