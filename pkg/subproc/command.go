// Package subproc runs check commands as subprocesses.
package subproc

import "strings"

// Command is an external command: a program plus its ordered arguments.
type Command struct {
	Program string
	Args    []string
}

// NewCommand builds a Command, normalizing an empty argument list to nil
// so Command values compare equal however they were assembled.
func NewCommand(program string, args ...string) Command {
	if len(args) == 0 {
		args = nil
	}
	return Command{Program: program, Args: args}
}

// String renders the command the way a shell would show it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Program + " " + strings.Join(c.Args, " ")
}
