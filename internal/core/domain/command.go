package domain

import "strings"

// Command is an external program invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
}

// NewCommand builds a Command from a base argv (such as ["yarn"] or
// ["npx", "nx"]) followed by extra arguments.
func NewCommand(base []string, args ...string) Command {
	if len(base) == 0 {
		return Command{Args: args}
	}
	argv := make([]string, 0, len(base)-1+len(args))
	argv = append(argv, base[1:]...)
	argv = append(argv, args...)
	return Command{Name: base[0], Args: argv}
}

// In returns a copy of c that runs in dir.
func (c Command) In(dir string) Command {
	c.Dir = dir
	return c
}

// String renders the command line for display.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}
