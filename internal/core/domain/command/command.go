package command

// Command is the argument vector produced for one evaluated line.
type Command struct {
	Argv []string
}

// Argc returns the number of arguments.
func (c Command) Argc() int {
	return len(c.Argv)
}

// Arg returns argument i, or "" when i is out of range. Arg(Argc()) is the
// terminator of the vector.
func (c Command) Arg(i int) string {
	if i < 0 || i >= len(c.Argv) {
		return ""
	}
	return c.Argv[i]
}

// Name returns argv[0], or "" for an empty command.
func (c Command) Name() string {
	return c.Arg(0)
}

// Empty reports whether the command has no arguments.
func (c Command) Empty() bool {
	return len(c.Argv) == 0
}
