package domain

// Command is one external tool invocation: a shell command line, the
// directory it runs in, and extra environment entries in KEY=VALUE form.
type Command struct {
	Line string
	Dir  string
	Env  []string
}

func (c Command) String() string { return c.Line }
