package ports

// Evaluator evaluates input lines on behalf of a front-end.
type Evaluator interface {
	// Eval returns the exit status of the line. The error is non-nil only
	// when the line asked the shell to exit.
	Eval(line string) (int, error)
	// Source evaluates every line of the file at path as if it were typed.
	Source(path string) (int, error)
}
