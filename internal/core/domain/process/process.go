/*
Package process defines the outcome of running an external program.
*/
package process

// AbnormalExit is reported as the exit code of a child that did not exit on
// its own, such as one killed by a signal. It lies outside 0-255.
const AbnormalExit = -1

// Result describes how a child process terminated.
type Result struct {
	ExitCode           int
	TerminatedNormally bool
	// Signal names the terminating signal when TerminatedNormally is false.
	Signal string
}

// Success reports whether the child exited normally with status 0.
func (r Result) Success() bool {
	return r.TerminatedNormally && r.ExitCode == 0
}
