package dispatcher

import (
	"errors"
	"fmt"
)

// Exit statuses reported for commands that never ran.
const (
	StatusCannotExecute = 126
	StatusNotFound      = 127
)

// ExitRequest is returned by Eval when the exit builtin asks the shell to
// terminate with Code.
type ExitRequest struct {
	Code int
}

func (e *ExitRequest) Error() string {
	return fmt.Sprintf("exit requested with status %d", e.Code)
}

// AsExitRequest reports whether err carries an exit request.
func AsExitRequest(err error) (*ExitRequest, bool) {
	var req *ExitRequest
	if errors.As(err, &req) {
		return req, true
	}
	return nil, false
}

// launchReason strips the program name a launch error carries, leaving the
// OS reason.
func launchReason(err error) error {
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}
