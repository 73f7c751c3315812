package launcher

import (
	"errors"
	"fmt"
)

// Exit codes reported by the launcher itself, matching POSIX shells.
const (
	ExitNotExecutable   = 126
	ExitCommandNotFound = 127
)

// ErrInterpreterNotFound is returned when the configured interpreter cannot be executed.
var ErrInterpreterNotFound = errors.New("interpreter not found")

// ExitError reports a non-zero exit code.
// Err is nil when the code comes from the test run itself, whose output already explains the failure.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
