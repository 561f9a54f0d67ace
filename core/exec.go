package core

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Runner executes an external program with an argument list, synchronously.
// A nil return means the program launched and exited successfully.
type Runner interface {
	Run(name string, args []string) error
}

// ExecRunner runs programs on the host operating system with the given
// standard streams attached.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var _ Runner = (*ExecRunner)(nil)

// Run executes name with args and waits for it to finish. Launch failures
// and non-zero exits both surface as errors; only the message text differs.
func (r *ExecRunner) Run(name string, args []string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, exec.ErrNotFound):
		return fmt.Errorf("%s: command not found", name)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%s: exit status %d", name, exitErr.ExitCode())
	}
	return fmt.Errorf("%s: %v", name, err)
}
