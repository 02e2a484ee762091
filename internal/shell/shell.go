// Package shell runs command lines through /bin/sh. The line is handed to the
// shell verbatim, so metacharacters in it are interpreted.
package shell

import (
	"bytes"
	"context"
	"os/exec"
)

// CommandError reports a command that could not start or exited non-zero.
type CommandError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	return "Command failed: " + e.Command + "\n" + e.Stderr
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Run executes cmdline and returns its standard output.
func Run(ctx context.Context, cmdline string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", cmdline)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String(), &CommandError{Command: cmdline, Stderr: stderr.String(), Err: err}
	}
	return stdout.String(), nil
}
