package runner

import (
	"fmt"
	"os/exec"
	"strings"

	"fastcmd/internal/logger"
)

// Runner executes an external command given as a name plus discrete argument
// tokens and returns the command's combined stdout/stderr output.
//
// Commands are never passed through a shell: argument lists reach the kernel
// as-is, so user-supplied package names, URLs, and paths cannot smuggle shell
// metacharacters into an invocation. The flip side is that shell features
// (globbing, pipes, redirection) are unavailable to any command template.
type Runner interface {
	Run(name string, args []string, dir string) ([]byte, error)
}

// CommandError reports an external command that exited with a non-success
// status. The command's combined output is carried verbatim so the caller
// can surface exactly what the tool printed.
type CommandError struct {
	Name   string   // Executable name, e.g. "apt"
	Args   []string // Argument tokens passed to the executable
	Output []byte   // Combined stdout/stderr captured from the command
	Err    error    // Underlying error from the exec layer (holds the exit status)
}

// Error renders the failed command line and its exit error.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", Describe(e.Name, e.Args), e.Err)
}

// Unwrap exposes the underlying exec error so callers can inspect the exit
// status with errors.As if they need it.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Describe renders a command name and its argument tokens as a single
// human-readable line, used for debug logging only.
func Describe(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// ExecRunner is the production Runner. It invokes the command directly via
// os/exec, optionally in the given working directory, and captures combined
// output. Each call blocks until the command finishes; nothing runs
// concurrently and nothing is retried.
type ExecRunner struct{}

// Run executes the command and returns its combined output. On a non-success
// exit status the output is still returned, wrapped alongside the exec error
// in a *CommandError.
func (ExecRunner) Run(name string, args []string, dir string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	logger.Debug("[DEBUG] Running command: %s\n", Describe(name, args))

	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, &CommandError{Name: name, Args: args, Output: output, Err: err}
	}
	return output, nil
}

var _ Runner = ExecRunner{}
