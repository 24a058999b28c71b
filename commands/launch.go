package commands

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// launch runs an external program and waits for it to exit or be killed.
func (s *Shell) launch(args []string) int {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	// Only hand over real files, copying from any other reader would
	// consume the shell's remaining input.
	if f, ok := s.Stdin.(*os.File); ok {
		cmd.Stdin = f
	}

	s.Logger.Printf("launch %q", args)
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr):
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			s.Logger.Printf("%s killed by %v", args[0], status.Signal())
			return 128 + int(status.Signal())
		}
		return exitErr.ExitCode()
	case errors.Is(err, exec.ErrNotFound):
		s.errorf("%v", err)
		return 127
	default:
		s.errorf("%v", err)
		return 126
	}
}
