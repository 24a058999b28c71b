package commands

import (
	"github.com/abiosoft/readline"
	"github.com/josephlewis42/gsh/core/lineedit"
	"github.com/josephlewis42/gsh/core/term"
)

// LineReader reads the next command line. Submitted lines are recorded in
// the shell's history.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// terminalReader runs the built-in editor with the terminal in raw mode.
type terminalReader struct {
	fd     int
	editor *lineedit.Editor
}

var _ LineReader = (*terminalReader)(nil)

func newTerminalReader(s *Shell, fd int) *terminalReader {
	return &terminalReader{
		fd:     fd,
		editor: lineedit.New(s.Stdin, s.Stdout, s.History, s.Prompt.Render),
	}
}

func (r *terminalReader) ReadLine() (string, error) {
	snapshot, err := term.EnterRaw(r.fd)
	if err != nil {
		return "", err
	}
	defer snapshot.Restore()

	stop := term.RestoreOnSignal(snapshot)
	defer stop()

	line, err := r.editor.ReadLine()
	if err != nil {
		return "", err
	}

	return line, snapshot.Restore()
}

func (r *terminalReader) Close() error {
	return nil
}

// plainReader runs the built-in editor without touching the terminal or
// echoing input, for scripts piped into the shell.
type plainReader struct {
	editor *lineedit.Editor
}

var _ LineReader = (*plainReader)(nil)

func newPlainReader(s *Shell) *plainReader {
	editor := lineedit.New(s.Stdin, s.Stdout, s.History, s.Prompt.Render)
	editor.Echo = false
	return &plainReader{editor: editor}
}

func (r *plainReader) ReadLine() (string, error) {
	return r.editor.ReadLine()
}

func (r *plainReader) Close() error {
	return nil
}

// readlineReader uses readline's editor, lines are also recorded in the
// shell's history so the history builtin sees them.
//
// Raw mode is handled by the term package so the snapshot is restored on
// signals the same way as for the built-in editor. A negative fd leaves the
// terminal alone.
type readlineReader struct {
	shell    *Shell
	fd       int
	readline *readline.Instance

	snapshot *term.Snapshot
	stop     func()
}

var _ LineReader = (*readlineReader)(nil)

func newReadlineReader(s *Shell, fd int) (*readlineReader, error) {
	r := &readlineReader{shell: s, fd: fd}

	cfg := &readline.Config{
		Stdin:                  readline.NewCancelableStdin(s.Stdin),
		Stdout:                 s.Stdout,
		Stderr:                 s.Stderr,
		HistoryLimit:           s.History.Cap(),
		DisableAutoSaveHistory: true,
		FuncGetWidth: func() int {
			return term.Width(fd)
		},
		FuncIsTerminal: func() bool {
			return true
		},
		FuncMakeRaw: r.enterRaw,
		FuncExitRaw: r.exitRaw,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}
	r.readline = rl

	return r, nil
}

func (r *readlineReader) enterRaw() error {
	if r.fd < 0 || r.snapshot != nil {
		return nil
	}

	snapshot, err := term.EnterRaw(r.fd)
	if err != nil {
		return err
	}
	r.snapshot = snapshot
	r.stop = term.RestoreOnSignal(snapshot)
	return nil
}

func (r *readlineReader) exitRaw() error {
	if r.stop != nil {
		r.stop()
		r.stop = nil
	}

	snapshot := r.snapshot
	r.snapshot = nil
	return snapshot.Restore()
}

func (r *readlineReader) ReadLine() (string, error) {
	r.readline.SetPrompt(r.shell.Prompt.Render())
	line, err := r.readline.Readline()

	switch {
	case err == readline.ErrInterrupt:
		// Interrupt clears line.
		return "", nil
	case err != nil:
		return "", err
	}

	r.shell.History.Record(line)
	if line != "" {
		if err := r.readline.SaveHistory(line); err != nil {
			r.shell.Logger.Printf("readline history: %v", err)
		}
	}
	return line, nil
}

func (r *readlineReader) Close() error {
	err := r.readline.Close()
	if rerr := r.exitRaw(); err == nil {
		err = rerr
	}
	return err
}
