package commands

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/josephlewis42/gsh/core/config"
	"github.com/josephlewis42/gsh/core/history"
	"github.com/josephlewis42/gsh/core/prompt"
	"github.com/josephlewis42/gsh/core/term"
)

// Shell reads command lines and executes them until told to quit.
type Shell struct {
	Config  *config.Configuration
	History *history.Store
	Prompt  *prompt.Renderer

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Logger receives diagnostics that aren't meant for the user.
	Logger *log.Logger

	reader   LineReader
	tokenize Tokenizer
	lastRet  int

	// Set to true to quit the shell
	Quit bool
}

// Options holds the streams a shell is attached to.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// NewShell creates a shell. If Stdin is a terminal lines are read through
// the configured interactive editor, otherwise they're read without echo.
func NewShell(cfg *config.Configuration, opts Options) (*Shell, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(ioutil.Discard, "", 0)
	}

	s := &Shell{
		Config:   cfg,
		History:  history.New(cfg.HistorySize),
		Stdin:    opts.Stdin,
		Stdout:   opts.Stdout,
		Stderr:   opts.Stderr,
		Logger:   opts.Logger,
		tokenize: TokenizerFor(cfg.Tokenizer),
	}

	interactive := false
	fd := -1
	if f, ok := s.Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		interactive = true
		fd = int(f.Fd())
	}

	s.Prompt = &prompt.Renderer{
		Template: cfg.Prompt,
		Env:      prompt.OSEnv(),
		Tilde:    cfg.Tilde,
		Color:    cfg.Color && interactive,
	}

	switch {
	case interactive && cfg.LineEditor == config.EditorReadline:
		reader, err := newReadlineReader(s, fd)
		if err != nil {
			return nil, err
		}
		s.reader = reader
	case interactive:
		s.reader = newTerminalReader(s, fd)
	default:
		s.reader = newPlainReader(s)
	}

	s.Logger.Printf("interactive: %v, editor: %s, tokenizer: %s", interactive, cfg.LineEditor, cfg.Tokenizer)
	return s, nil
}

// Run reads and executes lines until the shell quits or input ends. It
// returns the shell's exit status.
func (s *Shell) Run() int {
	defer s.reader.Close()

	for !s.Quit {
		line, err := s.reader.ReadLine()
		switch {
		case errors.Is(err, io.EOF):
			return s.lastRet
		case err != nil:
			// The terminal can't be read or put in raw mode, nothing else
			// can be done.
			s.errorf("%v", err)
			return 1
		}

		s.RunCommand(line)
	}

	return s.lastRet
}

// RunCommand executes a single line and returns its exit status.
func (s *Shell) RunCommand(line string) int {
	args, err := s.tokenize(line)
	if err != nil {
		s.errorf("syntax error: %v", err)
		s.lastRet = 2
		return s.lastRet
	}

	if len(args) == 0 {
		// An empty command was entered.
		return s.lastRet
	}

	if builtin, ok := AllBuiltins[args[0]]; ok {
		s.lastRet = builtin.Main(s, args)
		return s.lastRet
	}

	s.lastRet = s.launch(args)
	return s.lastRet
}

// errorf writes a message prefixed with the shell name to stderr.
func (s *Shell) errorf(format string, a ...interface{}) {
	fmt.Fprintf(s.Stderr, "%s: %s\n", s.Config.ErrorPrefix, fmt.Sprintf(format, a...))
}
