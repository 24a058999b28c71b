// Package lineedit implements a minimal line editor with arrow key history
// navigation. It consumes raw terminal bytes one at a time and renders the
// edit line to a display writer.
//
// Only the cursor up and cursor down CSI sequences are understood, every
// other escape sequence is read and dropped.
package lineedit

import (
	"bufio"
	"errors"
	"io"

	"github.com/josephlewis42/gsh/core/history"
)

const (
	keyEscape    = 0x1b
	keyBackspace = '\b'
	keyDelete    = 127
	keyEOF       = 0x04 // Ctrl-D

	// clearLine erases the whole terminal line and returns to column 0.
	clearLine = "\x1b[2K\r"
	// eraseColumn erases the character left of the cursor.
	eraseColumn = "\b \b"
)

type state int

const (
	stateNormal state = iota
	stateEscape
)

// action is the outcome of feeding a byte to the editor.
type action int

const (
	actionContinue action = iota
	actionSubmit
	actionEOF
)

// Editor reads lines from a byte stream.
//
// One Editor should be used for the lifetime of an input stream, it buffers
// bytes read past the end of a line for the next call to ReadLine.
type Editor struct {
	in      *bufio.Reader
	out     io.Writer
	history *history.Store
	prompt  func() string

	// Echo controls whether typed characters, erasures and redraws are
	// written to the display.
	Echo bool

	// Current line state, valid during ReadLine.
	buf    *Buffer
	state  state
	esc    [2]byte
	escLen int

	// afterCR is set when the last line ended with \r, so a \n that
	// immediately follows belongs to the same terminator.
	afterCR bool
}

// New creates an editor reading from in, displaying to out and recording
// submitted lines into hist. prompt is called every time the line is drawn.
func New(in io.Reader, out io.Writer, hist *history.Store, prompt func() string) *Editor {
	if prompt == nil {
		prompt = func() string { return "" }
	}

	return &Editor{
		in:      bufio.NewReader(in),
		out:     out,
		history: hist,
		prompt:  prompt,
		Echo:    true,
	}
}

// ReadLine reads bytes until the end of the line and returns the line
// without its terminator. The line is recorded in history before returning.
//
// io.EOF is returned if input ends, or Ctrl-D is typed, before any byte of
// a line was read. If input ends part way through a line the partial line
// is submitted. \r, \n and \r\n all end a line.
func (e *Editor) ReadLine() (string, error) {
	e.buf = NewBuffer()
	e.state = stateNormal
	e.escLen = 0

	if e.Echo {
		e.write(e.prompt())
	}

	for {
		c, err := e.in.ReadByte()
		switch {
		case errors.Is(err, io.EOF) && e.buf.Len() == 0:
			return "", io.EOF
		case errors.Is(err, io.EOF):
			return e.submit(), nil
		case err != nil:
			return "", err
		}

		if e.afterCR {
			e.afterCR = false
			if c == '\n' {
				continue
			}
		}

		switch e.feed(c) {
		case actionSubmit:
			return e.submit(), nil
		case actionEOF:
			if e.Echo {
				e.write("\n")
			}
			e.buf = nil
			return "", io.EOF
		}
	}
}

// feed advances the state machine by one byte.
func (e *Editor) feed(c byte) action {
	if e.state == stateEscape {
		e.esc[e.escLen] = c
		e.escLen++
		if e.escLen == len(e.esc) {
			e.state = stateNormal
			e.escLen = 0
			e.escape(e.esc[0], e.esc[1])
		}
		return actionContinue
	}

	switch c {
	case keyEscape:
		e.state = stateEscape
	case '\r':
		e.afterCR = true
		return actionSubmit
	case '\n':
		return actionSubmit
	case keyEOF:
		// Ctrl-D only ends input on an empty line, otherwise it's ignored.
		if e.buf.Len() == 0 {
			return actionEOF
		}
	case keyDelete, keyBackspace:
		if e.buf.Backspace() && e.Echo {
			e.write(eraseColumn)
		}
	default:
		e.buf.Append(c)
		if e.Echo {
			e.out.Write([]byte{c})
		}
	}
	return actionContinue
}

// escape handles a complete two byte escape sequence suffix.
func (e *Editor) escape(first, second byte) {
	if first != '[' {
		return
	}

	var (
		line string
		ok   bool
	)
	switch second {
	case 'A':
		line, ok = e.history.Older()
	case 'B':
		line, ok = e.history.Newer()
	}

	if !ok {
		return
	}
	e.buf.Set(line)
	e.Redraw()
}

// Redraw clears the display line and prints the prompt followed by the
// current line.
func (e *Editor) Redraw() {
	if !e.Echo {
		return
	}
	line := ""
	if e.buf != nil {
		line = e.buf.String()
	}
	e.write(clearLine + e.prompt() + line)
}

func (e *Editor) submit() string {
	line := e.buf.String()
	e.history.Record(line)
	if e.Echo {
		e.write("\n")
	}
	e.buf = nil
	return line
}

func (e *Editor) write(s string) {
	io.WriteString(e.out, s)
}
