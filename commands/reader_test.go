package commands

import (
	"io"
	"io/ioutil"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/josephlewis42/gsh/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShell_Interactive(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	go io.Copy(ioutil.Discard, ptmx)

	s, err := NewShell(config.Default(), Options{
		Stdin:  tty,
		Stdout: tty,
		Stderr: tty,
	})
	require.NoError(t, err)
	require.IsType(t, &terminalReader{}, s.reader)

	// Run history, recall it with the up arrow, then exit.
	_, err = io.WriteString(ptmx, "history\n\x1b[A\nexit 5\n")
	require.NoError(t, err)

	done := make(chan int, 1)
	go func() { done <- s.Run() }()

	select {
	case status := <-done:
		assert.Equal(t, 5, status)
	case <-time.After(5 * time.Second):
		t.Fatal("shell didn't exit")
	}

	assert.Equal(t, []string{"history", "history", "exit 5"}, s.History.Entries())
}

func TestShell_InteractiveReadline(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	go io.Copy(ioutil.Discard, ptmx)

	cfg := config.Default()
	cfg.LineEditor = config.EditorReadline
	s, err := NewShell(cfg, Options{
		Stdin:  tty,
		Stdout: tty,
		Stderr: tty,
	})
	require.NoError(t, err)
	require.IsType(t, &readlineReader{}, s.reader)

	_, err = io.WriteString(ptmx, "help\nexit 4\n")
	require.NoError(t, err)

	done := make(chan int, 1)
	go func() { done <- s.Run() }()

	select {
	case status := <-done:
		assert.Equal(t, 4, status)
	case <-time.After(5 * time.Second):
		t.Fatal("shell didn't exit")
	}

	assert.Equal(t, []string{"help", "exit 4"}, s.History.Entries())
}

func TestReadlineReader(t *testing.T) {
	s, err := NewShell(config.Default(), Options{
		// Ctrl-C after typing abc, then end of input.
		Stdin:  strings.NewReader("help\nabc\x03"),
		Stdout: ioutil.Discard,
		Stderr: ioutil.Discard,
	})
	require.NoError(t, err)

	r, err := newReadlineReader(s, -1)
	require.NoError(t, err)
	defer r.Close()

	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "help", line)

	// Interrupting returns an empty line rather than an error.
	line, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "", line)

	_, err = r.ReadLine()
	assert.Equal(t, io.EOF, err)

	assert.Equal(t, []string{"help"}, s.History.Entries())
}

func TestNewShell_PlainReader(t *testing.T) {
	s, _ := newTestShell(t, "")
	assert.IsType(t, &plainReader{}, s.reader)
	assert.False(t, s.Prompt.Color)
}
