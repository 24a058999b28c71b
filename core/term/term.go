// Package term switches the controlling terminal between canonical and
// raw input modes.
package term

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

// ErrNotTerminal is returned when raw mode is requested on a descriptor
// that isn't a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Snapshot holds the terminal attributes captured before switching to raw
// mode.
type Snapshot struct {
	fd      int
	termios unix.Termios
	once    sync.Once
	err     error
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	return xterm.IsTerminal(fd)
}

// EnterRaw captures the current attributes of fd and switches it to a mode
// where reads return as soon as a single byte is available and input isn't
// echoed.
//
// The returned snapshot must be restored on every exit path.
func EnterRaw(fd int) (*Snapshot, error) {
	if !IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	original, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("get terminal attributes: %w", err)
	}

	raw := *original
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return nil, fmt.Errorf("set terminal attributes: %w", err)
	}

	return &Snapshot{fd: fd, termios: *original}, nil
}

// Restore reinstates the captured attributes. Only the first call touches
// the terminal, later calls return the first result.
func (s *Snapshot) Restore() error {
	if s == nil {
		return nil
	}

	s.once.Do(func() {
		if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, &s.termios); err != nil {
			s.err = fmt.Errorf("restore terminal attributes: %w", err)
		}
	})

	return s.err
}

// DefaultWidth is reported by Width when the size of fd can't be read.
const DefaultWidth = 80

// Width returns the number of columns of the terminal at fd.
func Width(fd int) int {
	width, _, err := xterm.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
