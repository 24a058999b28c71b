package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephlewis42/gsh/core/config"
	"github.com/sebdah/goldie/v2"
)

// newTestShell creates a non-interactive shell reading input.
func newTestShell(t *testing.T, input string) (*Shell, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	s, err := NewShell(config.Default(), Options{
		Stdin:  strings.NewReader(input),
		Stdout: out,
		Stderr: out,
	})
	if err != nil {
		t.Fatal(err)
	}

	return s, out
}

type goldenTestSuite map[string]goldenTest

type goldenTest struct {
	// Input is fed to the shell's stdin.
	Input string
	// ExitStatus is the expected result of Run.
	ExitStatus int
}

func (gts goldenTestSuite) Run(t *testing.T) {
	t.Helper()

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
		goldie.WithSubTestNameForDir(true),
	)

	for tn, tc := range gts {
		t.Run(tn, func(t *testing.T) {
			s, out := newTestShell(t, tc.Input)
			if status := s.Run(); status != tc.ExitStatus {
				t.Errorf("exit status = %d, want %d", status, tc.ExitStatus)
			}

			g.Assert(t, tn, out.Bytes())
		})
	}
}
