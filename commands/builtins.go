package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// AllBuiltins holds a list of all registered shell builtins
var AllBuiltins = make(map[string]ShellBuiltin)

type ShellBuiltin interface {
	Main(s *Shell, args []string) int
}

type ShellBuiltinFunc func(s *Shell, args []string) int

func (f ShellBuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// BuiltinNames returns the sorted names of all builtins.
func BuiltinNames() []string {
	var names []string
	for name := range AllBuiltins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cd is the cd shell builtin. Without arguments it changes to $HOME.
func Cd(s *Shell, args []string) int {
	var dir string
	switch {
	case len(args) == 1:
		dir = os.Getenv("HOME")
		if dir == "" {
			s.errorf("HOME not set")
			return 1
		}
	case args[1] == "..":
		parent, err := parentDir()
		if err != nil {
			s.errorf("%v", err)
			return 1
		}
		dir = parent
	default:
		dir = args[1]
	}

	if err := os.Chdir(dir); err != nil {
		s.errorf("%v", err)
		return 1
	}
	return 0
}

// parentDir resolves the parent of the working directory.
func parentDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Dir(cwd), nil
}

// Exit quits the shell
func Exit(s *Shell, args []string) int {
	code := 0
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			s.errorf("%s: %s: numeric argument required", args[0], args[1])
			parsed = 2
		}
		code = parsed
	}

	s.Quit = true
	return code
}

// Help lists the builtins.
func Help(s *Shell, args []string) int {
	w := s.Stdout
	fmt.Fprintln(w, "gsh, a tiny interactive shell")
	fmt.Fprintln(w, "Type program names and arguments, and hit enter.")
	fmt.Fprintln(w, "Use the up and down arrows to recall previous lines.")
	fmt.Fprintln(w, "Built-in programs are below:")

	for _, name := range BuiltinNames() {
		fmt.Fprintf(w, "  %s\n", name)
	}

	fmt.Fprintln(w, "Use the man command for information on other programs.")
	return 0
}

// History displays or clears the line history.
func History(s *Shell, args []string) int {
	cmd := &SimpleCommand{
		Use:   "history [-c]",
		Short: "Display the history list with line numbers.",
	}
	clear := cmd.Flags().Bool('c', "clear the history by deleting all entries")

	return cmd.Run(s, args, func() int {
		if *clear {
			s.History.Clear()
			return 0
		}

		for i, line := range s.History.Entries() {
			fmt.Fprintf(s.Stdout, "% 5d  %s\n", i+1, line)
		}
		return 0
	})
}

func init() {
	AllBuiltins["cd"] = ShellBuiltinFunc(Cd)
	AllBuiltins["help"] = ShellBuiltinFunc(Help)
	AllBuiltins["exit"] = ShellBuiltinFunc(Exit)
	AllBuiltins["history"] = ShellBuiltinFunc(History)
}
