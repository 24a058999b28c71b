package commands

import (
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/josephlewis42/gsh/core/config"
)

// tokenDelimiters separate arguments when splitting on whitespace.
const tokenDelimiters = " \t\r\n\a"

// Tokenizer splits a command line into arguments.
type Tokenizer func(line string) ([]string, error)

// SplitWhitespace splits line on blanks, quotes have no special meaning.
func SplitWhitespace(line string) ([]string, error) {
	return strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(tokenDelimiters, r)
	}), nil
}

// SplitShlex splits line using POSIX shell quoting rules.
func SplitShlex(line string) ([]string, error) {
	return shlex.Split(line, true)
}

// TokenizerFor returns the tokenizer with the given configuration name.
func TokenizerFor(name string) Tokenizer {
	if name == config.TokenizerShlex {
		return SplitShlex
	}
	return SplitWhitespace
}
