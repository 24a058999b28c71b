// Package prompt renders PS1 style prompt templates.
package prompt

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const (
	// DefaultTemplate prints the working directory followed by " > ".
	DefaultTemplate = `\w > `

	// Unknown is shown in place of the working directory or host name when
	// it can't be resolved, e.g. because the directory was deleted.
	Unknown = "?"
)

var (
	unescapeOctal   = regexp.MustCompile(`\\0[0-7][0-7]?[0-7]?`)
	unescapeHex     = regexp.MustCompile(`\\x[0-9a-fA-F][0-9a-fA-F]?`)
	unescapeReplace = strings.NewReplacer(
		`\n`, "\n", // newline
		`\r`, "\r", // carriage return
		`\t`, "\t", // horizontal tab
		`\a`, "\a", // alert
	)

	dirColor = color.New(color.FgBlue, color.Bold)
)

// Env supplies the values a template can reference.
type Env struct {
	Getwd    func() (string, error)
	Getenv   func(string) string
	Hostname func() (string, error)
	Getuid   func() int
}

// OSEnv reads prompt values from the running process.
func OSEnv() Env {
	return Env{
		Getwd:    os.Getwd,
		Getenv:   os.Getenv,
		Hostname: os.Hostname,
		Getuid:   os.Getuid,
	}
}

// Renderer expands a template against an Env.
type Renderer struct {
	Template string
	Env      Env

	// Tilde abbreviates $HOME to ~ in the working directory.
	Tilde bool
	// Color highlights the working directory.
	Color bool
}

// Render expands the template.
//
// Supported escapes are \w (working directory), \u (user), \h (host) and \$
// (# for root, $ otherwise), followed by C style escapes.
func (r *Renderer) Render() string {
	tmpl := r.Template
	if tmpl == "" {
		tmpl = DefaultTemplate
	}

	// \\ must not start another escape, protect it until the end.
	const backslash = "\x00"
	tmpl = strings.ReplaceAll(tmpl, `\\`, backslash)
	tmpl = unescape(tmpl)

	tmpl = strings.ReplaceAll(tmpl, `\u`, r.Env.Getenv("USER"))
	if strings.Contains(tmpl, `\h`) {
		host, err := r.Env.Hostname()
		if err != nil {
			host = Unknown
		}
		tmpl = strings.ReplaceAll(tmpl, `\h`, host)
	}

	if r.Env.Getuid() == 0 {
		tmpl = strings.ReplaceAll(tmpl, `\$`, "#")
	} else {
		tmpl = strings.ReplaceAll(tmpl, `\$`, "$")
	}

	tmpl = strings.ReplaceAll(tmpl, `\w`, r.dir())

	return strings.ReplaceAll(tmpl, backslash, `\`)
}

func (r *Renderer) dir() string {
	pwd, err := r.Env.Getwd()
	if err != nil || pwd == "" {
		return Unknown
	}

	if home := r.Env.Getenv("HOME"); r.Tilde && home != "" {
		if pwd == home || strings.HasPrefix(pwd, home+"/") {
			pwd = "~" + strings.TrimPrefix(pwd, home)
		}
	}

	if r.Color {
		return dirColor.Sprint(pwd)
	}
	return pwd
}

func unescape(s string) string {
	s = unescapeOctal.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseUint(arg[2:], 8, 8)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	s = unescapeHex.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseUint(arg[2:], 16, 8)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	return unescapeReplace.Replace(s)
}
