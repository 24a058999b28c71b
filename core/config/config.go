package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/gshrc.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "gshrc.yaml"

	TokenizerWhitespace = "whitespace"
	TokenizerShlex      = "shlex"

	EditorBuiltin  = "builtin"
	EditorReadline = "readline"
)

type Configuration struct {
	configFs afero.Fs

	HistorySize int    `json:"history_size" validate:"gte=1,lte=100000"`
	Prompt      string `json:"prompt" validate:"required"`
	Color       bool   `json:"color"`
	Tilde       bool   `json:"tilde"`
	Tokenizer   string `json:"tokenizer" validate:"oneof=whitespace shlex"`
	LineEditor  string `json:"line_editor" validate:"oneof=builtin readline"`
	ErrorPrefix string `json:"error_prefix" validate:"required"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// DefaultDir returns the directory the configuration is read from when none
// is given.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "gsh")
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
