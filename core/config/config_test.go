package config

import (
	"io/ioutil"
	"log"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.HistorySize)
	assert.Equal(t, `\w > `, cfg.Prompt)
	assert.Equal(t, TokenizerWhitespace, cfg.Tokenizer)
	assert.Equal(t, EditorBuiltin, cfg.LineEditor)
}

func TestLoadFs(t *testing.T) {
	cases := map[string]struct {
		contents string
		check    func(t *testing.T, cfg *Configuration)
		wantErr  string
	}{
		"missing-file": {
			check: func(t *testing.T, cfg *Configuration) {
				assert.Equal(t, Default().HistorySize, cfg.HistorySize)
			},
		},
		"partial-override": {
			contents: "history_size: 5\ntokenizer: shlex\n",
			check: func(t *testing.T, cfg *Configuration) {
				assert.Equal(t, 5, cfg.HistorySize)
				assert.Equal(t, TokenizerShlex, cfg.Tokenizer)
				assert.Equal(t, "gsh", cfg.ErrorPrefix)
			},
		},
		"unknown-field": {
			contents: "history_length: 5\n",
			wantErr:  "unknown field",
		},
		"zero-history": {
			contents: "history_size: 0\n",
			wantErr:  "history_size",
		},
		"bad-tokenizer": {
			contents: "tokenizer: regex\n",
			wantErr:  "tokenizer",
		},
		"bad-editor": {
			contents: "line_editor: vi\n",
			wantErr:  "line_editor",
		},
		"empty-prefix": {
			contents: "error_prefix: ''\n",
			wantErr:  "error_prefix",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			memFs := afero.NewMemMapFs()
			if tc.contents != "" {
				require.NoError(t, afero.WriteFile(memFs, ConfigurationName, []byte(tc.contents), 0600))
			}

			cfg, err := LoadFs(memFs)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}

			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}

func TestInitialize(t *testing.T) {
	tempDir := t.TempDir()
	logger := log.New(ioutil.Discard, "", 0)

	if _, err := Initialize(tempDir, logger); err != nil {
		t.Fatal(err)
	}

	// Check that the config is valid
	cfg, err := Load(tempDir)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, Default(), cfg.withoutFs())

	t.Run("LoadFile", func(t *testing.T) {
		_, err := Load(tempDir + "/" + ConfigurationName)
		assert.NoError(t, err)
	})

	t.Run("NoOverwrite", func(t *testing.T) {
		_, err := Initialize(tempDir, logger)
		assert.ErrorIs(t, err, ErrExists)
	})
}

func (c *Configuration) withoutFs() *Configuration {
	out := *c
	out.configFs = nil
	return &out
}
