package config

import (
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"

	"hop.computer/nodelist/pkg/thunks"
)

const fullToml = `
log_level = "debug"
prompt = "> "
keep_going = true
echo = true
seed = ["a", "b", "c"]

[trace]
enabled = true
`

func setUp(t *testing.T, files fstest.MapFS) {
	oldFS, oldHome := fileSystem, thunks.UserHomeDir
	t.Cleanup(func() {
		fileSystem = oldFS
		thunks.UserHomeDir = oldHome
	})
	fileSystem = files
	thunks.UserHomeDir = func() (string, error) {
		return "home/user", nil
	}
}

func TestLoad(t *testing.T) {
	setUp(t, fstest.MapFS{
		"etc/nodelist.toml": &fstest.MapFile{
			Data: []byte(fullToml),
		},
	})
	c, err := Load("etc/nodelist.toml")
	assert.NilError(t, err)
	expected := &Config{
		LogLevel:  "debug",
		Prompt:    "> ",
		KeepGoing: true,
		Echo:      true,
		Seed:      []string{"a", "b", "c"},
		Trace:     TraceConfig{Enabled: true},
	}
	assert.DeepEqual(t, c, expected)

	level, err := c.Level()
	assert.NilError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)
}

func TestLoadKeepsDefaults(t *testing.T) {
	setUp(t, fstest.MapFS{
		"seed.toml": &fstest.MapFile{
			Data: []byte(`seed = ["x"]`),
		},
	})
	c, err := Load("seed.toml")
	assert.NilError(t, err)
	assert.Equal(t, DefaultPrompt, c.Prompt)
	assert.Equal(t, "info", c.LogLevel)
	assert.DeepEqual(t, []string{"x"}, c.Seed)
	assert.Check(t, !c.Trace.Enabled)
}

func TestLoadErrors(t *testing.T) {
	setUp(t, fstest.MapFS{
		"unknown.toml": &fstest.MapFile{
			Data: []byte("[trace]\nenabled = true\nverbose = 1\n"),
		},
		"level.toml": &fstest.MapFile{
			Data: []byte(`log_level = "loud"`),
		},
		"broken.toml": &fstest.MapFile{
			Data: []byte(`seed = [`),
		},
	})

	_, err := Load("unknown.toml")
	assert.Check(t, is.ErrorContains(err, "trace.verbose"))

	_, err = Load("level.toml")
	assert.Check(t, is.ErrorContains(err, "invalid log_level"))

	_, err = Load("broken.toml")
	assert.Check(t, is.ErrorContains(err, "unable to parse broken.toml"))

	_, err = Load("missing.toml")
	assert.Check(t, err != nil)
}

func TestLocate(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		setUp(t, fstest.MapFS{})
		path, ok := Locate("custom.toml")
		assert.Check(t, ok)
		assert.Equal(t, "custom.toml", path)
	})
	t.Run("user directory", func(t *testing.T) {
		setUp(t, fstest.MapFS{
			"home/user/.nodelist/config.toml": &fstest.MapFile{
				Data: []byte(`echo = true`),
			},
		})
		path, ok := Locate("")
		assert.Check(t, ok)
		assert.Equal(t, "home/user/.nodelist/config.toml", path)

		c, err := LoadOrDefault("")
		assert.NilError(t, err)
		assert.Check(t, c.Echo)
	})
	t.Run("nothing", func(t *testing.T) {
		setUp(t, fstest.MapFS{})
		_, ok := Locate("")
		assert.Check(t, !ok)

		c, err := LoadOrDefault("")
		assert.NilError(t, err)
		assert.DeepEqual(t, Default(), c)
	})
}
