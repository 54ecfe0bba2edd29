package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NilError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestRunScriptFile(t *testing.T) {
	cfg := writeFile(t, "config.toml", "log_level = \"error\"\nseed = [\"10\", \"20\", \"30\"]\n")
	ops := writeFile(t, "ops.txt", "pop-at 1\npush-back 40\nprint\n")

	out := new(bytes.Buffer)
	err := run([]string{"nodelist", "-config", cfg, ops}, strings.NewReader(""), false, out)
	assert.NilError(t, err)
	assert.Equal(t, "20\n[10 30 40]\n", out.String())
}

func TestRunStdin(t *testing.T) {
	cfg := writeFile(t, "config.toml", "log_level = \"error\"\necho = true\n")

	out := new(bytes.Buffer)
	err := run([]string{"nodelist", "-config", cfg}, strings.NewReader("push-front a\nback\n"), false, out)
	assert.NilError(t, err)
	assert.Equal(t, "+ push-front a\n+ back\na\n", out.String())
}

func TestRunInteractive(t *testing.T) {
	cfg := writeFile(t, "config.toml", "log_level = \"error\"\nprompt = \"$ \"\n")

	out := new(bytes.Buffer)
	err := run([]string{"nodelist", "-config", cfg}, strings.NewReader("bogus\nlen\n"), true, out)
	assert.NilError(t, err)
	assert.Check(t, strings.HasPrefix(out.String(), "$ error: "))
	assert.Check(t, strings.HasSuffix(out.String(), "$ 0\n$ \n"))
}

func TestRunErrors(t *testing.T) {
	cfg := writeFile(t, "config.toml", "log_level = \"error\"\n")
	bad := writeFile(t, "bad.toml", "colour = \"blue\"\n")

	err := run([]string{"nodelist", "-config", cfg, "/nonexistent/ops.txt"}, strings.NewReader(""), false, new(bytes.Buffer))
	assert.Check(t, is.ErrorContains(err, "unable to open script"))

	err = run([]string{"nodelist", "-config", bad}, strings.NewReader(""), false, new(bytes.Buffer))
	assert.Check(t, is.ErrorContains(err, "colour"))

	err = run([]string{"nodelist", "-config", cfg}, strings.NewReader("push-back\n"), false, new(bytes.Buffer))
	assert.Check(t, is.ErrorContains(err, "line 1"))
}
