package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_HappyPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "main.css")
	css := `@typescale {
  prefix: t;
  rounded: false;
  steps { base: 0; lg: 1; }
}
`
	require.NoError(t, os.WriteFile(input, []byte(css), 0o600))

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := run(out, logs, []string{"-log-level", "error", input})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "--t-base: 1rem /* 16px */;")
	assert.Contains(t, out.String(), "--t-lg: 1.2rem /* 19.2px */;")
}

func TestRun_MissingInputFails(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := run(out, logs, []string{filepath.Join(t.TempDir(), "nope.css")})
	require.Error(t, err)
}

func TestRun_NoArgsShowsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := run(out, logs, nil)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Usage:")
	assert.Empty(t, out.String())
}

func TestRun_BadConfigFileFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "main.css")
	require.NoError(t, os.WriteFile(input, []byte(`p {}`), 0o600))
	conf := filepath.Join(dir, "typescale.hcl")
	require.NoError(t, os.WriteFile(conf, []byte(`typescale {`), 0o600))

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-config", conf, input})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
