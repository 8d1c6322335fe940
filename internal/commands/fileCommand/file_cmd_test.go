package filecommand

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	encodeservice "github.com/redjax/hexify/internal/services/encodeService"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cfgFile := ""
	cmd := NewFileCommand(&cfgFile)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestFileCommandWritesOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "sample.proof")
	require.NoError(t, os.WriteFile(input, []byte("AB"), 0o644))

	_, _, err := execute(t, input, "--quiet")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "sample_HEX"))
	require.NoError(t, err)
	assert.Equal(t, `\x41\x42`, string(got))
}

func TestFileCommandFlags(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "sample.proof")
	output := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(input, []byte{0xFF, 0x0A}, 0o644))

	_, stderr, err := execute(t, "--input", input, "-o", output, "--verbose", "--quiet")
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, `\xff\x0a`, string(got))
	assert.Equal(t, "\xff\n\n", stderr)
}

func TestFileCommandSummary(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "sample.proof")
	require.NoError(t, os.WriteFile(input, []byte("AB"), 0o644))

	stdout, _, err := execute(t, input, "--suffix", ".hex")
	require.NoError(t, err)

	assert.Contains(t, stdout, filepath.Join(dir, "sample.hex"))
	assert.Contains(t, stdout, "8 B")
}

func TestFileCommandMissingInput(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, filepath.Join(dir, "missing.proof"), "--quiet")
	require.Error(t, err)
	assert.ErrorIs(t, err, encodeservice.ErrInputNotFound)
}

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	out := renderSummary(&encodeservice.FileResult{
		InputPath:    "sample.proof",
		OutputPath:   "sample_HEX",
		BytesRead:    2048,
		BytesWritten: 8192,
	})

	assert.Contains(t, out, "sample.proof")
	assert.Contains(t, out, "sample_HEX")
	assert.Contains(t, out, "2.0 KB")
	assert.Contains(t, out, "8.0 KB")
}
