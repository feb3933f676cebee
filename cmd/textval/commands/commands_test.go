package commands

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrled/suns/textval/internal/config"
	"github.com/mrled/suns/textval/internal/model"
	"github.com/mrled/suns/textval/internal/usecase/check"
)

// run executes a fresh command tree and returns stdout and the error
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TEXTVAL_HISTORY_FILE", "")
	t.Setenv("DYNAMODB_TABLE", "")
	t.Setenv("DYNAMODB_ENDPOINT", "")

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 0
}

func TestPalindromeCmd(t *testing.T) {
	out, err := run(t, "palindrome", "radar")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "palindrome", "hello")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, err = run(t, "palindrome", "")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestAddCmd(t *testing.T) {
	out, err := run(t, "add", "3", "5")
	require.NoError(t, err)
	assert.Equal(t, "8\n", out)

	out, err = run(t, "add", "--", "-4", "-6")
	require.NoError(t, err)
	assert.Equal(t, "-10\n", out)

	_, err = run(t, "add", "x", "1")
	assert.Equal(t, ExitInvalidArgument, exitCode(err))
}

func TestDivideCmd(t *testing.T) {
	out, err := run(t, "divide", "10", "2")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, err = run(t, "divide", "--", "-9", "3")
	require.NoError(t, err)
	assert.Equal(t, "-3\n", out)

	out, err = run(t, "divide", "5", "0")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, ExitInvalidArgument, exitCode(err))
	assert.Contains(t, err.Error(), "division by zero")
}

func TestXMLTextCmd(t *testing.T) {
	out, err := run(t, "xmltext", "name", "<user><name>Alice</name></user>")
	require.NoError(t, err)
	assert.Equal(t, "Alice\n", out)

	_, err = run(t, "xmltext", "name", "<user><name></user>")
	assert.Equal(t, ExitInvalidArgument, exitCode(err))
}

func TestWrongArgCount(t *testing.T) {
	_, err := run(t, "divide", "1")
	require.Error(t, err)
	assert.Zero(t, exitCode(err))
}

func TestHistoryCmd(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history.json")

	_, err := run(t, "--file", file, "add", "3", "5")
	require.NoError(t, err)
	_, err = run(t, "--file", file, "divide", "5", "0")
	require.Error(t, err)
	out, err := run(t, "--file", file, "--verbose", "palindrome", "noon")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "\ttrue\n"), "verbose output should carry the record ID: %q", out)

	out, err = run(t, "--file", file, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Total records: 3")
	assert.Contains(t, out, "Result: 8")
	assert.Contains(t, out, "division by zero")

	out, err = run(t, "--file", file, "history", "--failures", "--format", "compact")
	require.NoError(t, err)
	assert.Contains(t, out, "Total records: 1")
	assert.Contains(t, out, "divide")

	out, err = run(t, "--file", file, "history", "--operation", "palindrome")
	require.NoError(t, err)
	assert.Contains(t, out, "Total records: 1")

	_, err = run(t, "--file", file, "history", "--operation", "multiply")
	assert.Equal(t, ExitInvalidArgument, exitCode(err))

	out, err = run(t, "--file", file, "history", "--sort", "operation")
	require.NoError(t, err)
	assert.Contains(t, out, "Total records: 3")

	_, err = run(t, "--file", file, "history", "--sort", "newest")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgument, exitCode(err))
}

func TestHistoryCmd_ShowAndDelete(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history.json")

	out, err := run(t, "--file", file, "--verbose", "add", "3", "5")
	require.NoError(t, err)
	id := strings.SplitN(out, "\t", 2)[0]
	require.NotEmpty(t, id)
	_, err = run(t, "--file", file, "palindrome", "noon")
	require.NoError(t, err)

	out, err = run(t, "--file", file, "history", "--id", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Total records: 1")
	assert.Contains(t, out, "Result: 8")

	out, err = run(t, "--file", file, "history", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "ID: "+id)
	assert.Contains(t, out, "Operation: add")
	assert.Contains(t, out, `Input: "3" "5"`)

	out, err = run(t, "--file", file, "history", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted record "+id)

	_, err = run(t, "--file", file, "history", "show", id)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = run(t, "--file", file, "history", "delete", id)
	assert.ErrorIs(t, err, model.ErrNotFound)

	out, err = run(t, "--file", file, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Total records: 1")
}

func TestHistoryShow_NoStore(t *testing.T) {
	_, err := run(t, "history", "show", "some-id")
	assert.ErrorIs(t, err, check.ErrNoHistory)
}

func TestFlagOverridesAreValidated(t *testing.T) {
	_, err := run(t, "--dynamodb-endpoint", "http://localhost:8000", "palindrome", "noon")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgument, exitCode(err))
	assert.Contains(t, err.Error(), "dynamodb_table")
}

func TestConfigInitCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "textval.yaml")
	history := filepath.Join(dir, "history.json")

	out, err := run(t, "--file", history, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, history, cfg.History.File)

	_, err = run(t, "config", "init", path)
	assert.Equal(t, ExitInvalidArgument, exitCode(err), "existing file is kept without --force")

	_, err = run(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	// The rewritten file came from the loaded one, so history still points at the same store
	out, err = run(t, "--config", path, "add", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
	out, err = run(t, "--config", path, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Total records: 1")

	_, err = run(t, "config", "init")
	assert.Equal(t, ExitInvalidArgument, exitCode(err))
}

func TestHistoryCmd_NoStore(t *testing.T) {
	out, err := run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No records found")
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcdefg...", truncateString("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncateString("abcdef", 2))
	assert.Equal(t, "αβγ...", truncateString("αβγδεζηθ", 6))
}
