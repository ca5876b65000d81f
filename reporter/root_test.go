package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hits.log")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_MissingArgument(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, usageMessage+"\n", out)
}

func TestRun_FileNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.log")

	out, err := execute(t, missing)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "File not found: "), out)
	assert.Contains(t, out, missing)
	assert.Equal(t, 1, strings.Count(out, "\n"), "no report lines expected")
}

func TestRun_Report(t *testing.T) {
	path := writeInput(t,
		"100|x.com",
		"100|x.com",
		"186400|y.com",
		"malformed",
	)

	out, err := execute(t, path)
	require.NoError(t, err)
	want := "There are 1 unexpected lines\n" +
		"01/01/1970 GMT\n" +
		"x.com 2\n" +
		"01/03/1970 GMT\n" +
		"y.com 1\n"
	assert.Equal(t, want, out)
}

func TestRun_Deterministic(t *testing.T) {
	path := writeInput(t,
		"1407564301|www.nba.com",
		"1407478021|www.facebook.com",
		"1407478022|www.facebook.com",
		"1407481200|news.ycombinator.com",
		"1407478028|www.google.com",
		"1407564301|sports.yahoo.com",
		"1407564300|www.cnn.com",
		"1407564300|www.nba.com",
		"1407564300|www.nba.com",
		"1407564301|sports.yahoo.com",
		"1407478022|www.google.com",
		"1407648022|www.twitter.com",
	)

	first, err := execute(t, path)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := execute(t, path)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}

	want := "08/08/2014 GMT\n" +
		"www.facebook.com 2\n" +
		"www.google.com 2\n" +
		"news.ycombinator.com 1\n" +
		"08/09/2014 GMT\n" +
		"www.nba.com 3\n" +
		"sports.yahoo.com 2\n" +
		"www.cnn.com 1\n" +
		"08/10/2014 GMT\n" +
		"www.twitter.com 1\n"
	assert.Equal(t, want, first)
}

func TestRun_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.log")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_TopAndOutputFile(t *testing.T) {
	path := writeInput(t, "1|a", "2|b", "3|b", "4|c")
	outPath := filepath.Join(t.TempDir(), "report.txt")

	out, err := execute(t, "--top", "1", "--output", outPath, path)
	require.NoError(t, err)
	assert.Empty(t, out)

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "01/01/1970 GMT\nb 2\n", string(written))
}

func TestRun_JSONFormat(t *testing.T) {
	path := writeInput(t, "1|a")

	out, err := execute(t, "-f", "json", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"unexpected_lines":0,"days":[{"date":"01/01/1970 GMT","day_key":0,"urls":[{"url":"a","hits":1}]}]}`, out)
}

func TestRun_InvalidFormat(t *testing.T) {
	path := writeInput(t, "1|a")

	_, err := execute(t, "--format", "csv", path)
	assert.Error(t, err)
}

func TestRun_MaxURLLength(t *testing.T) {
	path := writeInput(t, "1|short", "2|"+strings.Repeat("x", 50))

	out, err := execute(t, "--max-url-length", "10", path)
	require.NoError(t, err)
	assert.Equal(t, "There are 1 unexpected lines\n01/01/1970 GMT\nshort 1\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "urlreport version "+version+"\n", out)
}

func TestRun_OverlongLineKeepsReport(t *testing.T) {
	path := writeInput(t, "1|a", "2|"+strings.Repeat("x", 2<<20), "3|a")

	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Equal(t, "There are 1 unexpected lines\n01/01/1970 GMT\na 2\n", out)
}

func TestRun_TimestampBeyondInt64(t *testing.T) {
	path := writeInput(t, "1|a", "18446744073709551615|b", "9223372036854775807|c")

	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Equal(t, "There are 1 unexpected lines\n"+
		"01/01/1970 GMT\na 1\n"+
		"12/04/292277026596 GMT\nc 1\n", out)
}
