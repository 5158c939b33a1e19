package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-dash/internal/core/export"
	"campaign-dash/internal/core/query"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"--quiet"}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	for _, sub := range []string{"query", "export", "seed"} {
		assert.Contains(t, out, sub)
	}
}

func TestQueryActive(t *testing.T) {
	out, err := run(t, "query", "--status", "active")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "Cyber Monday")
	assert.Contains(t, lines[1], "$18,000")
	assert.Contains(t, lines[1], "3,500")
	assert.Contains(t, lines[1], "Active")
	assert.Equal(t, "Showing 1 to 5 of 8 results (page 1 of 2)", lines[6])
}

func TestQueryNoMatch(t *testing.T) {
	out, err := run(t, "query", "--search", "nothing-here")
	require.NoError(t, err)
	assert.Equal(t, "No campaigns found.\n", out)
}

func TestQueryInvalidFlags(t *testing.T) {
	_, err := run(t, "query", "--sort", "ctr")
	assert.ErrorIs(t, err, query.ErrInvalidQuery)

	_, err = run(t, "query", "--page", "0")
	assert.ErrorIs(t, err, query.ErrInvalidQuery)

	_, err = run(t, "query", "--page", "3", "--page-size", "9223372036854775807")
	assert.ErrorIs(t, err, query.ErrInvalidQuery)
}

func TestConflictingSources(t *testing.T) {
	_, err := run(t, "--dataset", "x.json", "--psql", "postgres://localhost/db", "query")
	assert.ErrorIs(t, err, errConflictingSources)
}

func TestExportCSVToStdout(t *testing.T) {
	out, err := run(t, "export", "--status", "paused", "-o", "-")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Join(export.CSVColumns, ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "12,New Year Blast,"))
}

func TestExportPDFToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	_, err := run(t, "export", "--format", "pdf", "-o", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF-")))
}

func TestExportEmptyWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	_, err := run(t, "export", "--search", "nothing-here", "-o", path)
	assert.ErrorIs(t, err, export.ErrEmptyExport)
	assert.NoFileExists(t, path)
}

func TestExportFromDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaigns.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- id: a
  campaign: Local Promo
  revenue: 100
  users: 10
  conversions: 1
  ctr: 1.5
  status: Active
  date: 2024-03-01
`), 0o600))

	out, err := run(t, "--dataset", path, "export", "-o", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "a,Local Promo,100,10,1,1.5,active,2024-03-01")
}

func TestExportInvalidFormat(t *testing.T) {
	_, err := run(t, "export", "--format", "xlsx", "-o", "-")
	assert.Error(t, err)
}

func TestSeedRequiresPsql(t *testing.T) {
	_, err := run(t, "seed")
	assert.EqualError(t, err, "--psql is required")
}
