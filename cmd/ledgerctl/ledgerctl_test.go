package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-ledger/internal/adapters/codec"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
)

func useSQLite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "ledger.db"))
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))
	err := cmd.Execute()
	return out.String(), err
}

func sampleFile(t *testing.T, dir string) (string, domain.Ledger) {
	t.Helper()
	head := civil.Date{Year: 2025, Month: 5, Day: 20}
	l := domain.Ledger{domain.NewEmptyDay(head), domain.NewEmptyDay(head.AddDays(-1))}
	l[0].Speaking, l[0].Grammar, l[0].TotalTime, l[0].SessionsCompleted = 85, 40, 30, 2
	l[1].Speaking = 70

	data, err := codec.Encode(l)
	require.NoError(t, err)
	path := filepath.Join(dir, "maya.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	decoded, err := codec.Decode(data)
	require.NoError(t, err)
	return path, decoded
}

func TestLedgerctl_ImportExportReport(t *testing.T) {
	dir := useSQLite(t)
	path, want := sampleFile(t, dir)

	out, err := run(t, "", "migrate")
	require.NoError(t, err, out)
	assert.Contains(t, out, "schema up to date (sqlite)")

	out, err = run(t, "", "import", "--identity", "maya@kanso.app", "--file", path)
	require.NoError(t, err, out)
	assert.Contains(t, out, "imported 2 days for maya@kanso.app")

	t.Run("Export to stdout", func(t *testing.T) {
		out, err := run(t, "", "export", "--identity", "maya@kanso.app")
		require.NoError(t, err)

		got, err := codec.Decode([]byte(out))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Export pretty to file", func(t *testing.T) {
		target := filepath.Join(dir, "out.json")
		_, err := run(t, "", "export", "--identity", "maya@kanso.app", "--pretty", "-o", target)
		require.NoError(t, err)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n  {")
	})

	t.Run("Report", func(t *testing.T) {
		out, err := run(t, "", "report", "--identity", "maya@kanso.app")
		require.NoError(t, err)
		assert.Contains(t, out, "maya@kanso.app")
		assert.Contains(t, out, "Speaking")
		assert.Contains(t, out, "Recommendations")
	})

	t.Run("Report of an unknown identity is empty, not an error", func(t *testing.T) {
		out, err := run(t, "", "report", "--identity", "nobody@kanso.app")
		require.NoError(t, err)
		assert.Contains(t, out, "nobody@kanso.app")
	})

	t.Run("List", func(t *testing.T) {
		_, err := run(t, "[]", "import", "--identity", "ben@kanso.app", "--file", "-")
		require.NoError(t, err)

		out, err := run(t, "", "list")
		require.NoError(t, err)
		assert.Equal(t, "ben@kanso.app\nmaya@kanso.app\n", out)
	})

	t.Run("Fail: Export of an unknown identity", func(t *testing.T) {
		_, err := run(t, "", "export", "--identity", "nobody@kanso.app")
		assert.ErrorIs(t, err, domain.ErrLedgerNotFound)
	})
}

func TestLedgerctl_ImportFromStdin(t *testing.T) {
	useSQLite(t)
	_, err := run(t, "", "migrate")
	require.NoError(t, err)

	out, err := run(t, `[]`, "import", "--identity", "new@kanso.app", "--file", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "imported 0 days")
}

func TestLedgerctl_Failures(t *testing.T) {
	t.Run("Fail: Invalid ledger file", func(t *testing.T) {
		useSQLite(t)
		_, err := run(t, `[{"date":"2025-05-20"}]`, "import", "--identity", "maya@kanso.app", "--file", "-")
		assert.ErrorIs(t, err, domain.ErrInvalidRecord)
	})

	t.Run("Fail: Missing identity flag", func(t *testing.T) {
		useSQLite(t)
		_, err := run(t, "", "export")
		assert.Error(t, err)
	})

	t.Run("Fail: In-memory driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "memory")
		_, err := run(t, "", "migrate")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "postgres or sqlite")
	})
}

func TestRenderReport(t *testing.T) {
	l := domain.Ledger{domain.NewEmptyDay(civil.Date{Year: 2025, Month: 5, Day: 20})}
	l[0].Reflex = 100

	view := renderReport("maya@kanso.app", analytics.GenerateFeedback(l), analytics.StreakSummary{Current: 3, Longest: 5})

	assert.Contains(t, view, "Reflex")
	assert.Contains(t, view, strings.Repeat("█", barWidth))
	assert.Contains(t, view, "streak 3 (best 5)")
}
