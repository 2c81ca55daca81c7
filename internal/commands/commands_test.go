package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketbank-dev/pocketbank/internal/commands"
	"github.com/pocketbank-dev/pocketbank/internal/config"
	"github.com/pocketbank-dev/pocketbank/internal/export"
)

func runPocketbank(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runPocketbankContext(t, context.Background(), args...)
}

func runPocketbankContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestAccounts(t *testing.T) {
	t.Chdir(t.TempDir())
	out, err := runPocketbank(t, "accounts")
	require.NoError(t, err)

	assert.Contains(t, out, "Everyday Checking")
	assert.Contains(t, out, "$8,452.18")
	assert.Contains(t, out, "-$1,294.33")
	assert.Contains(t, out, "Total available: $42,433.13")
}

func TestExportAccounts_Stdout(t *testing.T) {
	t.Chdir(t.TempDir())
	out, err := runPocketbank(t, "export", "accounts", "--log-level", "error")
	require.NoError(t, err)

	accts, err := export.ReadAccounts(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, accts, 4)
	assert.Equal(t, "acct-credit", accts[3].ID)
}

func TestExportActivity_File(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "exports", "activity.csv")

	_, err := runPocketbank(t, "export", "activity", "--out", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	events, err := export.ReadActivity(f)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "evt-3", events[0].ID, "newest first")
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pocketbank.yaml")

	out, err := runPocketbank(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = runPocketbank(t, "config", "init", path)
	require.Error(t, err, "refuses to overwrite")

	_, err = runPocketbank(t, "config", "init", path, "--force")
	require.NoError(t, err)
}

func TestConfigInit_WithFixtures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pocketbank.yaml")

	_, err := runPocketbank(t, "config", "init", path, "--with-fixtures")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fixtures.yaml"), cfg.Fixtures)

	out, err := runPocketbank(t, "accounts", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Total available: $42,433.13")
}

func TestConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	fixturesYAML := `customer: Sam
accounts:
  - id: acct-1
    name: Only Checking
    type: Checking
    balance: "100.50"
    subtitle: Available $100.50
payees:
  - id: payee-1
    name: Jordan Lee
    mask: Checking ••2198
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mine.yaml"), []byte(fixturesYAML), 0o644))

	out, err := runPocketbank(t, "accounts", "--fixtures", "mine.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Only Checking")
	assert.Contains(t, out, "Total available: $100.50")
	assert.NotContains(t, out, "Everyday Checking")
}

func TestMissingExplicitConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := runPocketbank(t, "accounts", "--config", "nope.yaml")
	require.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := runPocketbank(t, "accounts", "--log-level", "chatty")
	assert.ErrorContains(t, err, "unknown log level")
}

func TestServe_StopsOnCancel(t *testing.T) {
	t.Chdir(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := runPocketbankContext(t, ctx, "serve", "--addr", "127.0.0.1:0")
	require.NoError(t, err)
	assert.Contains(t, out, "server started")
	assert.Contains(t, out, "server stopped")
}

func TestServe_BadAddr(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := runPocketbank(t, "serve", "--addr", "not-an-addr")
	assert.ErrorContains(t, err, "listening on not-an-addr")
}

func TestVersion(t *testing.T) {
	out, err := runPocketbank(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "pocketbank version")
}
