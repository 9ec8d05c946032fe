package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCommand(t *testing.T, name string) *cobra.Command {
	t.Helper()
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	t.Fatalf("command %q not registered", name)
	return nil
}

func TestCommandsRegistered(t *testing.T) {
	findCommand(t, "generate")
	findCommand(t, "check")
	findCommand(t, "history")
}

func TestGenerateFlags(t *testing.T) {
	cmd := findCommand(t, "generate")
	for _, name := range []string{"export", "config", "out", "name", "format", "history-dir", "no-history", "verbose"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "generate should have flag --%s", name)
	}

	assert.Equal(t, "export", cmd.Flags().Lookup("export").DefValue)
	assert.Equal(t, "cv-config.json", cmd.Flags().Lookup("config").DefValue)
	assert.Equal(t, "[pdf,html]", cmd.Flags().Lookup("format").DefValue)
}

func TestCheckFlags(t *testing.T) {
	cmd := findCommand(t, "check")
	for _, name := range []string{"export", "config", "verbose"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "check should have flag --%s", name)
	}
}

func TestHistoryDirPrecedence(t *testing.T) {
	generateHistoryDir = ""
	t.Setenv("CVGEN_HISTORY_DIR", "")
	assert.Equal(t, ".cvgen", historyDir())

	t.Setenv("CVGEN_HISTORY_DIR", "/var/lib/cvgen")
	assert.Equal(t, "/var/lib/cvgen", historyDir())

	generateHistoryDir = "explicit"
	defer func() { generateHistoryDir = "" }()
	assert.Equal(t, "explicit", historyDir())
}

func TestHistoryCommand_EmptyStore(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"history", "--history-dir", dir})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "no recorded runs")

	_, err := os.Stat(filepath.Join(dir, "history.db"))
	assert.NoError(t, err)
}
