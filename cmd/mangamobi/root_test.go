package cmd

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagOrEnv(t *testing.T) {
	newCmd := func(args ...string) (*cobra.Command, *string) {
		var value string
		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().StringVar(&value, "log-format", "text", "")
		require.NoError(t, cmd.ParseFlags(args))
		return cmd, &value
	}

	cmd, value := newCmd()
	assert.Equal(t, "text", flagOrEnv(cmd, "log-format", *value, EnvLogFormat))

	t.Setenv(EnvLogFormat, "json")
	assert.Equal(t, "json", flagOrEnv(cmd, "log-format", *value, EnvLogFormat))

	cmd, value = newCmd("--log-format", "text")
	assert.Equal(t, "text", flagOrEnv(cmd, "log-format", *value, EnvLogFormat), "explicit flag wins")
}

func TestJSONLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "mangamobi.log")

	rootCmd.SetArgs([]string{
		"profiles",
		"--config", filepath.Join(dir, "missing.toml"),
		"--log-level", "debug",
		"--log-format", "json",
		"--log-file", logPath,
	})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	require.NoError(t, rootCmd.Execute())

	f, err := os.Open(logPath)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan(), "log file is empty")
	var record map[string]any
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
	assert.Equal(t, "configuration loaded", record["msg"])
	assert.Equal(t, current.runID, record["run_id"])
	assert.Equal(t, false, record["found"])
}
