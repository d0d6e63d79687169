package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/valentine-cli/internal/config"
	"github.com/xvierd/valentine-cli/internal/domain"
	"github.com/xvierd/valentine-cli/internal/ports"
)

// executeCmd is a helper to execute a cobra command in tests
func executeCmd(cmd *cobra.Command, args ...string) (stdout string, stderr string, err error) {
	bufOut := new(bytes.Buffer)
	bufErr := new(bytes.Buffer)

	cmd.SetOut(bufOut)
	cmd.SetErr(bufErr)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return bufOut.String(), bufErr.String(), err
}

// withClock pins the command clock for one test.
func withClock(t *testing.T, now time.Time) {
	t.Helper()
	prev := clock
	clock = ports.ClockFunc(func() time.Time { return now })
	t.Cleanup(func() { clock = prev })
}

// resetFlags clears global flag state between executions.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		nicknameFlag, toFlag, fromFlag, logLevelFlag = "", "", "", ""
		seedFlag = 0
		noNotify = false
		countdownJSON = false
		for _, c := range []*cobra.Command{rootCmd, countdownCmd, configCmd} {
			c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
			c.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		}
	})
}

func TestRootCmd_Use(t *testing.T) {
	if rootCmd.Use != "valentine" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "valentine")
	}
}

func TestRootCmd_Help(t *testing.T) {
	resetFlags(t)
	stdout, _, err := executeCmd(rootCmd, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Valentine")
	assert.Contains(t, stdout, "countdown")
}

func TestRootCmd_Flags(t *testing.T) {
	for _, name := range []string{"nickname", "to", "from", "seed", "no-notify", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag should be registered", name)
		}
	}
}

func TestCountdownCmd(t *testing.T) {
	resetFlags(t)
	withClock(t, time.Date(2025, 2, 14, 23, 59, 59, 0, time.Local))

	stdout, _, err := executeCmd(rootCmd, "countdown")
	require.NoError(t, err)
	assert.Equal(t, "Valentine's Day ends in: 00:00:01 ⏰\n", stdout)
}

func TestCountdownCmd_JSON(t *testing.T) {
	resetFlags(t)
	withClock(t, time.Date(2025, 2, 14, 0, 0, 0, 0, time.Local))

	stdout, _, err := executeCmd(rootCmd, "countdown", "--json")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "24:00:00", got["remaining"])
	assert.Equal(t, float64(86400), got["seconds"])
	assert.True(t, strings.HasPrefix(got["target"].(string), "2025-02-15T00:00:00"))
}

func TestConfigCmd_ShowsFlagOverrides(t *testing.T) {
	resetFlags(t)

	stdout, _, err := executeCmd(rootCmd, "config", "--nickname", "Sam", "--no-notify", "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, stdout, "config.toml")
	assert.Contains(t, stdout, "Nickname:        Sam")
	assert.Contains(t, stdout, "Notifications:   off")
	assert.Contains(t, stdout, "Seed:            9")
}

func TestInitializeServices_InvalidLogLevel(t *testing.T) {
	resetFlags(t)
	_, _, err := executeCmd(rootCmd, "countdown", "--log-level", "loud")
	assert.Error(t, err)
}

func TestPrintConfig_Defaults(t *testing.T) {
	var buf bytes.Buffer
	printConfig(&buf, "/tmp/config.toml", config.DefaultConfig())
	out := buf.String()
	assert.Contains(t, out, "Nickname:        Anjuu")
	assert.Contains(t, out, "Notifications:   on")
	assert.Contains(t, out, "Seed:            random")
	assert.Contains(t, out, "Frame interval:  66ms")
}

func TestOpenLogFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Storage.DataDir = t.TempDir()
	cfg.Log.File = "logs/card.log"

	f, err := openLogFile(cfg)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.Name(), "logs")

	cfg.Log.File = ""
	_, err = openLogFile(cfg)
	assert.Error(t, err)
}

func TestOpenLogFile_DefaultsStayUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cwd := t.TempDir()
	t.Chdir(cwd)

	f, err := openLogFile(config.DefaultConfig())
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, filepath.Join(home, ".valentine", "valentine.log"), f.Name())
	_, err = os.Stat(filepath.Join(cwd, "~"))
	assert.True(t, os.IsNotExist(err), "no literal ~ directory should appear in the working directory")
}

func TestReplayCmd(t *testing.T) {
	resetFlags(t)

	stdout, _, err := executeCmd(rootCmd, "replay", "escalate", "escalate", "escalate", "accept")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "level 2")
	assert.Contains(t, lines[2], "(ignored)")
	assert.Contains(t, lines[3], "Accepted, level 2")
}

func TestReplayCmd_ShowsHeadingWhenUndecided(t *testing.T) {
	resetFlags(t)

	stdout, _, err := executeCmd(rootCmd, "replay", "decline", "restart", "--nickname", "Sam")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Will you be my Valentine Sam? 💕")
}

func TestReplayCmd_UnknownAction(t *testing.T) {
	resetFlags(t)

	_, _, err := executeCmd(rootCmd, "replay", "shrug")
	assert.ErrorIs(t, err, domain.ErrUnknownAction)
}
