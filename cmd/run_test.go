package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"fastcmd/internal/runner"
)

// setupDispatcher swaps in a recording fake runner and resets the flag state,
// restoring both when the test finishes.
func setupDispatcher(t *testing.T) *runner.Fake {
	t.Helper()
	fake := &runner.Fake{}
	prevRunner := commandRunner
	prevOpts := opts
	commandRunner = fake
	opts = options{}
	t.Cleanup(func() {
		commandRunner = prevRunner
		opts = prevOpts
	})
	return fake
}

func TestRun_OperationsExecuteInDeclarationOrder(t *testing.T) {
	fake := setupDispatcher(t)
	// Requested "out of order" on purpose: execution order is fixed by the
	// dispatch table, not by the order flags were set.
	opts.Autoclean = true
	opts.Install = []string{"jq"}
	opts.Update = true

	require.NoError(t, run(rootCmd, nil))

	require.Len(t, fake.Calls, 3)
	require.Equal(t, []string{"update"}, fake.Calls[0].Args)
	require.Equal(t, []string{"install", "-y", "jq"}, fake.Calls[1].Args)
	require.Equal(t, []string{"autoclean"}, fake.Calls[2].Args)
}

func TestRun_ContinuesPastFailures(t *testing.T) {
	fake := setupDispatcher(t)
	fake.FailOn = map[string]error{"apt": errors.New("lock held")}
	opts.Update = true
	opts.Install = []string{"jq"}
	opts.Autoclean = true

	err := run(rootCmd, nil)
	require.ErrorIs(t, err, errTasksFailed)
	require.Len(t, fake.Calls, 3, "every requested operation must run despite earlier failures")
}

func TestRun_NothingRequested(t *testing.T) {
	fake := setupDispatcher(t)

	err := run(rootCmd, nil)
	require.ErrorIs(t, err, errNothingRequested)
	require.Empty(t, fake.Calls)
}

func TestRun_GithubDirFlagOverridesDefault(t *testing.T) {
	fake := setupDispatcher(t)
	reposDir := filepath.Join(t.TempDir(), "lab")
	opts.GithubDir = reposDir
	opts.Github = []string{"https://github.com/foo/bar"}

	require.NoError(t, run(rootCmd, nil))

	require.Len(t, fake.Calls, 1)
	require.Equal(t, "git", fake.Calls[0].Name)
	require.Equal(t, []string{"clone", "https://github.com/foo/bar", filepath.Join(reposDir, "bar")}, fake.Calls[0].Args)
}

func TestRun_ConfigFileSetsReposDirAndFlagWins(t *testing.T) {
	fake := setupDispatcher(t)
	dir := t.TempDir()
	fromConfig := filepath.Join(dir, "from-config")
	cfgFile := filepath.Join(dir, "fastcmd.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("github_dir: "+fromConfig+"\n"), 0644))

	prevConfig := configPath
	configPath = cfgFile
	t.Cleanup(func() { configPath = prevConfig })

	// Config file alone decides the destination.
	opts.Github = []string{"https://github.com/foo/bar"}
	require.NoError(t, run(rootCmd, nil))
	require.Len(t, fake.Calls, 1)
	require.Contains(t, fake.Calls[0].Args, filepath.Join(fromConfig, "bar"))

	// An explicit flag takes precedence over the config file.
	fake.Calls = nil
	fromFlag := filepath.Join(dir, "from-flag")
	opts.GithubDir = fromFlag
	require.NoError(t, run(rootCmd, nil))
	require.Len(t, fake.Calls, 1)
	require.Contains(t, fake.Calls[0].Args, filepath.Join(fromFlag, "bar"))
}

func TestRun_InstallSourceMissingPathIsFailure(t *testing.T) {
	fake := setupDispatcher(t)
	opts.InstallSource = []string{filepath.Join(t.TempDir(), "nope")}

	err := run(rootCmd, nil)
	require.ErrorIs(t, err, errTasksFailed)
	require.Empty(t, fake.Calls)
}

func TestRun_InstallSourceNoStrategyIsInformational(t *testing.T) {
	fake := setupDispatcher(t)
	opts.InstallSource = []string{t.TempDir()}

	require.NoError(t, run(rootCmd, nil))
	require.Empty(t, fake.Calls)
}
