package fetch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"fastcmd/internal/runner"
)

// stubLookPath makes only the named tools appear installed for the duration
// of the test.
func stubLookPath(t *testing.T, available ...string) {
	t.Helper()
	prev := lookPath
	lookPath = func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("executable file not found in $PATH")
	}
	t.Cleanup(func() { lookPath = prev })
}

// writeDest makes a Fake create the file named by the last -O/-o style
// destination argument, simulating a successful fetch.
func writeDest(t *testing.T) func(runner.Call) error {
	t.Helper()
	return func(c runner.Call) error {
		for i, arg := range c.Args {
			if (arg == "-O" || arg == "-o") && i+1 < len(c.Args) {
				return os.WriteFile(c.Args[i+1], []byte("payload"), 0644)
			}
		}
		return nil
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		url    string
		expect string
	}{
		{url: "https://example.com/tools/setup.sh", expect: "setup.sh"},
		{url: "https://example.com/notes.txt?version=2", expect: "notes.txt"},
		{url: "https://example.com/", expect: "downloaded_file"},
		{url: "https://example.com", expect: "downloaded_file"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			require.Equal(t, tt.expect, Filename(tt.url))
		})
	}
}

func TestDownload_PrefersWgetOverCurl(t *testing.T) {
	stubLookPath(t, "wget", "curl")
	dir := t.TempDir()
	fake := &runner.Fake{OnRun: writeDest(t)}

	dest, err := Download(fake, "https://example.com/file.txt", dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "file.txt"), dest)

	require.Len(t, fake.Calls, 1)
	require.Equal(t, "wget", fake.Calls[0].Name)
	require.Equal(t, []string{"-O", dest, "https://example.com/file.txt"}, fake.Calls[0].Args)
}

func TestDownload_FallsBackToCurl(t *testing.T) {
	stubLookPath(t, "curl")
	dir := t.TempDir()
	fake := &runner.Fake{OnRun: writeDest(t)}

	dest, err := Download(fake, "https://example.com/file.txt", dir)
	require.NoError(t, err)

	require.Len(t, fake.Calls, 1)
	require.Equal(t, "curl", fake.Calls[0].Name)
	require.Equal(t, []string{"-L", "-o", dest, "https://example.com/file.txt"}, fake.Calls[0].Args)
}

func TestDownload_NoToolAvailable(t *testing.T) {
	stubLookPath(t)
	fake := &runner.Fake{}

	_, err := Download(fake, "https://example.com/file.txt", t.TempDir())
	require.ErrorIs(t, err, ErrNoDownloadTool)
	require.Empty(t, fake.Calls)
}

func TestDownload_ScriptGetsExecutableBit(t *testing.T) {
	stubLookPath(t, "wget")
	dir := t.TempDir()
	fake := &runner.Fake{OnRun: writeDest(t)}

	dest, err := Download(fake, "https://example.com/setup.sh", dir)
	require.NoError(t, err)

	info, err := os.Stat(dest)
	require.NoError(t, err)
	require.NotZero(t, info.Mode()&0111, "downloaded shell script must be executable")
}

func TestDownload_PlainFileKeepsPermissions(t *testing.T) {
	stubLookPath(t, "wget")
	dir := t.TempDir()
	fake := &runner.Fake{OnRun: writeDest(t)}

	dest, err := Download(fake, "https://example.com/notes.txt", dir)
	require.NoError(t, err)

	info, err := os.Stat(dest)
	require.NoError(t, err)
	require.Zero(t, info.Mode()&0111, "plain downloads must not be marked executable")
}

func TestDownloadAll_FailureDoesNotStopRemainingURLs(t *testing.T) {
	stubLookPath(t, "wget")
	fake := &runner.Fake{FailOn: map[string]error{"wget": errors.New("404")}}

	err := DownloadAll(fake, []string{
		"https://example.com/a.txt",
		"https://example.com/b.txt",
	}, t.TempDir())
	require.Error(t, err)
	require.Len(t, fake.Calls, 2)
}
