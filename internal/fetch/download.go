package fetch

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"fastcmd/internal/logger"
	"fastcmd/internal/runner"
)

// ErrNoDownloadTool reports that neither of the two interchangeable fetch
// tools is present on the host.
var ErrNoDownloadTool = errors.New("neither wget nor curl is available")

// fallbackFilename is used when a URL's path has no usable final element.
const fallbackFilename = "downloaded_file"

// lookPath is swapped out in tests to control which fetch tools the host
// appears to have.
var lookPath = exec.LookPath

// Filename derives the destination filename from a download URL's path.
func Filename(rawURL string) string {
	name := ""
	if u, err := url.Parse(rawURL); err == nil {
		name = path.Base(u.Path)
	}
	if name == "" || name == "." || name == "/" {
		name = fallbackFilename
	}
	return name
}

// Download fetches one URL into downloadsDir, preferring wget and falling
// back to curl. After a successful fetch, files named like shell or Python
// scripts get their executable bit set; everything else is left untouched.
// It returns the destination path.
func Download(r runner.Runner, rawURL, downloadsDir string) (string, error) {
	if err := os.MkdirAll(downloadsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create downloads directory %s: %w", downloadsDir, err)
	}

	dest := filepath.Join(downloadsDir, Filename(rawURL))
	logger.Info("[INFO] Downloading %s...\n", rawURL)

	var output []byte
	var err error
	if _, lookErr := lookPath("wget"); lookErr == nil {
		output, err = r.Run("wget", []string{"-O", dest, rawURL}, "")
	} else if _, lookErr := lookPath("curl"); lookErr == nil {
		output, err = r.Run("curl", []string{"-L", "-o", dest, rawURL}, "")
	} else {
		logger.Error("[ERROR] Neither wget nor curl is available\n")
		return "", ErrNoDownloadTool
	}
	if len(output) > 0 {
		fmt.Printf("%s", output)
	}
	if err != nil {
		logger.Error("[ERROR] Failed to download %s: %v\n", rawURL, err)
		return dest, err
	}

	logger.Info("[INFO] File downloaded to: %s\n", dest)
	if strings.HasSuffix(dest, ".sh") || strings.HasSuffix(dest, ".py") {
		if err := os.Chmod(dest, 0755); err != nil {
			logger.Warn("[WARN] Failed to make %s executable: %v\n", dest, err)
		}
	}
	return dest, nil
}

// DownloadAll fetches every given URL. A failing URL is reported and the
// remaining URLs still run.
func DownloadAll(r runner.Runner, urls []string, downloadsDir string) error {
	var errs []error
	for _, rawURL := range urls {
		if _, err := Download(r, rawURL, downloadsDir); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
