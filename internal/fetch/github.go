package fetch

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"fastcmd/internal/logger"
	"fastcmd/internal/runner"
	"fastcmd/internal/source"
)

// RepoName extracts the repository name from a git URL: a trailing ".git"
// suffix and trailing slash are stripped, then the last path element is the
// name. "https://github.com/foo/bar.git" yields "bar".
func RepoName(url string) string {
	url = strings.TrimSuffix(url, "/")
	url = strings.TrimSuffix(url, ".git")
	url = strings.TrimSuffix(url, "/")
	return path.Base(url)
}

// CloneOrUpdate obtains a local copy of the repository under reposDir. A
// fresh target is cloned; an existing one is updated in place with git pull
// rather than re-cloned, so re-running against an already-cloned repository
// never fails with "directory already exists". It returns the local path.
func CloneOrUpdate(r runner.Runner, url, reposDir string) (string, error) {
	if err := os.MkdirAll(reposDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create repos directory %s: %w", reposDir, err)
	}

	name := RepoName(url)
	dest := filepath.Join(reposDir, name)

	if _, err := os.Stat(dest); err == nil {
		logger.Info("[INFO] Repository '%s' exists, updating...\n", name)
		output, err := r.Run("git", []string{"pull"}, dest)
		if len(output) > 0 {
			fmt.Printf("%s", output)
		}
		if err != nil {
			logger.Error("[ERROR] Failed to update repository %s: %v\n", name, err)
			return dest, err
		}
		return dest, nil
	}

	logger.Info("[INFO] Cloning %s...\n", url)
	output, err := r.Run("git", []string{"clone", url, dest}, "")
	if len(output) > 0 {
		fmt.Printf("%s", output)
	}
	if err != nil {
		logger.Error("[ERROR] Failed to clone repository %s: %v\n", name, err)
		return dest, err
	}
	logger.Info("[INFO] Repository cloned to: %s\n", dest)
	return dest, nil
}

// CloneAll clones or updates every given repository URL. A failure aborts
// only that repository; the remaining URLs still run.
func CloneAll(r runner.Runner, urls []string, reposDir string) error {
	var errs []error
	for _, url := range urls {
		if _, err := CloneOrUpdate(r, url, reposDir); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// CloneAndInstallAll clones or updates every given repository URL and
// immediately hands each resulting local directory to the installation-method
// resolver. A repository with no recognized installation method is reported
// as informational, not a failure.
func CloneAndInstallAll(r runner.Runner, urls []string, reposDir string) error {
	var errs []error
	for _, url := range urls {
		dest, err := CloneOrUpdate(r, url, reposDir)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		name := RepoName(url)
		logger.Info("[INFO] Attempting to install %s...\n", name)
		kind, err := source.Install(r, dest)
		switch {
		case err != nil:
			logger.Error("[ERROR] Failed to install %s: %v\n", name, err)
			errs = append(errs, err)
		case kind == source.KindNone:
			logger.Warn("[WARN] No recognized installation method for %s\n", name)
			logger.Warn("[WARN] Repository is at: %s, please install manually\n", dest)
		default:
			logger.Info("[INFO] Successfully installed %s\n", name)
		}
	}
	return errors.Join(errs...)
}
