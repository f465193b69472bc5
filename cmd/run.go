package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fastcmd/internal/config"
	"fastcmd/internal/fetch"
	"fastcmd/internal/logger"
	"fastcmd/internal/pkgmgr"
	"fastcmd/internal/runner"
	"fastcmd/internal/source"
)

// defaultConfigPath is the config file looked for when --config is not given.
// A missing default file is fine; an explicitly given path must exist.
const defaultConfigPath = "fastcmd.yaml"

// Sentinel errors used to drive the exit code without double-printing:
// by the time either is returned, everything worth saying is on screen.
var (
	errNothingRequested = errors.New("no operation requested")
	errTasksFailed      = errors.New("some tasks failed")
)

// commandRunner executes every external command the dispatcher issues.
// Tests swap in a runner.Fake to observe invocations without side effects.
var commandRunner runner.Runner = runner.ExecRunner{}

// operation pairs one requested CLI operation with the closure that runs it.
type operation struct {
	name      string
	requested bool
	run       func() error
}

// run is the dispatcher. It builds the invocation configuration, lays the
// requested operations out in fixed declaration order, and executes them one
// at a time in a result-collecting loop: a failure is recorded and the loop
// moves on, never aborting the remaining operations.
func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	r := commandRunner

	// Declaration order is the execution order. Operations the user did not
	// request are skipped; everything else runs exactly once.
	ops := []operation{
		{"update", opts.Update, func() error { return pkgmgr.Update(r) }},
		{"upgrade", opts.Upgrade, func() error { return pkgmgr.Upgrade(r) }},
		{"install", len(opts.Install) > 0, func() error { return pkgmgr.Install(r, opts.Install) }},
		{"auto-install", len(opts.AutoInstall) > 0, func() error { return pkgmgr.AutoInstall(r, opts.AutoInstall) }},
		{"remove", len(opts.Remove) > 0, func() error { return pkgmgr.Remove(r, opts.Remove) }},
		{"autoremove", opts.Autoremove, func() error { return pkgmgr.Autoremove(r) }},
		{"autoclean", opts.Autoclean, func() error { return pkgmgr.Autoclean(r) }},
		{"chmod", len(opts.Chmod) > 0, func() error { return pkgmgr.MakeExecutable(r, opts.Chmod) }},
		{"install-deb", len(opts.InstallDeb) > 0, func() error { return pkgmgr.InstallDeb(r, opts.InstallDeb) }},
		{"install-snap", len(opts.InstallSnap) > 0, func() error { return pkgmgr.InstallSnap(r, opts.InstallSnap) }},
		{"install-flatpak", len(opts.InstallFlatpak) > 0, func() error { return pkgmgr.InstallFlatpak(r, opts.InstallFlatpak) }},
		{"install-pip", len(opts.InstallPip) > 0, func() error { return pkgmgr.InstallPip(r, opts.InstallPip) }},
		{"github", len(opts.Github) > 0, func() error { return fetch.CloneAll(r, opts.Github, cfg.ReposDir) }},
		{"github-install", len(opts.GithubInstall) > 0, func() error { return fetch.CloneAndInstallAll(r, opts.GithubInstall, cfg.ReposDir) }},
		{"download", len(opts.Download) > 0, func() error { return fetch.DownloadAll(r, opts.Download, cfg.DownloadsDir) }},
		{"install-source", len(opts.InstallSource) > 0, func() error { return installSources(r, opts.InstallSource) }},
		{"shutdown", opts.Shutdown, func() error { return pkgmgr.Shutdown(r) }},
	}

	requested, failed := 0, 0
	for _, op := range ops {
		if !op.requested {
			continue
		}
		requested++
		if err := op.run(); err != nil {
			logger.Debug("[DEBUG] Operation %s failed: %v\n", op.name, err)
			failed++
		}
	}

	if requested == 0 {
		_ = cmd.Help()
		return errNothingRequested
	}

	if failed > 0 {
		logger.Error("[ERROR] %d of %d task(s) failed. Please check the errors above.\n", failed, requested)
		return errTasksFailed
	}
	logger.Info("[INFO] All tasks completed successfully.\n")
	return nil
}

// installSources runs the installation-method resolver against each given
// source directory. A directory with no recognized method is informational;
// a missing directory or a failing strategy is a failure. Each path is
// isolated from the others.
func installSources(r runner.Runner, paths []string) error {
	var errs []error
	for _, dir := range paths {
		logger.Info("[INFO] Installing from source: %s\n", dir)
		kind, err := source.Install(r, dir)
		switch {
		case errors.Is(err, source.ErrDirectoryNotFound):
			logger.Error("[ERROR] Path '%s' not found\n", dir)
			errs = append(errs, err)
		case err != nil:
			logger.Error("[ERROR] Failed to install from %s: %v\n", dir, err)
			errs = append(errs, err)
		case kind == source.KindNone:
			logger.Warn("[WARN] No recognized installation method in %s\n", dir)
		default:
			logger.Info("[INFO] Successfully installed from %s\n", dir)
		}
	}
	return errors.Join(errs...)
}

// loadRunConfig assembles the invocation configuration with the override
// chain: built-in defaults, then the YAML config file, then command-line
// flags. The default config file is optional; a path given explicitly via
// --config must exist.
func loadRunConfig(cmd *cobra.Command) (config.Run, error) {
	cfg := config.Default()

	explicit := cmd.Flags().Changed("config")
	if _, err := os.Stat(configPath); err == nil {
		cfg, err = config.Load(configPath)
		if err != nil {
			return cfg, err
		}
		logger.Debug("[DEBUG] Loaded config from %s\n", configPath)
	} else if explicit {
		return cfg, fmt.Errorf("config file %s not found", configPath)
	}

	if opts.GithubDir != "" {
		cfg.ReposDir = opts.GithubDir
	}
	if opts.DownloadDir != "" {
		cfg.DownloadsDir = opts.DownloadDir
	}
	return cfg, nil
}
