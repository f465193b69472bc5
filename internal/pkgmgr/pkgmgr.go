package pkgmgr

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"fastcmd/internal/logger"
	"fastcmd/internal/runner"
)

// This package holds the passthrough operations: each exported function maps
// one CLI flag onto one fixed external-command template, parameterized only
// by the user-supplied package names or file paths. There is no conditional
// logic beyond checking that at least one argument was supplied (and, for
// file-based operations, that the file exists).

// run executes one command template, printing the tool's output and a status
// line, mirroring how every passthrough reports.
func run(r runner.Runner, desc, name string, args ...string) error {
	logger.Info("[INFO] %s...\n", desc)
	output, err := r.Run(name, args, "")
	if len(output) > 0 {
		fmt.Printf("%s", output)
	}
	if err != nil {
		logger.Error("[ERROR] %s failed: %v\n", desc, err)
		return err
	}
	return nil
}

// requireArgs guards the "at least one argument supplied" contract shared by
// every multi-value passthrough.
func requireArgs(op string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s: no arguments supplied", op)
	}
	return nil
}

// Update refreshes the apt package list.
func Update(r runner.Runner) error {
	return run(r, "Updating package list", "apt", "update")
}

// Upgrade upgrades all system packages.
func Upgrade(r runner.Runner) error {
	return run(r, "Upgrading system packages", "apt", "full-upgrade", "-y")
}

// forEach runs one command template per item so a failing item never
// suppresses the ones after it. Results are joined; a nil return means every
// item succeeded.
func forEach(items []string, do func(item string) error) error {
	var errs []error
	for _, item := range items {
		if err := do(item); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Install installs the given packages via apt, one invocation per package.
func Install(r runner.Runner, pkgs []string) error {
	if err := requireArgs("install", pkgs); err != nil {
		return err
	}
	return forEach(pkgs, func(pkg string) error {
		return run(r, "Installing package: "+pkg, "apt", "install", "-y", pkg)
	})
}

// AutoInstall refreshes the package list first and installs the given
// packages only if the refresh succeeded.
func AutoInstall(r runner.Runner, pkgs []string) error {
	if err := requireArgs("auto-install", pkgs); err != nil {
		return err
	}
	logger.Info("[INFO] Auto-installing package(s): %s\n", strings.Join(pkgs, " "))
	if err := Update(r); err != nil {
		return err
	}
	return Install(r, pkgs)
}

// Remove removes the given packages via apt, one invocation per package.
func Remove(r runner.Runner, pkgs []string) error {
	if err := requireArgs("remove", pkgs); err != nil {
		return err
	}
	return forEach(pkgs, func(pkg string) error {
		return run(r, "Removing package: "+pkg, "apt", "remove", "-y", pkg)
	})
}

// Autoremove removes packages that are no longer needed.
func Autoremove(r runner.Runner) error {
	return run(r, "Autoremoving unnecessary packages", "apt", "autoremove", "-y")
}

// Autoclean clears out the local repository of retrieved package files.
func Autoclean(r runner.Runner) error {
	return run(r, "Autocleaning unnecessary packages", "apt", "autoclean")
}

// MakeExecutable sets the executable bit on each given file via chmod.
// Missing files are reported as failures; remaining files still run.
func MakeExecutable(r runner.Runner, files []string) error {
	if err := requireArgs("chmod", files); err != nil {
		return err
	}

	return forEach(files, func(file string) error {
		if _, err := os.Stat(file); err != nil {
			logger.Error("[ERROR] File '%s' not found\n", file)
			return fmt.Errorf("chmod: file not found: %s", file)
		}
		return run(r, "Making "+file+" executable", "chmod", "+x", file)
	})
}

// InstallDeb installs each given .deb file with dpkg, then runs a best-effort
// dependency fix. A missing file fails that file only; remaining files still
// run.
func InstallDeb(r runner.Runner, files []string) error {
	if err := requireArgs("install-deb", files); err != nil {
		return err
	}

	return forEach(files, func(file string) error {
		if _, err := os.Stat(file); err != nil {
			logger.Error("[ERROR] File '%s' not found\n", file)
			return fmt.Errorf("install-deb: file not found: %s", file)
		}
		if err := run(r, "Installing .deb package: "+file, "dpkg", "-i", file); err != nil {
			return err
		}
		// dpkg leaves unmet dependencies behind; let apt pull them in.
		// Best effort: a failure here does not fail the deb install itself.
		_ = run(r, "Fixing dependencies", "apt", "install", "-f", "-y")
		return nil
	})
}

// InstallSnap installs the given snap packages, one invocation per package.
func InstallSnap(r runner.Runner, pkgs []string) error {
	if err := requireArgs("install-snap", pkgs); err != nil {
		return err
	}
	return forEach(pkgs, func(pkg string) error {
		return run(r, "Installing snap package: "+pkg, "snap", "install", pkg)
	})
}

// InstallFlatpak installs the given flatpak packages, one invocation per
// package.
func InstallFlatpak(r runner.Runner, pkgs []string) error {
	if err := requireArgs("install-flatpak", pkgs); err != nil {
		return err
	}
	return forEach(pkgs, func(pkg string) error {
		return run(r, "Installing flatpak package: "+pkg, "flatpak", "install", "-y", pkg)
	})
}

// InstallPip installs the given Python packages via pip3, one invocation per
// package.
func InstallPip(r runner.Runner, pkgs []string) error {
	if err := requireArgs("install-pip", pkgs); err != nil {
		return err
	}
	return forEach(pkgs, func(pkg string) error {
		return run(r, "Installing Python package: "+pkg, "pip3", "install", pkg)
	})
}

// Shutdown powers the system off immediately.
func Shutdown(r runner.Runner) error {
	logger.Warn("[WARN] Shutting down the system...\n")
	return run(r, "System shutdown", "shutdown", "now")
}
