package main

import (
	"fastcmd/cmd" // Import the cmd package which contains the CLI flags and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// fastcmd is a command-line dispatcher for everyday Linux system management:
//   - Passes package operations straight through to the host's package
//     managers (apt update/upgrade/install/remove, dpkg, snap, flatpak, pip3)
//   - Clones or updates GitHub repositories and can immediately install them
//     by detecting the repository's installation method (setup.py,
//     requirements.txt, Makefile, CMakeLists.txt, install.sh, install.py)
//   - Downloads files via wget or curl, marking fetched scripts executable
//   - Runs every requested operation once, in a fixed order, continuing past
//     individual failures and summarizing the outcome at the end
//
// Error handling strategy:
//   - Each operation is isolated: a failing apt install or git clone is
//     reported with the tool's own output and execution moves on
//   - The process exits non-zero when any requested operation failed,
//     so scripts wrapping fastcmd can detect partial failure
//
// Integration points:
//   - All external tools are invoked directly (no intermediating shell), so
//     user-supplied package names, URLs, and paths are passed as discrete
//     argument tokens
//   - Destination directories for clones and downloads come from built-in
//     defaults, an optional fastcmd.yaml, or the command line, in that order
func main() {
	cmd.Execute()
}
