package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrDirectoryNotFound reports that the target path for a source install does
// not exist or is not a directory.
var ErrDirectoryNotFound = errors.New("directory not found")

// Kind identifies one installation strategy.
type Kind string

const (
	KindSetupPy      Kind = "python-setup"        // setup.py driven Python package install
	KindRequirements Kind = "python-requirements" // requirements.txt dependency install
	KindMake         Kind = "make"                // Makefile build + privileged install
	KindCMake        Kind = "cmake"               // CMake out-of-tree build + privileged install
	KindShellScript  Kind = "install-script"      // install.sh executed as a shell script
	KindPythonScript Kind = "install-python"      // install.py executed with the Python interpreter
	KindNone         Kind = "none"                // no recognized installation method
)

// Step is one external command in a strategy's fixed sequence.
type Step struct {
	Name string   // Executable name, e.g. "make"
	Args []string // Argument tokens, fixed per strategy
	// Subdir, when non-empty, is a directory relative to the target that the
	// step runs in. It is created before the step executes (CMake's build
	// directory). Empty means the step runs in the target directory itself.
	Subdir string
	// Desc is the human-readable progress line printed before the step runs.
	Desc string
}

// Strategy binds a marker file to the ordered command sequence that installs
// a source directory carrying that marker.
type Strategy struct {
	Kind   Kind
	Marker string // Filename whose presence in the target selects this strategy
	Steps  []Step
}

// strategies is the resolver's decision table. Order is the priority
// contract: the table is scanned top to bottom and the first marker found in
// the target directory wins; markers further down are ignored even when
// present. Keeping the table explicit keeps the priority independently
// testable.
var strategies = []Strategy{
	{
		Kind:   KindSetupPy,
		Marker: "setup.py",
		Steps: []Step{
			{Name: "python3", Args: []string{"setup.py", "install"}, Desc: "Installing from setup.py"},
		},
	},
	{
		Kind:   KindRequirements,
		Marker: "requirements.txt",
		Steps: []Step{
			{Name: "pip3", Args: []string{"install", "-r", "requirements.txt"}, Desc: "Installing requirements"},
		},
	},
	{
		Kind:   KindMake,
		Marker: "Makefile",
		Steps: []Step{
			{Name: "make", Desc: "Building"},
			{Name: "sudo", Args: []string{"make", "install"}, Desc: "Installing"},
		},
	},
	{
		Kind:   KindCMake,
		Marker: "CMakeLists.txt",
		Steps: []Step{
			{Name: "cmake", Args: []string{".."}, Subdir: "build", Desc: "Configuring CMake"},
			{Name: "make", Subdir: "build", Desc: "Building"},
			{Name: "sudo", Args: []string{"make", "install"}, Subdir: "build", Desc: "Installing"},
		},
	},
	{
		Kind:   KindShellScript,
		Marker: "install.sh",
		Steps: []Step{
			{Name: "chmod", Args: []string{"+x", "install.sh"}, Desc: "Making install.sh executable"},
			{Name: "bash", Args: []string{"install.sh"}, Desc: "Running install.sh"},
		},
	},
	{
		Kind:   KindPythonScript,
		Marker: "install.py",
		Steps: []Step{
			{Name: "python3", Args: []string{"install.py"}, Desc: "Running install.py"},
		},
	},
}

// Resolve maps a source directory to exactly one installation strategy by
// scanning the decision table in priority order. It only reads the directory;
// executing the chosen strategy is the caller's job.
//
// A directory with no recognized marker resolves to a Strategy with
// Kind == KindNone and a nil error: "nothing to do" is an informational
// outcome for the caller to report, not a failure. A missing or non-directory
// path is a failure and returns ErrDirectoryNotFound.
func Resolve(dir string) (Strategy, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return Strategy{Kind: KindNone}, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}

	for _, s := range strategies {
		if _, err := os.Stat(filepath.Join(dir, s.Marker)); err == nil {
			return s, nil
		}
	}
	return Strategy{Kind: KindNone}, nil
}
