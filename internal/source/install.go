package source

import (
	"fmt"
	"os"
	"path/filepath"

	"fastcmd/internal/logger"
	"fastcmd/internal/runner"
)

// Execute runs every step of the given strategy against the target directory,
// in order, stopping at the first failing command. Step output is printed as
// it is captured so the user sees exactly what the external tool said.
func Execute(r runner.Runner, dir string, s Strategy) error {
	for _, step := range s.Steps {
		workDir := dir
		if step.Subdir != "" {
			workDir = filepath.Join(dir, step.Subdir)
			// CMake-style out-of-tree builds need the build directory to
			// exist before the first configure step runs in it.
			if err := os.MkdirAll(workDir, 0755); err != nil {
				return fmt.Errorf("failed to create build directory %s: %w", workDir, err)
			}
		}

		logger.Info("[INFO] %s...\n", step.Desc)
		output, err := r.Run(step.Name, step.Args, workDir)
		if len(output) > 0 {
			fmt.Printf("%s", output)
		}
		if err != nil {
			logger.Error("[ERROR] %s failed: %v\n", step.Desc, err)
			return err
		}
	}
	return nil
}

// Install resolves the installation method for a source directory and, when
// one is recognized, immediately executes it. It returns the resolved kind so
// the caller can distinguish "installed" from "no recognized method".
func Install(r runner.Runner, dir string) (Kind, error) {
	strategy, err := Resolve(dir)
	if err != nil {
		return KindNone, err
	}
	if strategy.Kind == KindNone {
		return KindNone, nil
	}

	logger.Info("[INFO] Found %s, installing via %s strategy...\n", strategy.Marker, strategy.Kind)
	if err := Execute(r, dir, strategy); err != nil {
		return strategy.Kind, err
	}
	return strategy.Kind, nil
}
