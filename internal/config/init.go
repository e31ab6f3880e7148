package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/code2clipboard/internal/utils"
)

// InitTarget identifies where configuration should be initialized.
type InitTarget string

const (
	// InitTargetLocal writes configuration into the working directory.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal writes configuration into the global configuration directory.
	InitTargetGlobal InitTarget = "global"

	defaultConfigurationTemplate = `# Patterns selecting files; empty selects everything.
include: []
# Patterns removing files and directories; exclusion wins over inclusion.
exclude: []
# Files larger than this many bytes are skipped.
max_file_size: 20480
# Include files and directories whose names start with a dot.
add_hidden: false
# Apply the .gitignore at the root of the scanned directory.
use_gitignore: true
# tiktoken model used for token counts; empty uses the offline estimate.
model: ""
`
)

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	Target           InitTarget
	Force            bool
	WorkingDirectory string
}

// InitializeConfiguration writes the commented default configuration to the requested target
// and returns the written path. Existing files are only replaced when Force is set.
func InitializeConfiguration(options InitOptions) (string, error) {
	destinationPath, resolveErr := resolveInitDestination(options)
	if resolveErr != nil {
		return "", resolveErr
	}

	_, statErr := os.Stat(destinationPath)
	switch {
	case statErr == nil && !options.Force:
		return "", fmt.Errorf("configuration file already exists at %s", destinationPath)
	case statErr != nil && !os.IsNotExist(statErr):
		return "", fmt.Errorf("inspect configuration path %s: %w", destinationPath, statErr)
	}

	if err := os.MkdirAll(filepath.Dir(destinationPath), 0o755); err != nil {
		return "", fmt.Errorf("create configuration directory %s: %w", filepath.Dir(destinationPath), err)
	}
	if err := os.WriteFile(destinationPath, []byte(defaultConfigurationTemplate), 0o600); err != nil {
		return "", fmt.Errorf("write configuration to %s: %w", destinationPath, err)
	}
	return destinationPath, nil
}

func resolveInitDestination(options InitOptions) (string, error) {
	switch options.Target {
	case "", InitTargetLocal:
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			current, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("determine working directory for configuration: %w", err)
			}
			workingDirectory = current
		}
		return filepath.Join(workingDirectory, utils.LocalConfigFileName), nil
	case InitTargetGlobal:
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory for configuration: %w", err)
		}
		return filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName), nil
	default:
		return "", fmt.Errorf("unsupported init target %q", options.Target)
	}
}
