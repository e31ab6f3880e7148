// Package utils contains general helper functions used across code2clipboard.
package utils

import "strings"

// File and directory names used across the project.
const (
	// GitIgnoreFileName is the name of the Git ignore file.
	GitIgnoreFileName = ".gitignore"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
	// ConfigFileName is the name of the configuration file inside GlobalConfigDirectoryName.
	ConfigFileName = "config.yaml"
	// LocalConfigFileName is the name of the configuration file in the working directory.
	LocalConfigFileName = ".code2clipboard.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".code2clipboard"
	// hiddenNamePrefix marks hidden entries.
	hiddenNamePrefix = "."
)

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept. Blank patterns are dropped.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		trimmedPattern := strings.TrimSpace(pattern)
		if trimmedPattern == "" {
			continue
		}
		if _, exists := encounteredPatterns[trimmedPattern]; !exists {
			encounteredPatterns[trimmedPattern] = struct{}{}
			result = append(result, trimmedPattern)
		}
	}
	return result
}

// IsHiddenName reports whether a file or directory name follows the hidden-entry convention.
func IsHiddenName(name string) bool {
	return name != "." && name != ".." && strings.HasPrefix(name, hiddenNamePrefix)
}
