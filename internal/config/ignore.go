// Package config loads application configuration files and ignore rules.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"

	"github.com/temirov/code2clipboard/internal/utils"
)

// gitDirectoryPattern excludes the Git metadata directory even when hidden entries are included.
const gitDirectoryPattern = utils.GitDirectoryName + "/"

const (
	leadingDoubleStarPrefix = "**/"
	negationPrefix          = "!"
	rootAnchorPrefix        = "/"
	lineSeparator           = "\n"
)

// IgnoreMatcher reports whether an absolute path below the root is ignored.
type IgnoreMatcher interface {
	Match(absolutePath string, isDirectory bool) bool
}

// LoadGitignoreMatcher compiles the .gitignore file at the root of rootDirectoryPath.
// A missing .gitignore yields a nil matcher and no error.
func LoadGitignoreMatcher(rootDirectoryPath string) (IgnoreMatcher, error) {
	absoluteRootPath, absoluteError := filepath.Abs(rootDirectoryPath)
	if absoluteError != nil {
		return nil, fmt.Errorf("resolve %s: %w", rootDirectoryPath, absoluteError)
	}
	gitIgnoreFilePath := filepath.Join(absoluteRootPath, utils.GitIgnoreFileName)
	gitIgnoreInformation, statError := os.Stat(gitIgnoreFilePath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", gitIgnoreFilePath, statError)
	}
	if gitIgnoreInformation.IsDir() {
		return nil, nil
	}
	gitIgnoreContent, readError := os.ReadFile(gitIgnoreFilePath)
	if readError != nil {
		return nil, fmt.Errorf("loading %s from %s: %w", utils.GitIgnoreFileName, absoluteRootPath, readError)
	}
	expandedRules := expandLeadingDoubleStar(string(gitIgnoreContent))
	return gitignore.NewGitIgnoreFromReader(absoluteRootPath, strings.NewReader(expandedRules)), nil
}

// expandLeadingDoubleStar adds a root-anchored copy of every "**/" rule. go-gitignore only
// matches such rules below at least one directory, while Git also matches them at the root.
func expandLeadingDoubleStar(gitIgnoreContent string) string {
	var expandedLines []string
	for _, rawLine := range strings.Split(gitIgnoreContent, lineSeparator) {
		expandedLines = append(expandedLines, rawLine)
		trimmedLine := strings.Trim(strings.TrimSuffix(rawLine, "\r"), " ")
		linePrefix := ""
		if strings.HasPrefix(trimmedLine, negationPrefix) {
			linePrefix = negationPrefix
			trimmedLine = strings.TrimPrefix(trimmedLine, negationPrefix)
		}
		if !strings.HasPrefix(trimmedLine, leadingDoubleStarPrefix) {
			continue
		}
		anchoredRule := strings.TrimLeft(strings.TrimPrefix(trimmedLine, leadingDoubleStarPrefix), rootAnchorPrefix)
		if len(anchoredRule) == 0 || anchoredRule == "**" {
			continue
		}
		expandedLines = append(expandedLines, linePrefix+rootAnchorPrefix+anchoredRule)
	}
	return strings.Join(expandedLines, lineSeparator)
}

// DefaultExcludePatterns returns the exclusions applied to every run ahead of user patterns.
func DefaultExcludePatterns() []string {
	return []string{gitDirectoryPattern}
}

// CombineExcludePatterns merges the defaults, configuration file patterns, and flag patterns
// preserving order and dropping duplicates.
func CombineExcludePatterns(patternGroups ...[]string) []string {
	combinedPatterns := DefaultExcludePatterns()
	for _, patternGroup := range patternGroups {
		combinedPatterns = append(combinedPatterns, patternGroup...)
	}
	return utils.DeduplicatePatterns(combinedPatterns)
}
