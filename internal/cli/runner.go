package cli

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/temirov/code2clipboard/internal/commands"
	"github.com/temirov/code2clipboard/internal/config"
	"github.com/temirov/code2clipboard/internal/output"
	"github.com/temirov/code2clipboard/internal/pattern"
	"github.com/temirov/code2clipboard/internal/services/clipboard"
	"github.com/temirov/code2clipboard/internal/tokenizer"
	"github.com/temirov/code2clipboard/internal/types"
)

const (
	clipboardFailureMessage = "could not copy to clipboard"
	gitignoreFailureMessage = "ignoring .gitignore"
	tokenizerSelectedLabel  = "tokenizer"
)

// Runner executes one run: it collects files once and dispatches on the output mode.
type Runner struct {
	Stdout    io.Writer
	Clipboard clipboard.Copier
	// Logger receives warnings and clipboard failures; nil discards them.
	Logger *zap.Logger
	// TerminalOutput enables ANSI decoration of the tree printed to Stdout.
	TerminalOutput bool
}

// Run processes rootPath according to configuration. Only fatal problems, such as an invalid
// root or an unknown tokenizer model, are returned.
func (runner Runner) Run(rootPath string, configuration types.Configuration) error {
	logger := runner.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	absoluteRootPath, resolveError := commands.ResolveRoot(rootPath)
	if resolveError != nil {
		return resolveError
	}

	patternSet, patternErrors := pattern.NewSet(configuration.IncludePatterns, config.CombineExcludePatterns(configuration.ExcludePatterns))
	for _, patternError := range patternErrors {
		logger.Warn(string(types.SkipReasonPattern), zap.Error(patternError))
	}

	tokenCounter, tokenizerName, counterError := tokenizer.NewCounter(tokenizer.Config{Model: configuration.TokenModel})
	if counterError != nil {
		return counterError
	}
	logger.Debug(tokenizerSelectedLabel, zap.String("name", tokenizerName))

	collector := commands.Collector{
		Patterns:      patternSet,
		MaxFileSize:   configuration.MaxFileSize,
		IncludeHidden: configuration.IncludeHidden,
		TokenCounter:  tokenCounter,
	}
	if configuration.UseGitignore {
		ignoreMatcher, ignoreError := config.LoadGitignoreMatcher(absoluteRootPath)
		if ignoreError != nil {
			logger.Warn(gitignoreFailureMessage, zap.Error(ignoreError))
		} else if ignoreMatcher != nil {
			collector.Ignore = ignoreMatcher
		}
	}

	collection, collectError := collector.Collect(absoluteRootPath)
	if collectError != nil {
		return collectError
	}
	logWarnings(logger, collection.Warnings)

	switch configuration.Mode {
	case types.OutputModeTokens:
		return runner.println(output.TokenTotalLine(collection.TotalTokens()))
	case types.OutputModeTree:
		return runner.deliverTree(logger, collection)
	default:
		if configuration.ReportTokens {
			if printError := runner.println(output.TokenTotalLine(collection.TotalTokens())); printError != nil {
				return printError
			}
		}
		if treeError := runner.deliverTree(logger, collection); treeError != nil {
			return treeError
		}
		mergedEntries, mergeWarnings := commands.ReadMergeEntries(collection.Records)
		logWarnings(logger, mergeWarnings)
		if runner.copyToClipboard(logger, output.RenderMerged(mergedEntries)) {
			return runner.println(output.MergeCopiedMessage)
		}
		return nil
	}
}

// deliverTree prints the tree, decorated for terminals, and copies the plain rendering.
func (runner Runner) deliverTree(logger *zap.Logger, collection types.Collection) error {
	rootNode := commands.BuildDirectoryTree(collection.RootName, collection.Records)
	if printError := runner.println(output.RenderTree(rootNode, output.TreeStyle{Dim: runner.TerminalOutput})); printError != nil {
		return printError
	}
	if runner.copyToClipboard(logger, output.RenderTree(rootNode, output.TreeStyle{})) {
		return runner.println("\n" + output.TreeCopiedMessage)
	}
	return nil
}

func (runner Runner) copyToClipboard(logger *zap.Logger, text string) bool {
	if runner.Clipboard == nil {
		logger.Error(clipboardFailureMessage, zap.Error(clipboard.ErrUnsupported))
		return false
	}
	if copyError := runner.Clipboard.Copy(text); copyError != nil {
		logger.Error(clipboardFailureMessage, zap.Error(copyError))
		return false
	}
	return true
}

func (runner Runner) println(line string) error {
	_, writeError := fmt.Fprintln(runner.Stdout, line)
	return writeError
}

func logWarnings(logger *zap.Logger, warnings []types.SkipWarning) {
	for _, warning := range warnings {
		logger.Warn(warning.Message())
	}
}
