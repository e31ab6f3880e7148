// Package cli provides the command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/temirov/code2clipboard/internal/config"
	"github.com/temirov/code2clipboard/internal/services/clipboard"
	"github.com/temirov/code2clipboard/internal/types"
	"github.com/temirov/code2clipboard/internal/utils"
)

const (
	rootUse              = "code2clipboard [directory]"
	rootShortDescription = "copy a project tree and its file contents to the clipboard"
	rootLongDescription  = `code2clipboard scans a directory, prints an annotated tree of the selected files,
and copies the tree followed by every file's content to the clipboard.
Use --tree for only the tree, --tokens for only the token estimate, or both to print the estimate
before the default output.`
	rootUsageExample = `  # Merge every Python and Go file below src
  code2clipboard src --include *.py *.go

  # Show the tree without tests or vendored code
  code2clipboard --tree --exclude vendor/ *_test.go

  # Estimate tokens with a tiktoken encoding
  code2clipboard --tokens --model gpt-4o`

	treeFlagName        = "tree"
	tokensFlagName      = "tokens"
	includeFlagName     = "include"
	excludeFlagName     = "exclude"
	addHiddenFlagName   = "add-hidden"
	maxFileSizeFlagName = "max-file-size"
	noGitignoreFlagName = "no-gitignore"
	modelFlagName       = "model"
	configFlagName      = "config"
	versionFlagName     = "version"

	treeFlagDescription        = "only display the tree and copy it to the clipboard"
	tokensFlagDescription      = "only print the estimated total tokens"
	includeFlagDescription     = "only select files matching these patterns"
	excludeFlagDescription     = "skip files and directories matching these patterns"
	addHiddenFlagDescription   = "include hidden files and directories"
	maxFileSizeFlagDescription = "skip files larger than this many bytes"
	noGitignoreFlagDescription = "do not apply the root .gitignore"
	modelFlagDescription       = "tiktoken model for token counts (default: offline estimate)"
	configFlagDescription      = "path to a configuration file"
	versionFlagDescription     = "display application version"

	initUse                    = "init"
	initShortDescription       = "write a default configuration file"
	initGlobalFlagName         = "global"
	initForceFlagName          = "force"
	initGlobalFlagDescription  = "write to the global configuration directory"
	initForceFlagDescription   = "overwrite an existing configuration file"
	initWrittenMessageTemplate = "Configuration written to %s\n"

	versionTemplate = "code2clipboard version: %s\n"
	defaultPath     = "."
)

// errNegativeMaxFileSize reports a size limit below zero.
var errNegativeMaxFileSize = errors.New("max file size must not be negative")

// applicationDependencies carries the process resources a command needs.
type applicationDependencies struct {
	stdout           io.Writer
	clipboard        clipboard.Copier
	logger           *zap.Logger
	terminalOutput   bool
	workingDirectory string
}

// rootOptions stores the values of the root command flags.
type rootOptions struct {
	treeOnly        bool
	tokensOnly      bool
	includePatterns []string
	excludePatterns []string
	addHidden       bool
	maxFileSize     int64
	noGitignore     bool
	model           string
	configPath      string
	showVersion     bool
}

// Execute runs the code2clipboard application.
func Execute(loggerInstance *zap.Logger) error {
	rootCommand := createRootCommand(applicationDependencies{
		stdout:         os.Stdout,
		clipboard:      clipboard.NewService(),
		logger:         loggerInstance,
		terminalOutput: term.IsTerminal(int(os.Stdout.Fd())),
	})
	rootCommand.SetArgs(normalizeMultiValueFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(dependencies applicationDependencies) *cobra.Command {
	var options rootOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				_, printError := fmt.Fprintf(dependencies.stdout, versionTemplate, utils.GetApplicationVersion())
				return printError
			}
			rootPath := defaultPath
			if len(arguments) > 0 {
				rootPath = arguments[0]
			}
			fileConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
				WorkingDirectory: dependencies.workingDirectory,
				ExplicitFilePath: options.configPath,
			})
			if loadError != nil {
				return loadError
			}
			configuration, resolveError := resolveConfiguration(command, options, fileConfiguration)
			if resolveError != nil {
				return resolveError
			}
			runner := Runner{
				Stdout:         dependencies.stdout,
				Clipboard:      dependencies.clipboard,
				Logger:         dependencies.logger,
				TerminalOutput: dependencies.terminalOutput,
			}
			return runner.Run(rootPath, configuration)
		},
	}

	flags := rootCommand.Flags()
	flags.BoolVar(&options.treeOnly, treeFlagName, false, treeFlagDescription)
	flags.BoolVar(&options.tokensOnly, tokensFlagName, false, tokensFlagDescription)
	flags.StringArrayVar(&options.includePatterns, includeFlagName, nil, includeFlagDescription)
	flags.StringArrayVar(&options.excludePatterns, excludeFlagName, nil, excludeFlagDescription)
	flags.BoolVar(&options.addHidden, addHiddenFlagName, false, addHiddenFlagDescription)
	flags.Int64Var(&options.maxFileSize, maxFileSizeFlagName, types.DefaultMaxFileSize, maxFileSizeFlagDescription)
	flags.BoolVar(&options.noGitignore, noGitignoreFlagName, false, noGitignoreFlagDescription)
	flags.StringVar(&options.model, modelFlagName, "", modelFlagDescription)
	flags.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	flags.BoolVar(&options.showVersion, versionFlagName, false, versionFlagDescription)

	rootCommand.AddCommand(createInitCommand(dependencies))
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// resolveConfiguration layers the flags the user set over the configuration file over defaults.
// Exclude flags extend the configured exclusions; every other flag replaces its configured value.
func resolveConfiguration(command *cobra.Command, options rootOptions, fileConfiguration config.ApplicationConfiguration) (types.Configuration, error) {
	configuration := fileConfiguration.Apply(types.DefaultConfiguration())
	flags := command.Flags()
	if flags.Changed(includeFlagName) {
		configuration.IncludePatterns = utils.DeduplicatePatterns(options.includePatterns)
	}
	if flags.Changed(excludeFlagName) {
		configuration.ExcludePatterns = utils.DeduplicatePatterns(append(append([]string{}, configuration.ExcludePatterns...), options.excludePatterns...))
	}
	if flags.Changed(maxFileSizeFlagName) {
		configuration.MaxFileSize = options.maxFileSize
	}
	if configuration.MaxFileSize < 0 {
		return types.Configuration{}, fmt.Errorf("%w: %d", errNegativeMaxFileSize, configuration.MaxFileSize)
	}
	if flags.Changed(addHiddenFlagName) {
		configuration.IncludeHidden = options.addHidden
	}
	if flags.Changed(noGitignoreFlagName) {
		configuration.UseGitignore = !options.noGitignore
	}
	if flags.Changed(modelFlagName) {
		configuration.TokenModel = options.model
	}
	switch {
	case options.treeOnly && options.tokensOnly:
		configuration.Mode = types.OutputModeMergeTree
		configuration.ReportTokens = true
	case options.treeOnly:
		configuration.Mode = types.OutputModeTree
	case options.tokensOnly:
		configuration.Mode = types.OutputModeTokens
	default:
		configuration.Mode = types.OutputModeMergeTree
	}
	return configuration, nil
}

// createInitCommand returns the init subcommand.
func createInitCommand(dependencies applicationDependencies) *cobra.Command {
	var globalTarget bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if globalTarget {
				target = config.InitTargetGlobal
			}
			writtenPath, initError := config.InitializeConfiguration(config.InitOptions{
				Target:           target,
				Force:            forceOverwrite,
				WorkingDirectory: dependencies.workingDirectory,
			})
			if initError != nil {
				return initError
			}
			_, printError := fmt.Fprintf(dependencies.stdout, initWrittenMessageTemplate, writtenPath)
			return printError
		},
	}
	initCommand.Flags().BoolVar(&globalTarget, initGlobalFlagName, false, initGlobalFlagDescription)
	initCommand.Flags().BoolVar(&forceOverwrite, initForceFlagName, false, initForceFlagDescription)
	return initCommand
}
