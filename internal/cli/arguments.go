package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	flagPrefix            = "-"
	longFlagPrefix        = "--"
	endOfFlagsMarker      = "--"
	flagValueSeparator    = "="
	stringArrayFlagTypeID = "stringArray"
)

// normalizeMultiValueFlagArguments rewrites "--include a b c" into one "--include=value"
// argument per value. A multi-value flag consumes every following argument up to the next
// flag, so the directory argument has to precede it.
func normalizeMultiValueFlagArguments(command *cobra.Command, arguments []string) []string {
	if command == nil || len(arguments) == 0 {
		return arguments
	}
	multiValueFlags := map[string]struct{}{}
	collectMultiValueFlagNames(command, multiValueFlags)
	if len(multiValueFlags) == 0 {
		return arguments
	}
	normalized := make([]string, 0, len(arguments))
	index := 0
	for index < len(arguments) {
		currentArgument := arguments[index]
		if currentArgument == endOfFlagsMarker {
			normalized = append(normalized, arguments[index:]...)
			break
		}
		index++
		if !strings.HasPrefix(currentArgument, longFlagPrefix) || strings.Contains(currentArgument, flagValueSeparator) {
			normalized = append(normalized, currentArgument)
			continue
		}
		flagName := strings.TrimPrefix(currentArgument, longFlagPrefix)
		if _, isMultiValue := multiValueFlags[flagName]; !isMultiValue {
			normalized = append(normalized, currentArgument)
			continue
		}
		consumedValues := 0
		for index < len(arguments) && !strings.HasPrefix(arguments[index], flagPrefix) {
			normalized = append(normalized, longFlagPrefix+flagName+flagValueSeparator+arguments[index])
			index++
			consumedValues++
		}
		if consumedValues == 0 {
			normalized = append(normalized, currentArgument)
		}
	}
	return normalized
}

func collectMultiValueFlagNames(command *cobra.Command, target map[string]struct{}) {
	visit := func(flagSet *pflag.FlagSet) {
		if flagSet == nil {
			return
		}
		flagSet.VisitAll(func(flag *pflag.Flag) {
			if flag != nil && flag.Value != nil && flag.Value.Type() == stringArrayFlagTypeID {
				target[flag.Name] = struct{}{}
			}
		})
	}
	visit(command.PersistentFlags())
	visit(command.Flags())
}
