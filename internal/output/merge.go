package output

import (
	"strings"

	"github.com/temirov/code2clipboard/internal/types"
	"github.com/temirov/code2clipboard/internal/utils"
)

const (
	mergeEntrySeparator = "\n\n"

	tokenTotalPrefix = "Estimated total tokens: "

	// TreeCopiedMessage is printed after the tree reaches the clipboard.
	TreeCopiedMessage = "(Tree copied to clipboard.)"
	// MergeCopiedMessage is printed after the merged contents reach the clipboard.
	MergeCopiedMessage = "(All file contents merged and copied to clipboard.)"
)

// RenderMerged concatenates header, content, and a blank-line separator for every entry.
// No entries yield an empty string.
func RenderMerged(entries []types.MergedEntry) string {
	var builder strings.Builder
	for _, entry := range entries {
		builder.WriteString(entry.Header)
		builder.WriteString(entry.Content)
		builder.WriteString(mergeEntrySeparator)
	}
	return builder.String()
}

// TokenTotalLine reports the abbreviated total token estimate of a run.
func TokenTotalLine(totalTokens int) string {
	return tokenTotalPrefix + utils.FormatTokenCount(totalTokens)
}
