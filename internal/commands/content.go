package commands

import (
	"os"

	"github.com/temirov/code2clipboard/internal/types"
)

const (
	mergeHeaderRule   = "=============================="
	mergeHeaderPrefix = "File: "
)

// MergeHeader returns the banner that precedes the content of relativePath.
func MergeHeader(relativePath string) string {
	return mergeHeaderRule + "\n" + mergeHeaderPrefix + relativePath + "\n" + mergeHeaderRule + "\n"
}

// ReadMergeEntries reads every record again, in order, and pairs it with its header.
// Files that can no longer be read are skipped with a warning.
func ReadMergeEntries(records []types.FileRecord) ([]types.MergedEntry, []types.SkipWarning) {
	mergedEntries := make([]types.MergedEntry, 0, len(records))
	var warnings []types.SkipWarning
	for _, record := range records {
		if !record.Included {
			continue
		}
		fileBytes, readError := os.ReadFile(record.AbsolutePath)
		if readError != nil {
			warnings = append(warnings, skipWarning(record.RelativePath, readError))
			continue
		}
		mergedEntries = append(mergedEntries, types.MergedEntry{
			Header:  MergeHeader(record.RelativePath),
			Content: string(fileBytes),
		})
	}
	return mergedEntries, warnings
}
