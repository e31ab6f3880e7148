// Package commands contains the file selection, tree building, and content merging logic.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/temirov/code2clipboard/internal/pattern"
	"github.com/temirov/code2clipboard/internal/tokenizer"
	"github.com/temirov/code2clipboard/internal/types"
	"github.com/temirov/code2clipboard/internal/utils"
)

const (
	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "%w: getting absolute path for %s: %w"
	// errorStatRootFormat is used when the root cannot be inspected.
	errorStatRootFormat = "%w: %s: %w"
	// errorRootNotDirectoryFormat is used when the root is a file or another non-directory entry.
	errorRootNotDirectoryFormat = "%w: %s is not a directory"
	// errorReadRootFormat is used when the root directory cannot be listed.
	errorReadRootFormat = "%w: reading directory %s: %w"
)

// IgnoreMatcher reports whether an absolute path is ignored by repository rules.
type IgnoreMatcher interface {
	Match(absolutePath string, isDirectory bool) bool
}

// Collector selects the files of one run.
type Collector struct {
	Patterns      pattern.Set
	MaxFileSize   int64
	IncludeHidden bool
	// Ignore is optional; nil disables repository ignore rules.
	Ignore       IgnoreMatcher
	TokenCounter tokenizer.Counter
}

// walkFrame is one directory level on the explicit traversal stack.
type walkFrame struct {
	absolutePath string
	relativePath string
	entries      []os.DirEntry
	nextIndex    int
}

// ResolveRoot returns the absolute path of rootPath after checking that it is a directory.
// Every failure wraps types.ErrInvalidRoot.
func ResolveRoot(rootPath string) (string, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return "", fmt.Errorf(errorAbsolutePathFormat, types.ErrInvalidRoot, rootPath, absolutePathError)
	}
	absoluteRootPath = filepath.Clean(absoluteRootPath)
	rootInformation, statError := os.Stat(absoluteRootPath)
	if statError != nil {
		return "", fmt.Errorf(errorStatRootFormat, types.ErrInvalidRoot, rootPath, statError)
	}
	if !rootInformation.IsDir() {
		return "", fmt.Errorf(errorRootNotDirectoryFormat, types.ErrInvalidRoot, rootPath)
	}
	return absoluteRootPath, nil
}

// Collect walks rootPath depth-first, visiting entries of each directory in lexicographic order,
// and returns the selected files in discovery order. Problems with individual entries become
// warnings; only an invalid root is returned as an error, wrapping types.ErrInvalidRoot.
func (collector Collector) Collect(rootPath string) (types.Collection, error) {
	absoluteRootPath, resolveError := ResolveRoot(rootPath)
	if resolveError != nil {
		return types.Collection{}, resolveError
	}
	rootEntries, readRootError := os.ReadDir(absoluteRootPath)
	if readRootError != nil {
		return types.Collection{}, fmt.Errorf(errorReadRootFormat, types.ErrInvalidRoot, rootPath, readRootError)
	}

	collection := types.Collection{
		RootPath: absoluteRootPath,
		RootName: filepath.Base(absoluteRootPath),
	}
	counter := collector.TokenCounter
	if counter == nil {
		counter = tokenizer.NewHeuristicCounter()
	}

	stack := []*walkFrame{{absolutePath: absoluteRootPath, relativePath: "", entries: rootEntries}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		if frame.nextIndex >= len(frame.entries) {
			stack = stack[:len(stack)-1]
			continue
		}
		directoryEntry := frame.entries[frame.nextIndex]
		frame.nextIndex++

		entryName := directoryEntry.Name()
		if !collector.IncludeHidden && utils.IsHiddenName(entryName) {
			continue
		}
		absoluteEntryPath := filepath.Join(frame.absolutePath, entryName)
		relativeEntryPath := path.Join(frame.relativePath, entryName)

		switch entryType := directoryEntry.Type(); {
		case entryType.IsDir():
			if collector.prunesDirectory(absoluteEntryPath, relativeEntryPath) {
				continue
			}
			childEntries, readDirectoryError := os.ReadDir(absoluteEntryPath)
			if readDirectoryError != nil {
				collection.Warnings = append(collection.Warnings, skipWarning(relativeEntryPath, readDirectoryError))
				continue
			}
			stack = append(stack, &walkFrame{
				absolutePath: absoluteEntryPath,
				relativePath: relativeEntryPath,
				entries:      childEntries,
			})
		case entryType.IsRegular():
			record, warning, selected := collector.inspectFile(counter, absoluteEntryPath, relativeEntryPath, directoryEntry)
			if warning != nil {
				collection.Warnings = append(collection.Warnings, *warning)
			}
			if selected {
				collection.Records = append(collection.Records, record)
			}
		}
	}
	return collection, nil
}

func (collector Collector) prunesDirectory(absolutePath string, relativePath string) bool {
	if collector.Patterns.ExcludesDirectory(relativePath) {
		return true
	}
	return collector.Ignore != nil && collector.Ignore.Match(absolutePath, true)
}

// inspectFile applies the selection policy to one regular file. A nil warning with a false
// selection means the file was filtered out by policy.
func (collector Collector) inspectFile(counter tokenizer.Counter, absolutePath string, relativePath string, directoryEntry os.DirEntry) (types.FileRecord, *types.SkipWarning, bool) {
	if !collector.Patterns.Selects(relativePath) {
		return types.FileRecord{}, nil, false
	}
	if collector.Ignore != nil && collector.Ignore.Match(absolutePath, false) {
		return types.FileRecord{}, nil, false
	}

	entryInformation, infoError := directoryEntry.Info()
	if infoError != nil {
		warning := skipWarning(relativePath, infoError)
		return types.FileRecord{}, &warning, false
	}
	if entryInformation.Size() > collector.MaxFileSize {
		return types.FileRecord{}, oversizedWarning(relativePath, entryInformation.Size(), collector.MaxFileSize), false
	}

	fileBytes, readError := os.ReadFile(absolutePath)
	if readError != nil {
		warning := skipWarning(relativePath, readError)
		return types.FileRecord{}, &warning, false
	}
	if int64(len(fileBytes)) > collector.MaxFileSize {
		return types.FileRecord{}, oversizedWarning(relativePath, int64(len(fileBytes)), collector.MaxFileSize), false
	}

	countResult, countError := tokenizer.CountBytes(counter, fileBytes)
	if countError != nil {
		return types.FileRecord{}, &types.SkipWarning{Path: relativePath, Reason: types.SkipReasonUnreadable, Err: countError}, false
	}
	if !countResult.Counted {
		return types.FileRecord{}, &types.SkipWarning{Path: relativePath, Reason: types.SkipReasonBinary}, false
	}

	return types.FileRecord{
		RelativePath: relativePath,
		AbsolutePath: absolutePath,
		SizeBytes:    int64(len(fileBytes)),
		Tokens:       countResult.Tokens,
		Included:     true,
	}, nil, true
}

func oversizedWarning(relativePath string, sizeBytes int64, maxFileSize int64) *types.SkipWarning {
	return &types.SkipWarning{
		Path:   relativePath,
		Reason: types.SkipReasonOversized,
		Err:    fmt.Errorf("%d bytes > %d bytes", sizeBytes, maxFileSize),
	}
}

// skipWarning classifies a filesystem error into a skip reason.
func skipWarning(relativePath string, err error) types.SkipWarning {
	reason := types.SkipReasonUnreadable
	switch {
	case errors.Is(err, fs.ErrPermission):
		reason = types.SkipReasonPermission
	case errors.Is(err, fs.ErrNotExist):
		reason = types.SkipReasonVanished
	}
	return types.SkipWarning{Path: relativePath, Reason: reason, Err: err}
}
