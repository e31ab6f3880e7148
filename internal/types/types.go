// Package types defines every cross‑package data structure used by the code2clipboard CLI.
package types

import "errors"

// OutputMode selects which artifacts a run produces.
type OutputMode string

const (
	// OutputModeMergeTree renders the tree and merges file contents (default).
	OutputModeMergeTree OutputMode = "merge+tree"
	// OutputModeTree renders only the tree.
	OutputModeTree OutputMode = "tree"
	// OutputModeTokens reports only the total token estimate.
	OutputModeTokens OutputMode = "tokens"

	// DefaultMaxFileSize is the largest file, in bytes, selected by default.
	DefaultMaxFileSize int64 = 20480
)

// ErrInvalidRoot reports a root path that is missing, unreadable, or not a directory.
var ErrInvalidRoot = errors.New("invalid root path")

// Configuration holds the validated options of a single run.
type Configuration struct {
	IncludePatterns []string
	ExcludePatterns []string
	MaxFileSize     int64
	IncludeHidden   bool
	Mode            OutputMode
	UseGitignore    bool
	TokenModel      string
	// ReportTokens prints the token total before the merge+tree output.
	ReportTokens bool
}

// DefaultConfiguration returns the configuration used when no flags are given.
func DefaultConfiguration() Configuration {
	return Configuration{
		MaxFileSize:  DefaultMaxFileSize,
		Mode:         OutputModeMergeTree,
		UseGitignore: true,
	}
}

// FileRecord describes one file that passed the selection policy.
type FileRecord struct {
	RelativePath string
	AbsolutePath string
	SizeBytes    int64
	Tokens       int
	Included     bool
}

// SkipReason classifies why an entry was left out of a run.
type SkipReason string

const (
	SkipReasonPermission SkipReason = "permission denied"
	SkipReasonVanished   SkipReason = "vanished"
	SkipReasonOversized  SkipReason = "exceeds size limit"
	SkipReasonBinary     SkipReason = "binary content"
	SkipReasonUnreadable SkipReason = "unreadable"
	SkipReasonPattern    SkipReason = "malformed pattern"
)

// SkipWarning is a non-fatal problem encountered while processing one entry.
type SkipWarning struct {
	Path   string
	Reason SkipReason
	Err    error
}

// Message renders the warning for the diagnostic stream.
func (warning SkipWarning) Message() string {
	if warning.Err != nil {
		return "skipping " + warning.Path + " (" + string(warning.Reason) + "): " + warning.Err.Error()
	}
	return "skipping " + warning.Path + " (" + string(warning.Reason) + ")"
}

// Collection is the result of one directory walk.
type Collection struct {
	RootPath string
	RootName string
	Records  []FileRecord
	Warnings []SkipWarning
}

// TotalTokens sums the token estimates of every record.
func (collection Collection) TotalTokens() int {
	total := 0
	for _, record := range collection.Records {
		total += record.Tokens
	}
	return total
}

// TotalBytes sums the sizes of every record.
func (collection Collection) TotalBytes() int64 {
	var total int64
	for _, record := range collection.Records {
		total += record.SizeBytes
	}
	return total
}

// DirectoryNode is one directory level of the rendered tree.
type DirectoryNode struct {
	Name         string
	RelativePath string
	Children     []TreeEntry
	SizeBytes    int64
	Tokens       int
}

// TreeEntry is a child of a DirectoryNode; exactly one of File or Directory is set.
type TreeEntry struct {
	Name      string
	File      *FileRecord
	Directory *DirectoryNode
}

// MergedEntry is one (header, content) pair of the merged output.
type MergedEntry struct {
	Header  string
	Content string
}
