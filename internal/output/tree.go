// Package output renders collected files as text for the terminal and the clipboard.
package output

import (
	"strings"

	"github.com/temirov/code2clipboard/internal/types"
	"github.com/temirov/code2clipboard/internal/utils"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	directorySuffix       = "/"
	annotationSeparator   = " - "
	tokenAnnotationPrefix = "~"
	tokenAnnotationSuffix = " tokens"

	ansiDim   = "\033[2m"
	ansiReset = "\033[0m"
)

// TreeStyle controls decoration of the rendered tree.
type TreeStyle struct {
	// Dim wraps size and token annotations in ANSI dim sequences. Terminal output only.
	Dim bool
}

// RenderTree draws node and its descendants with box-drawing connectors. Each line carries the
// entry name followed by its size and token estimate. Lines are joined with "\n" and the result
// has no trailing newline.
func RenderTree(node *types.DirectoryNode, style TreeStyle) string {
	if node == nil {
		return ""
	}
	lines := []string{node.Name + directorySuffix + style.annotation(node.SizeBytes, node.Tokens)}
	lines = appendChildLines(lines, node, "", style)
	return strings.Join(lines, "\n")
}

func appendChildLines(lines []string, node *types.DirectoryNode, prefix string, style TreeStyle) []string {
	for index, child := range node.Children {
		linePrefix, childPrefix := treeNodeLinePrefix(prefix, index == len(node.Children)-1)
		switch {
		case child.Directory != nil:
			lines = append(lines, linePrefix+child.Name+directorySuffix+style.annotation(child.Directory.SizeBytes, child.Directory.Tokens))
			lines = appendChildLines(lines, child.Directory, childPrefix, style)
		case child.File != nil:
			lines = append(lines, linePrefix+child.Name+style.annotation(child.File.SizeBytes, child.File.Tokens))
		}
	}
	return lines
}

func treeNodeLinePrefix(prefix string, isLast bool) (string, string) {
	if isLast {
		return prefix + treeLastConnector, prefix + treeLastPadding
	}
	return prefix + treeBranchConnector, prefix + treeBranchPadding
}

func (style TreeStyle) annotation(sizeBytes int64, tokens int) string {
	text := utils.FormatFileSize(sizeBytes) + " " + tokenAnnotationPrefix + utils.FormatTokenCount(tokens) + tokenAnnotationSuffix
	if style.Dim {
		return annotationSeparator + ansiDim + text + ansiReset
	}
	return annotationSeparator + text
}
