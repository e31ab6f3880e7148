package commands

import (
	"sort"
	"strings"

	"github.com/temirov/code2clipboard/internal/types"
)

// BuildDirectoryTree groups records by their relative paths into a DirectoryNode hierarchy
// named rootName. Only directories that contain at least one record are created, and every
// directory aggregates the size and tokens of its descendants.
func BuildDirectoryTree(rootName string, records []types.FileRecord) *types.DirectoryNode {
	rootNode := &types.DirectoryNode{Name: rootName}
	directoryIndex := map[string]*types.DirectoryNode{"": rootNode}

	for recordIndex := range records {
		record := records[recordIndex]
		pathSegments := strings.Split(record.RelativePath, "/")
		parentNode := rootNode
		parentPath := ""
		for _, directoryName := range pathSegments[:len(pathSegments)-1] {
			directoryPath := joinRelative(parentPath, directoryName)
			directoryNode, exists := directoryIndex[directoryPath]
			if !exists {
				directoryNode = &types.DirectoryNode{Name: directoryName, RelativePath: directoryPath}
				directoryIndex[directoryPath] = directoryNode
				parentNode.Children = append(parentNode.Children, types.TreeEntry{Name: directoryName, Directory: directoryNode})
			}
			parentNode.SizeBytes += record.SizeBytes
			parentNode.Tokens += record.Tokens
			parentNode = directoryNode
			parentPath = directoryPath
		}
		parentNode.SizeBytes += record.SizeBytes
		parentNode.Tokens += record.Tokens
		fileName := pathSegments[len(pathSegments)-1]
		parentNode.Children = append(parentNode.Children, types.TreeEntry{Name: fileName, File: &record})
	}

	sortDirectoryChildren(rootNode)
	return rootNode
}

func joinRelative(parentPath string, name string) string {
	if parentPath == "" {
		return name
	}
	return parentPath + "/" + name
}

func sortDirectoryChildren(node *types.DirectoryNode) {
	sort.SliceStable(node.Children, func(leftIndex, rightIndex int) bool {
		return node.Children[leftIndex].Name < node.Children[rightIndex].Name
	})
	for _, child := range node.Children {
		if child.Directory != nil {
			sortDirectoryChildren(child.Directory)
		}
	}
}
