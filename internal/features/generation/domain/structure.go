package domain

import "strings"

// BuildStructure turns a flat file list into a nested directory overview.
// Leaves map a file name to its FileType.
func BuildStructure(files []GeneratedFile) map[string]any {
	root := make(map[string]any)
	for _, f := range files {
		parts := strings.Split(f.Path, "/")
		node := root
		for _, dir := range parts[:len(parts)-1] {
			child, ok := node[dir].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[dir] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = string(f.FileType)
	}
	return root
}
