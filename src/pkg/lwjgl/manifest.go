package lwjgl

import "path"

// ManifestPaths flattens a files.json tree into the full list of relative
// file paths. Each key is a path segment; a mapping value is a subdirectory,
// any other value is a list of filenames directly under the current segment
// (the empty-string key holds the current directory's own files).
func ManifestPaths(tree map[string]interface{}) []string {
	var paths []string
	for segment, next := range tree {
		switch value := next.(type) {
		case map[string]interface{}:
			for _, file := range ManifestPaths(value) {
				paths = append(paths, path.Join(segment, file))
			}
		case []interface{}:
			for _, file := range value {
				if name, ok := file.(string); ok {
					paths = append(paths, path.Join(segment, name))
				}
			}
		}
	}
	return paths
}
