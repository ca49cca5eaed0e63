package ir

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

var schemaExtensions = map[string]bool{".graphql": true, ".graphqls": true, ".gql": true}

// FileSystemDiscovery reads SDL from files and from directories walked
// recursively. Paths are returned sorted so that declaration order does not
// depend on the file system.
type FileSystemDiscovery struct {
	paths []string
}

func NewFileSystemDiscovery(ctx context.Context, roots ...string) (*FileSystemDiscovery, error) {
	if len(roots) == 0 {
		return nil, fmt.Errorf("no schema paths given")
	}
	seen := map[string]bool{}
	var paths []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to stat schema path %q: %w", root, err)
		}
		if !info.IsDir() {
			if !seen[root] {
				seen[root] = true
				paths = append(paths, root)
			}
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !schemaExtensions[filepath.Ext(d.Name())] || seen[path] {
				return nil
			}
			seen[path] = true
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk schema directory %q: %w", root, err)
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no schema files found in %v", roots)
	}
	sort.Strings(paths)
	return &FileSystemDiscovery{paths: paths}, nil
}

func (d *FileSystemDiscovery) ListSources(ctx context.Context) ([]Source, error) {
	sources := make([]Source, 0, len(d.paths))
	for _, p := range d.paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %q: %w", p, err)
		}
		sources = append(sources, Source{Name: p, Content: string(content)})
	}
	return sources, nil
}

// Load is a convenience function that discovers files under paths and
// builds the document.
func Load(ctx context.Context, paths ...string) (*Document, error) {
	disc, err := NewFileSystemDiscovery(ctx, paths...)
	if err != nil {
		return nil, err
	}
	return Build(ctx, disc)
}
