// Package filesystem serves a documentation corpus from a local
// directory tree.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.WatchableSource = (*Connector)(nil)

// Connector reads documentation files beneath a root directory.
// Document identifiers are slash-separated paths relative to the root.
type Connector struct {
	root       string
	extensions []string
	watcher    *watcher
}

// New creates a filesystem connector rooted at root. Only files with
// one of the given extensions are visible.
func New(root string, extensions []string) *Connector {
	return &Connector{root: root, extensions: extensions}
}

// Type returns the source type identifier.
func (c *Connector) Type() string {
	return "filesystem"
}

// List walks the tree and enumerates every matching document.
// Hidden directories are skipped.
func (c *Connector) List(ctx context.Context) ([]domain.DocumentRef, error) {
	var refs []domain.DocumentRef
	err := filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() {
			if path != c.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !c.allowed(path) {
			return nil
		}
		rel, err := filepath.Rel(c.root, path)
		if err != nil {
			return err
		}
		id := filepath.ToSlash(rel)
		refs = append(refs, domain.DocumentRef{
			ID:      id,
			URI:     path,
			DocType: domain.DocTypeForPath(path),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", c.root, err)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })
	return refs, nil
}

// Exists reports whether the identifier resolves to a readable file.
func (c *Connector) Exists(_ context.Context, id string) (bool, error) {
	info, err := os.Stat(c.resolve(id))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// Read loads one document, resolving its encoding.
func (c *Connector) Read(_ context.Context, id string) (*domain.RawDocument, error) {
	path := c.resolve(id)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
		}
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a file", domain.ErrInvalidInput, id)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", id, err)
	}
	content, encoding := decode(data)

	return &domain.RawDocument{
		ID:           id,
		URI:          path,
		DocType:      domain.DocTypeForPath(path),
		Content:      content,
		SizeBytes:    info.Size(),
		LastModified: info.ModTime(),
		Encoding:     encoding,
	}, nil
}

// Structure summarises the corpus: per top-level directory the file
// count, size and extension breakdown, plus any top-level files.
func (c *Connector) Structure(ctx context.Context) (*domain.DocStructure, error) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.root, err)
	}

	structure := &domain.DocStructure{
		Directories: make(map[string]domain.DirectoryInfo),
	}
	var totalSize int64

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if entry.IsDir() {
			info, size, err := c.scanDirectory(filepath.Join(c.root, name))
			if err != nil {
				return nil, err
			}
			if info.FileCount == 0 {
				continue
			}
			structure.Directories[name] = info
			structure.Metadata.TotalDirectories++
			totalSize += size
			continue
		}
		if !c.allowed(name) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		structure.Files = append(structure.Files, domain.FileInfo{
			Name:         name,
			SizeKB:       roundKB(fi.Size()),
			Extension:    filepath.Ext(name),
			LastModified: fi.ModTime(),
		})
		structure.Metadata.TotalFiles++
		totalSize += fi.Size()
	}

	sort.Slice(structure.Files, func(i, j int) bool {
		return structure.Files[i].Name < structure.Files[j].Name
	})
	structure.Metadata.TotalSizeMB = float64(totalSize*100/(1024*1024)) / 100
	return structure, nil
}

func (c *Connector) scanDirectory(dir string) (domain.DirectoryInfo, int64, error) {
	info := domain.DirectoryInfo{Extensions: make(map[string]int)}
	var size int64
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !c.allowed(path) {
			return nil
		}
		info.FileCount++
		info.Extensions[filepath.Ext(path)]++
		if fi, err := d.Info(); err == nil {
			size += fi.Size()
		}
		return nil
	})
	if err != nil {
		return info, 0, fmt.Errorf("scanning %s: %w", dir, err)
	}
	info.SizeKB = roundKB(size)
	return info, size, nil
}

// Close stops any active watcher.
func (c *Connector) Close() error {
	if c.watcher != nil {
		return c.watcher.close()
	}
	return nil
}

func (c *Connector) allowed(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range c.extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (c *Connector) resolve(id string) string {
	return filepath.Join(c.root, filepath.FromSlash(id))
}

func roundKB(bytes int64) float64 {
	return float64(bytes*100/1024) / 100
}
