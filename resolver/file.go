package resolver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// readFile reads path, mapping a missing file to ErrNotFound.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}

// Files reads identifiers as filesystem paths. Relative paths are joined
// to Root when it is set.
type Files struct {
	Root string
}

// Resolve returns the contents of the file named by identifier, or
// ErrNotFound when there is no regular file there.
func (f Files) Resolve(ctx context.Context, identifier string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := identifier
	if f.Root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(f.Root, path)
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, ErrNotFound
	}

	return readFile(path)
}

// recordExts are tried in order by DirStore.Get.
var recordExts = []string{".json", ".yaml", ".yml"}

// DirStore keeps one record file per key in a directory. File names are
// matched against keys without regard to case.
type DirStore struct {
	dir string
}

// NewDirStore returns a DirStore rooted at dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Get implements Store.
func (d *DirStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, ext := range recordExts {
		data, err := readFile(filepath.Join(d.dir, key+ext))
		if errors.Is(err, ErrNotFound) {
			continue
		}

		return data, err
	}
	if name, ok := d.match(key); ok {
		return readFile(filepath.Join(d.dir, name))
	}

	return nil, ErrNotFound
}

// match finds a record file whose name equals key+ext ignoring case, so
// "AW-200.json" answers the normalised key "aw-200". Extensions are tried
// in recordExts order.
func (d *DirStore) match(key string) (string, bool) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return "", false
	}
	for _, ext := range recordExts {
		for _, e := range entries {
			if e.Type().IsRegular() && strings.EqualFold(e.Name(), key+ext) {
				return e.Name(), true
			}
		}
	}

	return "", false
}

// Put implements Store. Records are written as <key>.json.
func (d *DirStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", d.dir, err)
	}

	return os.WriteFile(filepath.Join(d.dir, key+".json"), data, 0o644)
}
