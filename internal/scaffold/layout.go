package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	gitignore "github.com/denormal/go-gitignore"

	"github.com/jakoblorz/go-mcpc/internal/filesystem"
)

// Entry is one path of a generated project tree
type Entry struct {
	// Path is relative to the project root, slash separated
	Path    string
	IsDir   bool
	Ignored bool
}

// Layout lists the tree under root. Paths matched by root/.gitignore are
// reported as ignored and not descended into; .git is left out entirely.
func Layout(fsys filesystem.FileSystem, root string) ([]Entry, error) {
	ignore, err := loadGitIgnore(fsys, root)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	err = fsys.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() && d.Name() == ".git" {
			return filepath.SkipDir
		}

		entry := Entry{Path: rel, IsDir: d.IsDir()}
		if ignore != nil {
			if match := ignore.Relative(rel, d.IsDir()); match != nil && match.Ignore() {
				entry.Ignored = true
			}
		}
		entries = append(entries, entry)

		if entry.Ignored && d.IsDir() {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

func loadGitIgnore(fsys filesystem.FileSystem, root string) (gitignore.GitIgnore, error) {
	ignorePath := filepath.Join(root, ".gitignore")
	if !fsys.Exists(ignorePath) {
		return nil, nil
	}

	data, err := fsys.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	return gitignore.New(bytes.NewReader(data), root, nil), nil
}
