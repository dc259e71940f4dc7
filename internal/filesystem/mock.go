package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MockFileSystem provides in-memory filesystem for testing
type MockFileSystem struct {
	files      map[string]*MockFile
	currentDir string

	// Hooks for testing error scenarios, keyed by cleaned path
	WriteFileErrors map[string]error
	MkdirErrors     map[string]error
	ChmodErrors     map[string]error
}

// MockFile represents a file in the mock filesystem
type MockFile struct {
	Content []byte
	Mode    fs.FileMode
	ModTime time.Time
	IsDir   bool
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

// mockDirEntry implements fs.DirEntry
type mockDirEntry struct {
	info fs.FileInfo
}

func (m *mockDirEntry) Name() string               { return m.info.Name() }
func (m *mockDirEntry) IsDir() bool                { return m.info.IsDir() }
func (m *mockDirEntry) Type() fs.FileMode          { return m.info.Mode().Type() }
func (m *mockDirEntry) Info() (fs.FileInfo, error) { return m.info, nil }

// NewMockFileSystem creates a new MockFileSystem with /workspace as working directory
func NewMockFileSystem() *MockFileSystem {
	mfs := &MockFileSystem{
		files:           make(map[string]*MockFile),
		currentDir:      "/workspace",
		WriteFileErrors: make(map[string]error),
		MkdirErrors:     make(map[string]error),
		ChmodErrors:     make(map[string]error),
	}
	mfs.AddDir(mfs.currentDir)
	return mfs
}

// AddFile adds a file to the mock filesystem
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	cleanPath := filepath.Clean(path)
	mfs.files[cleanPath] = &MockFile{
		Content: content,
		Mode:    0644,
		ModTime: time.Now(),
		IsDir:   false,
	}
	mfs.addParents(cleanPath)
}

// AddDir adds a directory to the mock filesystem
func (mfs *MockFileSystem) AddDir(path string) {
	cleanPath := filepath.Clean(path)
	if _, exists := mfs.files[cleanPath]; !exists {
		mfs.files[cleanPath] = &MockFile{
			Mode:    0755 | fs.ModeDir,
			ModTime: time.Now(),
			IsDir:   true,
		}
	}
	mfs.addParents(cleanPath)
}

func (mfs *MockFileSystem) addParents(cleanPath string) {
	dir := filepath.Dir(cleanPath)
	for dir != "." && dir != "/" && dir != cleanPath {
		if _, exists := mfs.files[dir]; !exists {
			mfs.files[dir] = &MockFile{
				Mode:    0755 | fs.ModeDir,
				ModTime: time.Now(),
				IsDir:   true,
			}
		}
		dir = filepath.Dir(dir)
	}
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	file, exists := mfs.files[filepath.Clean(path)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if file.IsDir {
		return nil, &fs.PathError{Op: "read", Path: path, Err: errors.New("is a directory")}
	}
	return file.Content, nil
}

func (mfs *MockFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	cleanPath := filepath.Clean(path)
	if err := mfs.WriteFileErrors[cleanPath]; err != nil {
		return &fs.PathError{Op: "open", Path: path, Err: err}
	}

	// Ensure parent directory exists
	dir := filepath.Dir(cleanPath)
	if dir != "." && dir != "/" {
		parent, exists := mfs.files[dir]
		if !exists {
			return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
		}
		if !parent.IsDir {
			return &fs.PathError{Op: "open", Path: path, Err: errors.New("not a directory")}
		}
	}
	if existing, exists := mfs.files[cleanPath]; exists && existing.IsDir {
		return &fs.PathError{Op: "open", Path: path, Err: errors.New("is a directory")}
	}

	mfs.files[cleanPath] = &MockFile{
		Content: data,
		Mode:    perm,
		ModTime: time.Now(),
		IsDir:   false,
	}
	return nil
}

func (mfs *MockFileSystem) Chmod(path string, perm fs.FileMode) error {
	cleanPath := filepath.Clean(path)
	if err := mfs.ChmodErrors[cleanPath]; err != nil {
		return &fs.PathError{Op: "chmod", Path: path, Err: err}
	}

	file, exists := mfs.files[cleanPath]
	if !exists {
		return &fs.PathError{Op: "chmod", Path: path, Err: fs.ErrNotExist}
	}
	file.Mode = file.Mode.Type() | perm.Perm()
	return nil
}

func (mfs *MockFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	cleanPath := filepath.Clean(path)

	file, exists := mfs.files[cleanPath]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if !file.IsDir {
		return nil, &fs.PathError{Op: "readdirent", Path: path, Err: errors.New("not a directory")}
	}

	var entries []fs.DirEntry
	for p, f := range mfs.files {
		if p == cleanPath {
			continue
		}
		if filepath.Dir(p) == cleanPath {
			entries = append(entries, &mockDirEntry{info: newMockFileInfo(p, f)})
		}
	}

	// Sort entries by name for consistent ordering
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	return entries, nil
}

func (mfs *MockFileSystem) Mkdir(path string, perm fs.FileMode) error {
	cleanPath := filepath.Clean(path)
	if err := mfs.MkdirErrors[cleanPath]; err != nil {
		return &fs.PathError{Op: "mkdir", Path: path, Err: err}
	}
	if _, exists := mfs.files[cleanPath]; exists {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
	}

	dir := filepath.Dir(cleanPath)
	if dir != "." && dir != "/" {
		parent, exists := mfs.files[dir]
		if !exists {
			return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrNotExist}
		}
		if !parent.IsDir {
			return &fs.PathError{Op: "mkdir", Path: path, Err: errors.New("not a directory")}
		}
	}

	mfs.files[cleanPath] = &MockFile{
		Mode:    perm | fs.ModeDir,
		ModTime: time.Now(),
		IsDir:   true,
	}
	return nil
}

func (mfs *MockFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	cleanPath := filepath.Clean(path)
	if err := mfs.MkdirErrors[cleanPath]; err != nil {
		return &fs.PathError{Op: "mkdir", Path: path, Err: err}
	}

	parts := strings.Split(cleanPath, string(filepath.Separator))

	current := ""
	for _, part := range parts {
		if part == "" {
			continue
		}
		if current == "" {
			current = string(filepath.Separator) + part
		} else {
			current = filepath.Join(current, part)
		}

		existing, exists := mfs.files[current]
		if !exists {
			mfs.files[current] = &MockFile{
				Mode:    perm | fs.ModeDir,
				ModTime: time.Now(),
				IsDir:   true,
			}
			continue
		}
		if !existing.IsDir {
			return &fs.PathError{Op: "mkdir", Path: current, Err: errors.New("not a directory")}
		}
	}
	return nil
}

func (mfs *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	cleanPath := filepath.Clean(path)
	file, exists := mfs.files[cleanPath]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return newMockFileInfo(cleanPath, file), nil
}

func (mfs *MockFileSystem) Exists(path string) bool {
	_, exists := mfs.files[filepath.Clean(path)]
	return exists
}

func (mfs *MockFileSystem) Getwd() (string, error) {
	return mfs.currentDir, nil
}

// WalkDir visits root and everything below it in lexical order.
// Returning fs.SkipDir from fn for a directory skips its contents.
func (mfs *MockFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	cleanRoot := filepath.Clean(root)

	if _, exists := mfs.files[cleanRoot]; !exists {
		return fn(root, nil, &fs.PathError{Op: "lstat", Path: root, Err: fs.ErrNotExist})
	}

	// Collect all paths that are under root
	var paths []string
	for p := range mfs.files {
		if p == cleanRoot || strings.HasPrefix(p, cleanRoot+string(filepath.Separator)) {
			paths = append(paths, p)
		}
	}

	// Sort paths for consistent ordering
	sort.Strings(paths)

	var skipped []string
	for _, p := range paths {
		if underAny(p, skipped) {
			continue
		}

		file := mfs.files[p]
		entry := &mockDirEntry{info: newMockFileInfo(p, file)}

		if err := fn(p, entry, nil); err != nil {
			if errors.Is(err, fs.SkipDir) {
				if file.IsDir {
					skipped = append(skipped, p)
					continue
				}
				// SkipDir on a file skips the rest of its directory
				skipped = append(skipped, filepath.Dir(p))
				continue
			}
			if errors.Is(err, fs.SkipAll) {
				return nil
			}
			return err
		}
	}

	return nil
}

func underAny(p string, dirs []string) bool {
	for _, d := range dirs {
		if strings.HasPrefix(p, d+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func newMockFileInfo(p string, f *MockFile) *mockFileInfo {
	return &mockFileInfo{
		name:    filepath.Base(p),
		size:    int64(len(f.Content)),
		mode:    f.Mode,
		modTime: f.ModTime,
		isDir:   f.IsDir,
	}
}

// SetCurrentDir sets the current working directory for the mock
func (mfs *MockFileSystem) SetCurrentDir(dir string) {
	mfs.currentDir = filepath.Clean(dir)
	mfs.AddDir(mfs.currentDir)
}

// GetFiles returns all entries in the mock filesystem
func (mfs *MockFileSystem) GetFiles() map[string]*MockFile {
	return mfs.files
}
