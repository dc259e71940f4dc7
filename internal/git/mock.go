package git

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/jakoblorz/go-mcpc/internal/filesystem"
)

// MockGitClient implements GitClient for testing
type MockGitClient struct {
	mu    sync.RWMutex
	repos map[string]bool // key: cleaned repository root
	inits []string
	fs    filesystem.FileSystem
	ctx   context.Context

	// Hooks for testing error scenarios
	InitError   error
	IsRepoError error
}

// NewMockGitClient creates a new MockGitClient
func NewMockGitClient() *MockGitClient {
	return &MockGitClient{
		repos: make(map[string]bool),
		ctx:   context.Background(),
	}
}

// WithFileSystem makes Init create a .git directory in fs, so repository
// layout checks see the same tree a real init would leave behind.
func (m *MockGitClient) WithFileSystem(fs filesystem.FileSystem) *MockGitClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fs = fs
	return m
}

// WithContext returns the same mock; cancellation is simulated through InitError
func (m *MockGitClient) WithContext(ctx context.Context) GitClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctx = ctx
	return m
}

// Init records a repository at dir
func (m *MockGitClient) Init(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.InitError != nil {
		return m.InitError
	}
	if err := m.ctx.Err(); err != nil {
		return fmt.Errorf("failed to initialize git repository: %w", err)
	}

	dir = filepath.Clean(dir)
	if m.fs != nil {
		if err := m.fs.MkdirAll(filepath.Join(dir, ".git"), 0755); err != nil {
			return fmt.Errorf("failed to initialize git repository: %w", err)
		}
	}
	m.repos[dir] = true
	m.inits = append(m.inits, dir)
	return nil
}

// IsRepo reports whether dir or one of its parents was initialised
func (m *MockGitClient) IsRepo(dir string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.IsRepoError != nil {
		return false, m.IsRepoError
	}

	dir = filepath.Clean(dir)
	for {
		if m.repos[dir] {
			return true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false, nil
		}
		dir = parent
	}
}

// AddRepo marks dir as an existing repository
func (m *MockGitClient) AddRepo(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.repos[filepath.Clean(dir)] = true
}

// Inits returns the directories Init succeeded for, in call order
func (m *MockGitClient) Inits() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.inits))
	copy(out, m.inits)
	return out
}
