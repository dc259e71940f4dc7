package runner

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// MockRunner implements Runner for testing. Executables are resolvable only
// after AddExecutable; commands succeed with empty output unless a response
// has been registered with OnRun.
type MockRunner struct {
	mu          sync.Mutex
	executables map[string]string
	responses   map[string]mockResponse
	calls       []Call
}

// Call records a single Run invocation
type Call struct {
	Dir  string
	Name string
	Args []string
}

// CommandLine returns the call as "name arg1 arg2"
func (c Call) CommandLine() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

type mockResponse struct {
	result *Result
	err    error
}

// NewMockRunner creates a new MockRunner with no executables on PATH
func NewMockRunner() *MockRunner {
	return &MockRunner{
		executables: make(map[string]string),
		responses:   make(map[string]mockResponse),
	}
}

// AddExecutable makes name resolvable through LookPath
func (m *MockRunner) AddExecutable(names ...string) *MockRunner {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range names {
		m.executables[name] = "/usr/bin/" + name
	}
	return m
}

// RemoveExecutable makes name unresolvable
func (m *MockRunner) RemoveExecutable(name string) *MockRunner {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.executables, name)
	return m
}

// OnRun registers the result for a command line such as "npm install zod".
// A prefix such as "npm" matches every npm invocation without a more specific entry.
func (m *MockRunner) OnRun(commandLine string, result *Result, err error) *MockRunner {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.responses[commandLine] = mockResponse{result: result, err: err}
	return m
}

// LookPath returns the registered path or exec.ErrNotFound
func (m *MockRunner) LookPath(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if path, ok := m.executables[name]; ok {
		return path, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// Run records the call and returns the registered response
func (m *MockRunner) Run(ctx context.Context, dir, name string, args ...string) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	call := Call{Dir: dir, Name: name, Args: append([]string(nil), args...)}
	m.calls = append(m.calls, call)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if resp, ok := m.lookup(call); ok {
		if resp.err != nil {
			return nil, resp.err
		}
		if resp.result != nil {
			copied := *resp.result
			return &copied, nil
		}
	}

	if _, ok := m.executables[name]; !ok {
		return nil, fmt.Errorf("failed to run %s: %w", name, &exec.Error{Name: name, Err: exec.ErrNotFound})
	}
	return &Result{}, nil
}

// lookup finds the longest registered command line that prefixes the call
func (m *MockRunner) lookup(call Call) (mockResponse, bool) {
	line := call.CommandLine()
	best := ""
	var found mockResponse
	for key, resp := range m.responses {
		if line == key || strings.HasPrefix(line, key+" ") {
			if len(key) > len(best) {
				best = key
				found = resp
			}
		}
	}
	return found, best != ""
}

// Calls returns every recorded Run invocation in order
func (m *MockRunner) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]Call(nil), m.calls...)
}

// CommandLines returns the recorded invocations as command lines
func (m *MockRunner) CommandLines() []string {
	calls := m.Calls()
	lines := make([]string, 0, len(calls))
	for _, c := range calls {
		lines = append(lines, c.CommandLine())
	}
	return lines
}
