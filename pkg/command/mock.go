package command

import "context"

// MockExecutor is an Executor implementation for tests. Calls records the
// name and arguments of every Run invocation in order.
type MockExecutor struct {
	LookPathFunc   func(file string) (string, error)
	RunFunc        func(ctx context.Context, name string, args ...string) (string, error)
	FileExistsFunc func(path string) bool

	Calls [][]string
}

func (m *MockExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}

func (m *MockExecutor) Run(ctx context.Context, name string, args ...string) (string, error) {
	m.Calls = append(m.Calls, append([]string{name}, args...))
	if m.RunFunc != nil {
		return m.RunFunc(ctx, name, args...)
	}
	return "", nil
}

func (m *MockExecutor) FileExists(path string) bool {
	if m.FileExistsFunc != nil {
		return m.FileExistsFunc(path)
	}
	return true
}
