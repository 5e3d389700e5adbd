package testutil

import "github.com/AntonioJCosta/kzsh/internal/core/ports"

// MockHistoryStore is an in-memory ports.HistoryStore with injectable errors.
type MockHistoryStore struct {
	Lines     []string
	AppendErr error
	RecentErr error
	Closed    bool
}

// Append stores line unless AppendErr is set.
func (m *MockHistoryStore) Append(line string) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Lines = append(m.Lines, line)
	return nil
}

// Recent returns the newest limit lines, oldest first.
func (m *MockHistoryStore) Recent(limit int) ([]string, error) {
	if m.RecentErr != nil {
		return nil, m.RecentErr
	}
	if limit >= len(m.Lines) {
		return append([]string(nil), m.Lines...), nil
	}
	return append([]string(nil), m.Lines[len(m.Lines)-limit:]...), nil
}

// Close marks the store closed.
func (m *MockHistoryStore) Close() error {
	m.Closed = true
	return nil
}

var _ ports.HistoryStore = (*MockHistoryStore)(nil)
