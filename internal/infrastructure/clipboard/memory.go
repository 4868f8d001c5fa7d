package clipboard

import (
	"context"
	"sync"

	"github.com/bnema/linekeys/internal/application/port"
)

// Memory is an in-process clipboard. The playground uses it when no system
// clipboard is reachable, and tests use it everywhere.
type Memory struct {
	mu   sync.Mutex
	text string
	// Err, when set, is returned by every call.
	Err error
}

// NewMemory creates a clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

func (m *Memory) WriteText(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	return nil
}

func (m *Memory) ReadText(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	return m.text, nil
}

func (m *Memory) Clear(ctx context.Context) error {
	return m.WriteText(ctx, "")
}

func (m *Memory) HasText(ctx context.Context) (bool, error) {
	text, err := m.ReadText(ctx)
	return text != "", err
}

var _ port.Clipboard = (*Memory)(nil)
