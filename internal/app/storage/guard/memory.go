package guard

import (
	"context"
	"sync"

	err_storage "github.com/avGenie/go-checkout-system/internal/app/storage/api/errors"
)

// Memory allows one holder per key within a single process.
type Memory struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{
		held: make(map[string]struct{}),
	}
}

func (m *Memory) Acquire(_ context.Context, key string) (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.held[key]; ok {
		return nil, err_storage.ErrSubmissionLocked
	}
	m.held[key] = struct{}{}

	var once sync.Once
	release := func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.held, key)
			m.mu.Unlock()
		})
	}

	return release, nil
}
