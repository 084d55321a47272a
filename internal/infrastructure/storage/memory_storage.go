package storage

import (
	"context"
	"sync"

	"github.com/yourusername/ecoswap-market/internal/domain/repository"
)

// MemoryStorage in-memory kalit-qiymat ombori (testlar va vaqtinchalik ishga tushirish uchun)
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]map[string][]byte // namespace -> key -> value
}

// NewMemoryStorage in-memory storage yaratish
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		values: make(map[string]map[string][]byte),
	}
}

// Namespace bitta namespace uchun ko'rinish
func (m *MemoryStorage) Namespace(name string) repository.LocalStorage {
	return &memoryNamespace{parent: m, name: name}
}

type memoryNamespace struct {
	parent *MemoryStorage
	name   string
}

// Get qiymatni olish
func (n *memoryNamespace) Get(ctx context.Context, key string) ([]byte, bool, error) {
	n.parent.mu.RLock()
	defer n.parent.mu.RUnlock()

	value, exists := n.parent.values[n.name][key]
	if !exists {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// Set qiymatni saqlash
func (n *memoryNamespace) Set(ctx context.Context, key string, value []byte) error {
	n.parent.mu.Lock()
	defer n.parent.mu.Unlock()

	ns, exists := n.parent.values[n.name]
	if !exists {
		ns = make(map[string][]byte)
		n.parent.values[n.name] = ns
	}
	ns[key] = append([]byte(nil), value...)
	return nil
}

// Delete qiymatni o'chirish
func (n *memoryNamespace) Delete(ctx context.Context, key string) error {
	n.parent.mu.Lock()
	defer n.parent.mu.Unlock()

	delete(n.parent.values[n.name], key)
	return nil
}
