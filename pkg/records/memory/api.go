/*
Package memory implements an in-process records.Backend. Contents are lost
when the process exits.
*/
package memory

import (
	"context"
	"sync"
)

type Backend struct {
	mutex   sync.RWMutex
	objects map[string][]byte
}

func New() *Backend {
	return &Backend{objects: make(map[string][]byte)}
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	return b.delete(key)
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	return b.get(key)
}

// List returns the keys with the specified prefix, in lexical order.
func (b *Backend) List(ctx context.Context, prefix string) ([]string, error) {
	return b.list(prefix), nil
}

func (b *Backend) Put(ctx context.Context, key string, data []byte) error {
	b.put(key, data)
	return nil
}
