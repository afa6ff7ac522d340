package memory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Cloud-Foundations/r53ddns/pkg/ddns"
)

func (b *Backend) delete(key string) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if _, ok := b.objects[key]; !ok {
		return fmt.Errorf("%s: %w", key, ddns.ErrNotFound)
	}
	delete(b.objects, key)
	return nil
}

func (b *Backend) get(key string) ([]byte, error) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	data, ok := b.objects[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ddns.ErrNotFound)
	}
	return append([]byte(nil), data...), nil
}

func (b *Backend) list(prefix string) []string {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	var keys []string
	for key := range b.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func (b *Backend) put(key string, data []byte) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.objects[key] = append([]byte(nil), data...)
}
