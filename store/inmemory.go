package store

import "fmt"

// InMemory is a map-backed Store. It does no locking of its own;
// callers serialize access.
type InMemory[K comparable, V any] struct {
	Db map[K]V
}

func NewInMemory[K comparable, V any]() *InMemory[K, V] {
	return &InMemory[K, V]{
		Db: make(map[K]V),
	}
}

func (i *InMemory[K, V]) Put(key K, value V) error {
	i.Db[key] = value
	return nil
}

func (i *InMemory[K, V]) Get(key K) (V, error) {
	v, ok := i.Db[key]
	if !ok {
		var zero V
		return zero, fmt.Errorf("record with key %v does not exist", key)
	}
	return v, nil
}

func (i *InMemory[K, V]) List() ([]V, error) {
	values := make([]V, 0, len(i.Db))
	for _, v := range i.Db {
		values = append(values, v)
	}
	return values, nil
}

func (i *InMemory[K, V]) Count() (int, error) {
	return len(i.Db), nil
}
