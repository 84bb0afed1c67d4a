package store

type StoreType string

const (
	InMemoryStore StoreType = "memory"
)

// Store is the storage abstraction shared by the machine registry,
// the job ledger and the event log.
type Store[K comparable, V any] interface {
	Put(key K, value V) error
	Get(key K) (V, error)
	List() ([]V, error)
	Count() (int, error)
}
