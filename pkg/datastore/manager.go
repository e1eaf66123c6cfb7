package datastore

import (
	"github.com/arthur-debert/keepsake/pkg/errors"
)

// Manager binds a Storage and a Handle. Its value may diverge from the file
// between a ModifyUncommitted (or a change through GetMut) and the next
// Save; nothing is flushed implicitly.
type Manager[V Value] struct {
	storage Storage
	handle  *Handle[V]
}

// NewManager creates a handle for identifier and reads it, bootstrapping
// the default file when needed. A failed read returns no manager.
func NewManager[V Value](storage Storage, identifier string) (*Manager[V], error) {
	return FromHandle(storage, NewHandle[V](identifier))
}

// FromHandle reads an existing handle and wraps it.
func FromHandle[V Value](storage Storage, handle *Handle[V]) (*Manager[V], error) {
	if handle == nil {
		return nil, errors.New(errors.ErrInvalidInput, "handle must not be nil")
	}
	if err := storage.Read(handle); err != nil {
		return nil, err
	}
	return &Manager[V]{
		storage: storage,
		handle:  handle,
	}, nil
}

// Get returns a copy of the in-memory value.
func (m *Manager[V]) Get() V {
	return m.handle.Get()
}

// GetMut returns a pointer to the in-memory value. It persists nothing.
func (m *Manager[V]) GetMut() *V {
	return m.handle.GetMut()
}

// GetLive re-reads the file, discarding any uncommitted change, and returns
// the refreshed value. Use it to observe changes made outside this process.
func (m *Manager[V]) GetLive() (V, error) {
	if err := m.storage.Read(m.handle); err != nil {
		return m.handle.Get(), err
	}
	return m.handle.Get(), nil
}

// Modify applies change and saves. A failed save does not roll the change
// back: the value is then changed in memory but not on disk.
func (m *Manager[V]) Modify(change func(*V)) error {
	change(m.handle.GetMut())
	return m.Save()
}

// ModifyUncommitted applies change in memory only.
func (m *Manager[V]) ModifyUncommitted(change func(*V)) {
	change(m.handle.GetMut())
}

// Save writes the in-memory value to the file.
func (m *Manager[V]) Save() error {
	return m.storage.Write(m.handle)
}

// Identifier returns the handle's identifier.
func (m *Manager[V]) Identifier() string {
	return m.handle.Identifier()
}

// Handle returns the managed handle.
func (m *Manager[V]) Handle() *Handle[V] {
	return m.handle
}

// Storage returns the storage the manager reads from and writes to.
func (m *Manager[V]) Storage() Storage {
	return m.storage
}

// Path returns the file backing the manager.
func (m *Manager[V]) Path() (string, error) {
	return PathOf[V](m.storage, m.handle.Identifier())
}
