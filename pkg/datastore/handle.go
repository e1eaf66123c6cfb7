package datastore

import (
	"fmt"

	"github.com/arthur-debert/keepsake/pkg/codec"
	"github.com/arthur-debert/keepsake/pkg/types"
)

// Entry is what Storage reads into and writes from. *Handle[V] is the only
// implementation.
type Entry interface {
	Identifier() string
	Category() types.Category

	decode(c codec.Codec, data []byte) error
	encode(c codec.Codec) ([]byte, error)
	encodeDefault(c codec.Codec) ([]byte, error)
}

// Handle pairs an identifier with an in-memory value. It performs no I/O;
// pass it to Storage.Read or Storage.Write to synchronise with disk.
type Handle[V Value] struct {
	identifier string
	value      V
}

// NewHandle returns a handle holding the default value of V.
func NewHandle[V Value](identifier string) *Handle[V] {
	return &Handle[V]{
		identifier: identifier,
		value:      Default[V](),
	}
}

// Get returns a copy of the value.
func (h *Handle[V]) Get() V {
	return h.value
}

// GetMut returns a pointer to the value. Changes are not persisted until the
// handle is written.
func (h *Handle[V]) GetMut() *V {
	return &h.value
}

// Identifier names the file within the category root.
func (h *Handle[V]) Identifier() string {
	return h.identifier
}

// Category returns the category of V.
func (h *Handle[V]) Category() types.Category {
	return CategoryOf[V]()
}

func (h *Handle[V]) String() string {
	return fmt.Sprintf("%s/%s: %+v", h.Category(), h.identifier, h.value)
}

func (h *Handle[V]) set(v V) {
	h.value = v
}

// decode replaces the value only when data decodes cleanly. It decodes into
// a zero V: the file alone determines the value, so a map entry removed from
// a default stays removed.
func (h *Handle[V]) decode(c codec.Codec, data []byte) error {
	var v V
	if err := c.Unmarshal(data, &v); err != nil {
		return err
	}
	h.set(v)
	return nil
}

func (h *Handle[V]) encode(c codec.Codec) ([]byte, error) {
	return c.Marshal(h.value)
}

func (h *Handle[V]) encodeDefault(c codec.Codec) ([]byte, error) {
	return c.Marshal(Default[V]())
}
