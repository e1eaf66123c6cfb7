package datastore

import "github.com/arthur-debert/keepsake/pkg/types"

// Value is implemented by every type that can be persisted. Category is
// called on the zero value, so it must not depend on fields: the category
// is a property of the type. Values should be plain structs (not pointers)
// whose fields the configured codec can encode.
type Value interface {
	Category() types.Category
}

// Defaulter lets a value type supply defaults other than its zero value.
// It is implemented on the pointer receiver.
type Defaulter interface {
	SetDefaults()
}

// Default returns the default value of V.
func Default[V Value]() V {
	var v V
	if d, ok := any(&v).(Defaulter); ok {
		d.SetDefaults()
	}
	return v
}

// CategoryOf returns the category V is stored under.
func CategoryOf[V Value]() types.Category {
	var v V
	return v.Category()
}
