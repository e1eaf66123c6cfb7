package types

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/keepsake/pkg/errors"
)

// Category selects which base directory a value type's file lives under.
type Category int

const (
	// CategoryUnknown is the zero value and never resolves to a directory.
	CategoryUnknown Category = iota
	Cache
	Data
	Config
)

// Categories lists every valid category in a stable order.
var Categories = []Category{Cache, Data, Config}

func (c Category) String() string {
	switch c {
	case Cache:
		return "cache"
	case Data:
		return "data"
	case Config:
		return "config"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Valid reports whether c is one of Cache, Data or Config.
func (c Category) Valid() bool {
	return c == Cache || c == Data || c == Config
}

// ParseCategory converts a case-insensitive name into a Category.
func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cache":
		return Cache, nil
	case "data":
		return Data, nil
	case "config":
		return Config, nil
	}
	return CategoryUnknown, errors.Newf(errors.ErrInvalidInput, "unknown category %q (want cache, data or config)", name)
}
