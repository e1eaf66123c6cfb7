// Package datastore persists a single typed value per file, routed by the
// value type's storage category.
//
// A value type opts in by declaring its category:
//
//	type Counter struct {
//		Count uint32 `toml:"count"`
//	}
//
//	func (Counter) Category() types.Category { return types.Data }
//
// Storage owns the three category roots and performs reads and writes.
// When the target file is missing, Storage first writes the type's default
// value (creating parent directories), then opens the file once more. A
// second miss, or any other failure, is returned to the caller.
//
// Handle pairs an identifier with an in-memory value and does no I/O.
// Manager binds a Storage and a Handle and offers two ways to change the
// value: Modify applies a change and saves it immediately, while
// ModifyUncommitted only changes memory until the next Save.
//
//	storage := datastore.New("com.example.app")
//	counter, err := datastore.NewManager[Counter](storage, "counter")
//	if err != nil {
//		return err
//	}
//	if err := counter.Modify(func(c *Counter) { c.Count++ }); err != nil {
//		return err
//	}
//
// Nothing here locks files. Two managers over the same identifier write
// whichever value they hold last.
package datastore
