package store

import "slices"

// Collection is an ordered list document persisted under a single key.
// Every mutator updates memory and writes the whole list back before it
// returns, so a reload always observes every completed mutation.
type Collection[T any] struct {
	kv    *KV
	key   string
	items []T

	// normalize repairs a decoded item in place; nil means accept as is.
	normalize func(*T)
}

func newCollection[T any](kv *KV, key string, normalize func(*T)) *Collection[T] {
	return &Collection[T]{kv: kv, key: key, items: []T{}, normalize: normalize}
}

// Load replaces the in-memory list with the stored one. A missing key or a
// value that is not a list of T resets the document to empty and persists it.
func (c *Collection[T]) Load() {
	var items []T
	if !c.kv.Get(c.key, &items) {
		c.items = []T{}
		c.save()
		return
	}
	if c.normalize != nil {
		for i := range items {
			c.normalize(&items[i])
		}
	}
	c.items = items
}

func (c *Collection[T]) save() {
	c.kv.Set(c.key, c.items)
}

func (c *Collection[T]) Len() int { return len(c.items) }

// Items returns a shallow copy of the list.
func (c *Collection[T]) Items() []T {
	return slices.Clone(c.items)
}

func (c *Collection[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(c.items) {
		return zero, false
	}
	return c.items[i], true
}

// IndexFunc returns the index of the first item matching fn, or -1.
func (c *Collection[T]) IndexFunc(fn func(T) bool) int {
	return slices.IndexFunc(c.items, fn)
}

func (c *Collection[T]) Append(v T) {
	c.items = append(c.items, v)
	c.save()
}

// Update applies fn to the item at i and persists. Out of range is a no-op.
func (c *Collection[T]) Update(i int, fn func(*T)) bool {
	if i < 0 || i >= len(c.items) {
		return false
	}
	fn(&c.items[i])
	c.save()
	return true
}

func (c *Collection[T]) RemoveAt(i int) bool {
	if i < 0 || i >= len(c.items) {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	c.save()
	return true
}

// Value is a single-object document persisted under a single key.
type Value[T any] struct {
	kv  *KV
	key string
	v   T

	def func() T
	// repair fixes a decoded value in place and reports whether it changed.
	repair func(*T) bool
}

func newValue[T any](kv *KV, key string, def func() T, repair func(*T) bool) *Value[T] {
	return &Value[T]{kv: kv, key: key, v: def(), def: def, repair: repair}
}

// Load reads the stored object, falling back to (and persisting) the
// default when it is missing or malformed.
func (d *Value[T]) Load() {
	var v T
	if !d.kv.Get(d.key, &v) {
		d.v = d.def()
		d.save()
		return
	}
	d.v = v
	if d.repair != nil && d.repair(&d.v) {
		d.save()
	}
}

func (d *Value[T]) save() {
	d.kv.Set(d.key, d.v)
}

func (d *Value[T]) Get() T { return d.v }

func (d *Value[T]) Update(fn func(*T)) {
	fn(&d.v)
	d.save()
}
