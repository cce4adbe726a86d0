/*
Package hashtable implements a hash table with separate chaining.

Every bucket holds a list of entries. When the number of entries exceeds the
capacity allowed by the load factor, the table grows by a fixed number of
buckets and all entries are redistributed.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package hashtable

import (
	"hash/maphash"
	"iter"
	"math"
	"slices"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

type bucket[K comparable, V any] struct {
	entries []entry[K, V]
}

func (b *bucket[K, V]) indexOf(key K) int {
	for i, e := range b.entries {
		if e.key == key {
			return i
		}
	}
	return -1
}

// Table maps keys to values. Tables must be created with New.
//
// Tables are not safe for concurrent use.
type Table[K comparable, V any] struct {
	cfg     Config
	seed    maphash.Seed
	buckets []bucket[K, V]
	count   int
}

// New creates an empty table with validated configuration.
func New[K comparable, V any](cfg Config) (*Table[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Table[K, V]{
		cfg:     cfg,
		seed:    maphash.MakeSeed(),
		buckets: make([]bucket[K, V], cfg.BucketIncrement),
	}, nil
}

// Config returns a copy of the effective table configuration.
func (t *Table[K, V]) Config() Config {
	return t.cfg
}

// Len returns the number of entries.
func (t *Table[K, V]) Len() int {
	return t.count
}

// Buckets returns the current number of buckets.
func (t *Table[K, V]) Buckets() int {
	return len(t.buckets)
}

func (t *Table[K, V]) bucketFor(buckets []bucket[K, V], key K) *bucket[K, V] {
	h := maphash.Comparable(t.seed, key)
	return &buckets[h%uint64(len(buckets))]
}

// Get returns the value stored for key. If key is not present, ok is false.
func (t *Table[K, V]) Get(key K) (value V, ok bool) {
	b := t.bucketFor(t.buckets, key)
	if i := b.indexOf(key); i >= 0 {
		return b.entries[i].value, true
	}
	return value, false
}

// Contains returns true if key is present.
func (t *Table[K, V]) Contains(key K) bool {
	return t.bucketFor(t.buckets, key).indexOf(key) >= 0
}

// Set stores value for key, replacing a previous value.
func (t *Table[K, V]) Set(key K, value V) {
	b := t.bucketFor(t.buckets, key)
	if i := b.indexOf(key); i >= 0 {
		tracer().Debugf("hashtable: replacing value for key %v", key)
		b.entries[i].value = value
		return
	}
	if len(b.entries) > 0 {
		tracer().Debugf("hashtable: collision for key %v", key)
	}
	b.entries = append(b.entries, entry[K, V]{key: key, value: value})
	t.count++
	t.checkLoadFactor()
}

// Delete removes key from the table and reports whether it has been present.
func (t *Table[K, V]) Delete(key K) bool {
	b := t.bucketFor(t.buckets, key)
	i := b.indexOf(key)
	if i < 0 {
		return false
	}
	tracer().Debugf("hashtable: removing value with key %v", key)
	b.entries = slices.Delete(b.entries, i, i+1)
	t.count--
	return true
}

// Keys returns all keys, in no particular order.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns all values, in no particular order.
func (t *Table[K, V]) Values() []V {
	values := make([]V, 0, t.count)
	for _, v := range t.All() {
		values = append(values, v)
	}
	return values
}

// All returns an iterator over all key/value pairs, in no particular order.
// The table must not be modified during iteration.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range t.buckets {
			for _, e := range t.buckets[i].entries {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

func (t *Table[K, V]) checkLoadFactor() {
	if limit := math.Floor(float64(len(t.buckets)) / t.cfg.LoadFactor); limit >= math.MaxInt ||
		t.count <= int(limit) {
		return
	}
	size := len(t.buckets) + t.cfg.BucketIncrement
	tracer().Infof("hashtable: rehashing buckets from %d to %d", len(t.buckets), size)
	buckets := make([]bucket[K, V], size)
	for i := range t.buckets {
		for _, e := range t.buckets[i].entries {
			b := t.bucketFor(buckets, e.key)
			b.entries = append(b.entries, e)
		}
	}
	t.buckets = buckets
}
