// Package store implements the shared, concurrency-safe multi-map at the
// core of the server: three independent namespaces (strings, hashes,
// sets) keyed by UTF-8 string, safe for many connection tasks to mutate
// at once.
package store

import (
	"sync"

	"github.com/cornelk/hashmap"

	"respd/resp"
)

// Store is a cheap-to-copy handle onto shared state: copying a Store
// never copies the underlying namespaces, only the pointer to them, so
// every connection task can hold its own Store value and still observe
// the same data.
type Store struct {
	s *state
}

type state struct {
	strings hashmap.HashMap // key string -> resp.Frame
	hashes  hashmap.HashMap // key string -> *hashEntry
	sets    hashmap.HashMap // key string -> *setEntry
}

type hashEntry struct {
	mu     sync.RWMutex
	fields map[string]resp.Frame
}

type setEntry struct {
	mu      sync.RWMutex
	members map[string]struct{}
}

func newHashEntry() *hashEntry { return &hashEntry{fields: make(map[string]resp.Frame)} }
func newSetEntry() *setEntry   { return &setEntry{members: make(map[string]struct{})} }

// New returns a fresh, empty Store. Call it once per process and share
// the returned value across every connection task.
func New() Store {
	return Store{s: &state{}}
}

// Get returns the current value under key in the string namespace.
func (st Store) Get(key string) (resp.Frame, bool) {
	v, ok := st.s.strings.Get(key)
	if !ok {
		return resp.Frame{}, false
	}
	return v.(resp.Frame), true
}

// Set replaces any prior value under key in the string namespace.
func (st Store) Set(key string, value resp.Frame) {
	st.s.strings.Set(key, value)
}

// HGet returns the value of field in hash key, if both exist.
func (st Store) HGet(key, field string) (resp.Frame, bool) {
	raw, ok := st.s.hashes.Get(key)
	if !ok {
		return resp.Frame{}, false
	}
	entry := raw.(*hashEntry)
	entry.mu.RLock()
	defer entry.mu.RUnlock()
	v, ok := entry.fields[field]
	return v, ok
}

// HSet creates hash key if absent, then inserts or replaces field.
func (st Store) HSet(key, field string, value resp.Frame) {
	raw, _ := st.s.hashes.GetOrInsert(key, newHashEntry())
	entry := raw.(*hashEntry)
	entry.mu.Lock()
	entry.fields[field] = value
	entry.mu.Unlock()
}

// HGetAll returns a snapshot clone of hash key's fields, or false if key
// does not exist. The returned map is safe to range over without holding
// any lock: later writers mutate their own copy, not this one.
func (st Store) HGetAll(key string) (map[string]resp.Frame, bool) {
	raw, ok := st.s.hashes.Get(key)
	if !ok {
		return nil, false
	}
	entry := raw.(*hashEntry)
	entry.mu.RLock()
	defer entry.mu.RUnlock()
	out := make(map[string]resp.Frame, len(entry.fields))
	for k, v := range entry.fields {
		out[k] = v
	}
	return out, true
}

// SAdd creates set key if absent, adds each member, and returns the count
// of members that were not already present.
func (st Store) SAdd(key string, members []string) int64 {
	raw, _ := st.s.sets.GetOrInsert(key, newSetEntry())
	entry := raw.(*setEntry)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	var added int64
	for _, m := range members {
		if _, exists := entry.members[m]; !exists {
			entry.members[m] = struct{}{}
			added++
		}
	}
	return added
}

// SIsMember reports whether key exists and contains member.
func (st Store) SIsMember(key, member string) bool {
	raw, ok := st.s.sets.Get(key)
	if !ok {
		return false
	}
	entry := raw.(*setEntry)
	entry.mu.RLock()
	defer entry.mu.RUnlock()
	_, exists := entry.members[member]
	return exists
}

// NamespaceSizes reports the number of distinct keys in each namespace,
// used by the admin HTTP introspection endpoint.
func (st Store) NamespaceSizes() (strings, hashes, sets int) {
	return int(st.s.strings.Len()), int(st.s.hashes.Len()), int(st.s.sets.Len())
}

// KeyCount returns the number of distinct keys across all three
// namespaces, backing the DBSIZE command.
func (st Store) KeyCount() int64 {
	seen := make(map[string]struct{})
	for kv := range st.s.strings.Iter() {
		seen[kv.Key.(string)] = struct{}{}
	}
	for kv := range st.s.hashes.Iter() {
		seen[kv.Key.(string)] = struct{}{}
	}
	for kv := range st.s.sets.Iter() {
		seen[kv.Key.(string)] = struct{}{}
	}
	return int64(len(seen))
}
