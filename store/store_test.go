package store

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"respd/resp"
)

func TestGetSet(t *testing.T) {
	s := New()
	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Set("hello", resp.BulkStringFromString("world"))
	v, ok := s.Get("hello")
	assert.True(t, ok)
	assert.Equal(t, "world", string(v.Bulk()))
}

func TestHashOperations(t *testing.T) {
	s := New()
	_, ok := s.HGet("h", "f")
	assert.False(t, ok)

	s.HSet("h", "f", resp.BulkStringFromString("v"))
	v, ok := s.HGet("h", "f")
	assert.True(t, ok)
	assert.Equal(t, "v", string(v.Bulk()))

	s.HSet("h", "f2", resp.Integer(7))
	all, ok := s.HGetAll("h")
	assert.True(t, ok)
	assert.Len(t, all, 2)
	assert.Equal(t, int64(7), all["f2"].Int())
}

func TestHGetAllSnapshotIsIndependent(t *testing.T) {
	s := New()
	s.HSet("h", "f", resp.BulkStringFromString("v1"))
	snapshot, _ := s.HGetAll("h")
	s.HSet("h", "f", resp.BulkStringFromString("v2"))
	assert.Equal(t, "v1", string(snapshot["f"].Bulk()))
}

func TestSAddIdempotence(t *testing.T) {
	s := New()
	assert.Equal(t, int64(1), s.SAdd("s", []string{"a"}))
	assert.Equal(t, int64(0), s.SAdd("s", []string{"a"}))
	assert.True(t, s.SIsMember("s", "a"))
	assert.False(t, s.SIsMember("s", "b"))
}

func TestSAddCountsOnlyNewMembers(t *testing.T) {
	s := New()
	assert.Equal(t, int64(2), s.SAdd("s", []string{"a", "b"}))
	assert.Equal(t, int64(1), s.SAdd("s", []string{"a", "c"}))
}

func TestNamespacesAreIndependent(t *testing.T) {
	s := New()
	s.Set("k", resp.Integer(1))
	s.HSet("k", "f", resp.Integer(2))
	s.SAdd("k", []string{"m"})

	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.Int())

	hv, ok := s.HGet("k", "f")
	assert.True(t, ok)
	assert.Equal(t, int64(2), hv.Int())

	assert.True(t, s.SIsMember("k", "m"))
}

func TestStoreConcurrentSadd(t *testing.T) {
	s := New()
	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			s.SAdd("hot", []string{strconv.Itoa(i)})
		}()
	}
	wg.Wait()

	count := 0
	for i := 0; i < n; i++ {
		if s.SIsMember("hot", strconv.Itoa(i)) {
			count++
		}
	}
	assert.Equal(t, n, count)
}

func TestStoreCloneSharesState(t *testing.T) {
	s := New()
	clone := s
	clone.Set("k", resp.Integer(9))
	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, int64(9), v.Int())
}
