package collection

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap(t *testing.T) {
	m := NewSyncMap[string, int]()
	m.Put("a", 1)
	assert.True(t, m.PutIfAbsent("b", 2))
	assert.False(t, m.PutIfAbsent("a", 10))

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, m.Len())

	count := 0
	m.Range(func(key string, value int) bool {
		m.Delete(key)
		count++
		return true
	})
	assert.Equal(t, 2, count)
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Delete("a"))
}

func TestSyncMap_PutIfAbsentConcurrent(t *testing.T) {
	m := NewSyncMap[string, struct{}]()
	var wg sync.WaitGroup
	var mux sync.Mutex
	stored := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.PutIfAbsent("token", struct{}{}) {
				mux.Lock()
				stored++
				mux.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, stored)
}
