package iostore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex(t *testing.T) {
	k := newKeyedMutex()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		active  = make(map[string]int)
		overlap bool
	)
	for i := range 40 {
		key := []string{"a", "b", "c", "d"}[i%4]
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock(key)
			defer unlock()

			mu.Lock()
			active[key]++
			if active[key] > 1 {
				overlap = true
			}
			mu.Unlock()

			mu.Lock()
			active[key]--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.False(t, overlap)
	assert.Equal(t, 0, k.size())
}

func TestRebind(t *testing.T) {
	pg := &Store{dialect: Postgres}
	lite := &Store{dialect: SQLite}
	q := "SELECT a FROM t WHERE b = ? AND c IN (?, ?)"
	assert.Equal(t, "SELECT a FROM t WHERE b = $1 AND c IN ($2, $3)", pg.rebind(q))
	assert.Equal(t, q, lite.rebind(q))
	assert.Equal(t, "?, ?, ?", placeholders(3))
	assert.Equal(t, "", placeholders(0))
}
