// Package core_test verifies that a frozen graph is safe for concurrent readers.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConcurrentReaders runs query methods from many goroutines on one frozen
// graph. Results are collected and asserted outside the goroutines.
func TestConcurrentReaders(t *testing.T) {
	g := mustTriangle(t, true)
	g.Freeze()

	const readers = 50
	var wg sync.WaitGroup
	counts := make([]int, readers)
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(i int) {
			defer wg.Done()
			_ = g.Vertices()
			_, _ = g.Stats()
			_ = g.Clone()
			counts[i] = len(g.Edges())
		}(i)
	}
	wg.Wait()

	for _, n := range counts {
		assert.Equal(t, 3, n)
	}
}
