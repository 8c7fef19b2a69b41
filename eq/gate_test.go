package eq

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate_CoalescesMarks(t *testing.T) {
	var g Gate

	assert.False(t, g.ConsumeDirty())

	for range 5 {
		g.MarkDirty()
	}

	assert.True(t, g.ConsumeDirty())
	assert.False(t, g.ConsumeDirty())
}

func TestGate_ConcurrentMarks(t *testing.T) {
	var g Gate

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				g.MarkDirty()
			}
		}()
	}
	wg.Wait()

	assert.True(t, g.ConsumeDirty())
	assert.False(t, g.ConsumeDirty())
}

func TestGate_MarkAfterConsumeIsSeen(t *testing.T) {
	var g Gate

	g.MarkDirty()
	assert.True(t, g.ConsumeDirty())

	g.MarkDirty()
	assert.True(t, g.ConsumeDirty())
}
