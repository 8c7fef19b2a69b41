package transport

import (
	"errors"
	"runtime"
	"slices"
	"sync"
	"testing"
)

func block(ch int, start float64, n int) Block {
	s := make([]float64, n)
	for i := range s {
		s[i] = start + float64(i)
	}
	return Block{Channel: ch, Samples: s}
}

func TestNewBlockFifo_Errors(t *testing.T) {
	if _, err := NewBlockFifo(0, 512); !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("capacity 0: err = %v, want ErrInvalidCapacity", err)
	}
	if _, err := NewBlockFifo(4, 0); !errors.Is(err, ErrInvalidBlockSize) {
		t.Fatalf("block size 0: err = %v, want ErrInvalidBlockSize", err)
	}
}

func TestBlockFifo_ThreeBlocksIntoCapacityFour(t *testing.T) {
	f, err := NewBlockFifo(4, 512)
	if err != nil {
		t.Fatal(err)
	}

	for i := range 3 {
		if !f.Push(block(0, float64(i*512), 512)) {
			t.Fatalf("Push(%d) = false", i)
		}
	}

	var out Block
	for i := range 3 {
		if !f.Pop(&out) {
			t.Fatalf("Pop(%d) = false", i)
		}
		if len(out.Samples) != 512 || out.Samples[0] != float64(i*512) {
			t.Fatalf("Pop(%d): len=%d first=%v", i, len(out.Samples), out.Samples[0])
		}
	}
	if f.Pop(&out) {
		t.Fatal("fourth Pop returned true")
	}
}

func TestBlockFifo_OverflowDropsNewest(t *testing.T) {
	f, _ := NewBlockFifo(2, 4)

	for i := range 5 {
		f.Push(block(i, float64(10*i), 4))
	}
	if f.Dropped() != 3 {
		t.Fatalf("Dropped() = %d, want 3", f.Dropped())
	}

	var out Block
	if !f.Pop(&out) || out.Channel != 0 {
		t.Fatalf("Pop() channel = %d, want 0", out.Channel)
	}

	// room again: the next block is queued intact behind the survivor
	if !f.Push(block(9, 90, 4)) {
		t.Fatal("Push after Pop = false")
	}

	if !f.Pop(&out) || out.Channel != 1 || !slices.Equal(out.Samples, []float64{10, 11, 12, 13}) {
		t.Fatalf("Pop() = %+v, want channel 1 [10 11 12 13]", out)
	}
	if !f.Pop(&out) || out.Channel != 9 || !slices.Equal(out.Samples, []float64{90, 91, 92, 93}) {
		t.Fatalf("Pop() = %+v, want channel 9 [90 91 92 93]", out)
	}
	if f.Pop(&out) {
		t.Fatal("Pop() after drain = true")
	}
	if f.Dropped() != 3 {
		t.Fatalf("Dropped() = %d, want 3", f.Dropped())
	}
}

func TestBlockFifo_RejectsOversizeBlock(t *testing.T) {
	f, _ := NewBlockFifo(4, 4)
	if f.Push(block(0, 0, 5)) {
		t.Fatal("Push accepted a block longer than the block size")
	}
	if f.Len() != 0 || f.Dropped() != 1 {
		t.Fatalf("Len()=%d Dropped()=%d, want 0 and 1", f.Len(), f.Dropped())
	}
}

func TestBlockFifo_ShortBlockKeepsLength(t *testing.T) {
	f, _ := NewBlockFifo(4, 8)
	f.Push(Block{Channel: 1, Samples: []float64{1, 2, 3}})

	out := Block{Samples: make([]float64, 0, 8)}
	if !f.Pop(&out) {
		t.Fatal("Pop() = false")
	}
	if !slices.Equal(out.Samples, []float64{1, 2, 3}) || out.Channel != 1 {
		t.Fatalf("Pop() = %+v", out)
	}
}

func TestBlockFifo_PushCopiesSamples(t *testing.T) {
	f, _ := NewBlockFifo(2, 2)
	src := []float64{1, 2}
	f.Push(Block{Samples: src})
	src[0] = 99

	var out Block
	f.Pop(&out)
	if out.Samples[0] != 1 {
		t.Fatalf("queued block aliased producer memory: %v", out.Samples)
	}
}

func TestBlockFifo_PushDoesNotAllocate(t *testing.T) {
	f, _ := NewBlockFifo(4, 512)
	b := block(0, 0, 512)
	out := Block{Samples: make([]float64, 0, 512)}

	allocs := testing.AllocsPerRun(200, func() {
		f.Push(b)
		f.Pop(&out)
	})
	if allocs != 0 {
		t.Fatalf("Push/Pop allocated %v times per run", allocs)
	}
}

func TestBlockFifo_ConcurrentNoLossBelowCapacity(t *testing.T) {
	const blocks = 5000

	f, _ := NewBlockFifo(8, 16)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		b := block(0, 0, 16)
		for i := 0; i < blocks; {
			b.Channel = i
			if f.Push(b) {
				i++
			} else {
				runtime.Gosched()
			}
		}
	}()

	var out Block
	for want := 0; want < blocks; {
		if !f.Pop(&out) {
			runtime.Gosched()
			continue
		}
		if out.Channel != want || len(out.Samples) != 16 {
			t.Fatalf("Pop() channel=%d len=%d, want %d/16", out.Channel, len(out.Samples), want)
		}
		want++
	}
	wg.Wait()
}
