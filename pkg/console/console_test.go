package console

import (
	"fmt"
	"sync"
	"testing"
)

func TestNewBufferEmpty(t *testing.T) {
	buf := NewBuffer(10)

	if buf.Len() != 0 {
		t.Errorf("Len() = %d, want 0", buf.Len())
	}
	if lines := buf.Lines(); len(lines) != 0 {
		t.Errorf("Lines() = %v, want empty", lines)
	}
}

func TestBufferPushAndLines(t *testing.T) {
	buf := NewBuffer(10)
	buf.Push("first")
	buf.Push("second")

	lines := buf.Lines()
	if len(lines) != 2 {
		t.Fatalf("Lines() length = %d, want 2", len(lines))
	}
	if lines[0] != "first" || lines[1] != "second" {
		t.Errorf("Lines() = %v", lines)
	}
}

func TestBufferEvictsOldestAtCapacity(t *testing.T) {
	buf := NewBuffer(3)
	for i := 0; i < 5; i++ {
		buf.Push(fmt.Sprintf("line-%d", i))
	}

	lines := buf.Lines()
	if len(lines) != 3 {
		t.Fatalf("Lines() length = %d, want 3", len(lines))
	}
	want := []string{"line-2", "line-3", "line-4"}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("Lines()[%d] = %q, want %q", i, lines[i], w)
		}
	}
}

func TestBufferPreservesOrder(t *testing.T) {
	buf := NewBuffer(100)
	for i := 0; i < 50; i++ {
		buf.Push(fmt.Sprintf("%d", i))
	}

	lines := buf.Lines()
	for i, line := range lines {
		if line != fmt.Sprintf("%d", i) {
			t.Fatalf("Lines()[%d] = %q, order broken", i, line)
		}
	}
}

func TestBufferLinesIsSnapshot(t *testing.T) {
	buf := NewBuffer(10)
	buf.Push("a")

	snapshot := buf.Lines()
	buf.Push("b")

	if len(snapshot) != 1 {
		t.Errorf("snapshot length = %d, want 1", len(snapshot))
	}
}

func TestBufferConcurrentPush(t *testing.T) {
	buf := NewBuffer(DefaultCapacity)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				buf.Push(fmt.Sprintf("w%d-%d", n, j))
			}
		}(i)
	}
	wg.Wait()

	if buf.Len() > DefaultCapacity {
		t.Errorf("Len() = %d, exceeds capacity %d", buf.Len(), DefaultCapacity)
	}
}

func TestStoreGetCreatesOnce(t *testing.T) {
	store := NewStore()

	a := store.Get("uuid-1")
	b := store.Get("uuid-1")
	if a != b {
		t.Error("Get() should return the same buffer for the same UUID")
	}

	c := store.Get("uuid-2")
	if a == c {
		t.Error("Get() should return distinct buffers per UUID")
	}
}

func TestStoreRemove(t *testing.T) {
	store := NewStore()

	a := store.Get("uuid-1")
	a.Push("hello")
	store.Remove("uuid-1")

	b := store.Get("uuid-1")
	if b.Len() != 0 {
		t.Error("Remove() should drop the old scrollback")
	}
}
