package console

import (
	"sync"
)

// DefaultCapacity is the number of scrollback lines kept per server
const DefaultCapacity = 500

// Buffer is a bounded in-memory scrollback of console lines for one server.
// Once full, pushing a new line evicts the oldest. Safe for concurrent use:
// the log-follow task writes while WebSocket sessions read.
type Buffer struct {
	mu       sync.Mutex
	lines    []string
	capacity int
}

// NewBuffer creates a buffer holding at most capacity lines. A capacity of
// zero or less falls back to DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		lines:    make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Push appends a line, evicting the oldest line once the buffer is full.
func (b *Buffer) Push(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.lines) == b.capacity {
		copy(b.lines, b.lines[1:])
		b.lines[len(b.lines)-1] = line
		return
	}
	b.lines = append(b.lines, line)
}

// Lines returns a snapshot of the buffered lines in insertion order.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Len returns the current number of buffered lines.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// Store tracks one Buffer per server UUID. Buffers are created lazily on
// first use and dropped when the server is deleted.
type Store struct {
	mu      sync.RWMutex
	buffers map[string]*Buffer
}

// NewStore creates an empty buffer store.
func NewStore() *Store {
	return &Store{
		buffers: make(map[string]*Buffer),
	}
}

// Get returns the buffer for uuid, creating it on first use.
func (s *Store) Get(uuid string) *Buffer {
	s.mu.RLock()
	buf, ok := s.buffers[uuid]
	s.mu.RUnlock()
	if ok {
		return buf
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if buf, ok := s.buffers[uuid]; ok {
		return buf
	}
	buf = NewBuffer(DefaultCapacity)
	s.buffers[uuid] = buf
	return buf
}

// Remove drops the buffer for uuid, releasing its scrollback.
func (s *Store) Remove(uuid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buffers, uuid)
}
