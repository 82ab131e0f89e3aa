package router

import "sync"

// Listener reacts to a document-level click on the named target.
type Listener func(target string)

// Scope owns document-level listeners. Every Acquire hands back a release
// func; Close releases whatever is still held.
type Scope struct {
	mu        sync.Mutex
	next      uint64
	listeners map[uint64]scoped
}

type scoped struct {
	name string
	fn   Listener
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{listeners: make(map[uint64]scoped)}
}

// Acquire registers fn. The returned release is idempotent.
func (s *Scope) Acquire(name string, fn Listener) (release func()) {
	s.mu.Lock()
	s.next++
	id := s.next
	s.listeners[id] = scoped{name: name, fn: fn}
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Dispatch delivers a click to every live listener. Listeners may release
// themselves while being dispatched.
func (s *Scope) Dispatch(target string) {
	s.mu.Lock()
	fns := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		fns = append(fns, l.fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(target)
	}
}

// Active returns the number of live listeners.
func (s *Scope) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

// Names returns the names of the live listeners.
func (s *Scope) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.listeners))
	for _, l := range s.listeners {
		out = append(out, l.name)
	}
	return out
}

// Close releases every listener.
func (s *Scope) Close() {
	s.mu.Lock()
	s.listeners = make(map[uint64]scoped)
	s.mu.Unlock()
}
