package faceid

import "sync"

// Session is the one-shot accept latch for an identification session.
// Identify itself is pure and may run concurrently from overlapping polling
// cycles; the session guarantees that exactly one match is accepted and
// every later candidate is dropped.
type Session struct {
	mu       sync.Mutex
	accepted *Match
}

// NewSession returns a fresh latch for a single stamp attempt.
func NewSession() *Session {
	return &Session{}
}

// TryAccept records the match if no match has been accepted yet. It returns
// true only for the winning call.
func (s *Session) TryAccept(m *Match) bool {
	if m == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accepted != nil {
		return false
	}
	s.accepted = m
	return true
}

// Accepted returns the winning match, or nil while the session is open.
func (s *Session) Accepted() *Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accepted
}

// Done reports whether a match has been accepted.
func (s *Session) Done() bool {
	return s.Accepted() != nil
}
