package permissions

import "sync"

// Scope is an entered relaxed-permissions window.
type Scope struct {
	previous int
	once     sync.Once
	restore  func(int)
}

// Relax sets the process umask to 0 and returns the scope that undoes it.
func Relax() *Scope {
	return enter(setUmask)
}

func enter(set func(int) int) *Scope {
	return &Scope{
		previous: set(0),
		restore:  func(mask int) { set(mask) },
	}
}

// Previous returns the mask that was in effect before Relax.
func (s *Scope) Previous() int {
	return s.previous
}

// Restore reinstates the previous mask. Calls after the first are no-ops.
func (s *Scope) Restore() {
	s.once.Do(func() {
		s.restore(s.previous)
	})
}
