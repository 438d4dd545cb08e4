// Package permissions provides the relaxed-permissions scope used while a
// configuration tree is being written.
//
// The process umask is global state. Relax clears it and returns a Scope
// whose Restore puts the previous mask back; callers pair the two with
// defer so that every exit path restores the mask exactly once:
//
//	scope := permissions.Relax()
//	defer scope.Restore()
package permissions
