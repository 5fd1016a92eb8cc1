// Package cleanup runs registered functions when the program exits.
package cleanup

import "sync"

var (
	registered []func()
	mu         sync.Mutex
)

// Register adds fn to the functions called by [Run].
func Register(fn func()) {
	mu.Lock()
	defer mu.Unlock()
	registered = append(registered, fn)
}

// Run calls every registered function in the reverse order of registration
// and forgets them.
func Run() {
	mu.Lock()
	fns := registered
	registered = nil
	mu.Unlock()

	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
