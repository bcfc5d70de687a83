package action

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrEmptyName         = errors.New("action name must not be empty")
	ErrNilAction         = errors.New("action must not be nil")
	ErrAlreadyRegistered = errors.New("action already registered")
)

// Registry resolves actions by their exact names. It's safe for concurrent use, so a single
// registry is usually shared by all the controllers of the same kind.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]Action
}

func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]Action),
	}
}

// Register adds an action under the name.
func (r *Registry) Register(name string, a Action) error {
	switch {
	case len(name) == 0:
		return ErrEmptyName
	case a == nil:
		return fmt.Errorf("%w: %s", ErrNilAction, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.actions[name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}

	r.actions[name] = a
	return nil
}

// RegisterFunc is a shorthand for Register(name, Func(fn)).
func (r *Registry) RegisterFunc(name string, fn func(*Context, Args) (Result, error)) error {
	if fn == nil {
		return r.Register(name, nil)
	}

	return r.Register(name, Func(fn))
}

// MustRegister does the same as Register, except it panics on error. Intended for
// initialization code.
func (r *Registry) MustRegister(name string, a Action) *Registry {
	if err := r.Register(name, a); err != nil {
		panic(err)
	}

	return r
}

// Lookup returns the action registered under the name.
func (r *Registry) Lookup(name string) (Action, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.actions[name]
	return a, ok
}

// Names returns all registered action names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.actions)
}
