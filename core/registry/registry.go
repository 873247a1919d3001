package registry

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/kilianp07/plugkit/core/handle"
)

// Factory constructs an implementation of T from arguments of type A.
type Factory[T, A any] func(A) (T, error)

var (
	// ErrNotFound is returned by Construct for keys nobody registered.
	// Absence of an implementation is a normal outcome the caller checks
	// with errors.Is, never a panic.
	ErrNotFound = errors.New("registry: unknown key")
	// ErrDuplicate is returned by Register in strict mode when the key is
	// already taken. Outside strict mode the first registration wins and
	// later ones are silent no-ops.
	ErrDuplicate = errors.New("registry: duplicate key")
	// ErrNilFactory is returned when registering a nil factory.
	ErrNilFactory = errors.New("registry: nil factory")
	// ErrEmptyKey is returned when registering an empty key.
	ErrEmptyKey = errors.New("registry: empty key")
)

// Registry maps string keys to factories for one (T, A) plugin family.
// Families are independent: the same key in two registries never collides.
// It is safe for concurrent use, though registration normally happens from
// init functions before anything looks keys up.
type Registry[T, A any] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T, A]

	name   string
	log    loggerIface
	policy handle.Policy
	strict bool
	obs    Observer
}

// New returns an empty registry for one plugin family.
//
// The ownership policy for ConstructHandle resolves in order: the
// WithPolicy option, the handle.Owner trait on T's zero value, then
// handle.PolicyShared.
func New[T, A any](opts ...Option) *Registry[T, A] {
	o := applyOptions(opts)
	pol := o.policy
	if !o.policySet {
		var zero T
		pol = handle.PolicyOf(zero)
	}
	return &Registry[T, A]{
		factories: make(map[string]Factory[T, A]),
		name:      o.name,
		log:       o.log,
		policy:    pol,
		strict:    o.strict,
		obs:       o.obs,
	}
}

// SetObserver installs obs on an existing registry. Family registries are
// package variables, so observers built from runtime configuration are
// attached after construction.
func (r *Registry[T, A]) SetObserver(obs Observer) {
	r.mu.Lock()
	r.obs = obs
	r.mu.Unlock()
}

func (r *Registry[T, A]) observer() Observer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.obs
}

// Name returns the family name set via WithName, or "".
func (r *Registry[T, A]) Name() string { return r.name }

// Policy returns the ownership policy resolved for this family.
func (r *Registry[T, A]) Policy() handle.Policy { return r.policy }

// Register adds a factory for the given key. If the key is already taken the
// first registration wins and Register returns nil, unless the registry was
// built with WithStrict in which case it returns ErrDuplicate.
func (r *Registry[T, A]) Register(key string, f Factory[T, A]) error {
	if key == "" {
		return ErrEmptyKey
	}
	if f == nil {
		return fmt.Errorf("%w for %q", ErrNilFactory, key)
	}
	r.mu.Lock()
	if _, exists := r.factories[key]; exists {
		r.mu.Unlock()
		if r.strict {
			return fmt.Errorf("%w: %q", ErrDuplicate, key)
		}
		r.log.Debugf("registry %s: key %q already registered, keeping first", r.name, key)
		return nil
	}
	r.factories[key] = f
	r.mu.Unlock()
	r.log.Debugf("registry %s: registered %q", r.name, key)
	if obs := r.observer(); obs != nil {
		obs.Registered(r.name, key)
	}
	return nil
}

// MustRegister panics on registration error. Intended for init functions,
// where a bad registration is a programming mistake.
func (r *Registry[T, A]) MustRegister(key string, f Factory[T, A]) {
	if err := r.Register(key, f); err != nil {
		panic(err)
	}
}

// Lookup returns the factory for key, if present.
func (r *Registry[T, A]) Lookup(key string) (Factory[T, A], bool) {
	r.mu.RLock()
	f, ok := r.factories[key]
	r.mu.RUnlock()
	return f, ok
}

// Has reports whether key is registered.
func (r *Registry[T, A]) Has(key string) bool {
	_, ok := r.Lookup(key)
	return ok
}

// Keys returns all registered keys in lexicographic order.
func (r *Registry[T, A]) Keys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.factories))
	for k := range r.factories {
		keys = append(keys, k)
	}
	r.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// Len reports the number of registered keys.
func (r *Registry[T, A]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// Construct looks up key and invokes its factory with args. Unknown keys
// yield the zero T and an error wrapping ErrNotFound; factory errors
// propagate as-is.
func (r *Registry[T, A]) Construct(key string, args A) (T, error) {
	r.mu.RLock()
	f, ok := r.factories[key]
	obs := r.obs
	r.mu.RUnlock()
	if !ok {
		if obs != nil {
			obs.Constructed(r.name, key, ErrNotFound)
		}
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	v, err := f(args)
	if obs != nil {
		obs.Constructed(r.name, key, err)
	}
	return v, err
}

// ConstructHandle constructs the value for key and wraps it in the family's
// ownership policy. When the value implements io.Closer, the end of the
// handle's lifetime closes it.
func (r *Registry[T, A]) ConstructHandle(key string, args A) (handle.Handle[T], error) {
	v, err := r.Construct(key, args)
	if err != nil {
		return nil, err
	}
	var finalize func()
	if c, ok := any(v).(io.Closer); ok {
		finalize = func() { _ = c.Close() }
	}
	return handle.Wrap(v, r.policy, finalize), nil
}
