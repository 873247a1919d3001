package handle

import "sync/atomic"

// Policy selects how the lifetime of a constructed value is managed.
type Policy int

const (
	// PolicyShared hands out reference-counted handles. It is the default.
	PolicyShared Policy = iota
	// PolicyExclusive hands out move-only handles with a single live holder.
	PolicyExclusive
	// PolicyBorrowed hands out handles that carry no ownership claims.
	PolicyBorrowed
)

// String returns the policy name used in logs and diagnostics.
func (p Policy) String() string {
	switch p {
	case PolicyExclusive:
		return "exclusive"
	case PolicyBorrowed:
		return "borrowed"
	default:
		return "shared"
	}
}

// Owner is an opt-in trait for abstract types that declare which handle kind
// their registry should produce. Types that do not implement it get
// PolicyShared.
type Owner interface {
	PreferredPolicy() Policy
}

// PolicyOf resolves the preferred policy of v, falling back to PolicyShared.
func PolicyOf(v any) Policy {
	if o, ok := v.(Owner); ok {
		return o.PreferredPolicy()
	}
	return PolicyShared
}

// Handle is an ownership-qualified reference to a constructed value.
//
// Value reports false once the handle no longer grants access to the value.
// Release gives up this holder's claim and reports whether the value's
// lifetime ended with it.
type Handle[T any] interface {
	Value() (T, bool)
	Policy() Policy
	Release() bool
}

// Wrap places v under the given policy. The finalize func, if non-nil, runs
// when the value's lifetime ends; it is never called for PolicyBorrowed.
func Wrap[T any](v T, p Policy, finalize func()) Handle[T] {
	switch p {
	case PolicyExclusive:
		return NewExclusive(v, finalize)
	case PolicyBorrowed:
		return NewBorrowed(v)
	default:
		return NewShared(v, finalize)
	}
}

type sharedState[T any] struct {
	v        T
	refs     atomic.Int64
	finalize func()
}

// Shared is a reference-counted handle. Clone adds a holder; the value stays
// reachable until every holder has released.
type Shared[T any] struct {
	s        *sharedState[T]
	released atomic.Bool
}

// NewShared wraps v in a Shared handle with a single holder.
func NewShared[T any](v T, finalize func()) *Shared[T] {
	s := &sharedState[T]{v: v, finalize: finalize}
	s.refs.Store(1)
	return &Shared[T]{s: s}
}

// Clone returns a new holder of the same value.
// It returns nil if this holder already released its claim.
func (h *Shared[T]) Clone() *Shared[T] {
	if h == nil || h.released.Load() {
		return nil
	}
	h.s.refs.Add(1)
	return &Shared[T]{s: h.s}
}

// Value returns the shared value while this holder's claim is live.
func (h *Shared[T]) Value() (T, bool) {
	if h == nil || h.released.Load() {
		var zero T
		return zero, false
	}
	return h.s.v, true
}

// Policy implements Handle.
func (h *Shared[T]) Policy() Policy { return PolicyShared }

// Release drops this holder's claim. The last release runs the finalizer and
// returns true. Releasing twice is a no-op.
func (h *Shared[T]) Release() bool {
	if h == nil || !h.released.CompareAndSwap(false, true) {
		return false
	}
	if h.s.refs.Add(-1) == 0 {
		if h.s.finalize != nil {
			h.s.finalize()
		}
		return true
	}
	return false
}

// Refs reports the number of live holders.
func (h *Shared[T]) Refs() int64 {
	if h == nil {
		return 0
	}
	return h.s.refs.Load()
}

type exclState[T any] struct {
	v        T
	live     atomic.Bool
	finalize func()
}

// Exclusive is a move-only handle: exactly one live holder at a time.
// Struct copies alias the same validity state, so after a Move both the
// source and any of its copies are dead. This enforces the move-only
// contract at runtime rather than at compile time.
type Exclusive[T any] struct {
	s *exclState[T]
}

// NewExclusive wraps v in an Exclusive handle.
func NewExclusive[T any](v T, finalize func()) *Exclusive[T] {
	s := &exclState[T]{v: v, finalize: finalize}
	s.live.Store(true)
	return &Exclusive[T]{s: s}
}

// Move transfers ownership to a fresh handle and invalidates the receiver.
// It reports false if the receiver no longer owned the value.
func (h *Exclusive[T]) Move() (*Exclusive[T], bool) {
	if h == nil || h.s == nil || !h.s.live.CompareAndSwap(true, false) {
		return nil, false
	}
	return NewExclusive(h.s.v, h.s.finalize), true
}

// Value returns the owned value while the handle is live.
func (h *Exclusive[T]) Value() (T, bool) {
	if h == nil || h.s == nil || !h.s.live.Load() {
		var zero T
		return zero, false
	}
	return h.s.v, true
}

// Policy implements Handle.
func (h *Exclusive[T]) Policy() Policy { return PolicyExclusive }

// Release ends the value's lifetime if the receiver still owned it.
func (h *Exclusive[T]) Release() bool {
	if h == nil || h.s == nil || !h.s.live.CompareAndSwap(true, false) {
		return false
	}
	if h.s.finalize != nil {
		h.s.finalize()
	}
	return true
}

// Borrowed is a handle without lifetime management. The caller is fully
// responsible for the value; Release never ends anything.
type Borrowed[T any] struct {
	v T
}

// NewBorrowed wraps v in a Borrowed handle.
func NewBorrowed[T any](v T) Borrowed[T] { return Borrowed[T]{v: v} }

// Value returns the borrowed value.
func (h Borrowed[T]) Value() (T, bool) { return h.v, true }

// Policy implements Handle.
func (h Borrowed[T]) Policy() Policy { return PolicyBorrowed }

// Release is a no-op for borrowed values.
func (h Borrowed[T]) Release() bool { return false }
