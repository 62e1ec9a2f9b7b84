// Package smtctx is the SMT Context Factory (spec.md §4.A): a thin
// capability layer over the Z3 binding. It probes once, process-wide,
// whether the solver library is usable, and hands out scoped Context
// values that own exactly one Z3 context each.
//
// Modeled on the teacher's own resource-lifecycle style in z3/solver.go
// (NewSolver/Model/Check wrapping a C handle behind a Go struct), lifted one
// level up: where z3.Context already owns the cgo handle and its own
// finalizer, smtctx.Context just tracks whether it has been released so
// double-Close and use-after-Close are caught in Go rather than crashing in
// C.
package smtctx

import (
	"errors"
	"sync"
	"time"

	"github.com/ralscha/go-z3/z3"
)

// ErrUnavailable is returned by Create when the SMT backend is not usable.
var ErrUnavailable = errors.New("smtctx: Z3 backend not available")

var (
	probeOnce sync.Once
	available bool
)

// IsAvailable probes that the underlying solver library is loadable and a
// minimal sanity query succeeds. The result is memoized for the process
// lifetime (spec.md §4.A): availability cannot change mid-process, and the
// probe itself opens a throwaway context, so repeating it on every caller
// would be wasted work.
func IsAvailable() bool {
	probeOnce.Do(func() {
		available = probe()
	})
	return available
}

func probe() (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	ctx := z3.NewContext(nil)
	solver := z3.NewSolver(ctx)
	solver.Assert(ctx.FromBool(true).(z3.Bool))
	sat, err := solver.Check()
	return err == nil && sat
}

// Context wraps one Z3 context. A Context owns one solver instance at a
// time and must not be shared across goroutines (spec.md §5); callers
// needing parallel obligations create independent Contexts.
type Context struct {
	z3ctx  *z3.Context
	mu     sync.Mutex
	closed bool
}

// Create returns a fresh Context with no solver timeout configured, or
// ErrUnavailable if the backend cannot be probed successfully.
func Create() (*Context, error) {
	if !IsAvailable() {
		return nil, ErrUnavailable
	}
	return &Context{z3ctx: z3.NewContext(nil)}, nil
}

// CreateWithTimeout is Create, but every solver later built on this Context
// inherits the given timeout as a Z3 global config parameter (milliseconds),
// so the Verifier never needs to poll or cancel a running Check() itself —
// the solver returns UNKNOWN once the timeout elapses (spec.md §5).
func CreateWithTimeout(timeout time.Duration) (*Context, error) {
	if !IsAvailable() {
		return nil, ErrUnavailable
	}
	cfg := z3.NewContextConfig()
	cfg.SetUint("timeout", uint(timeout.Milliseconds()))
	return &Context{z3ctx: z3.NewContext(cfg)}, nil
}

// Z3 returns the underlying Z3 context for use by the Translator and
// Verifier. Calling it after Close panics: that is a caller bug, not a
// recoverable runtime condition.
func (c *Context) Z3() *z3.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		panic("smtctx: use of Context after Close")
	}
	return c.z3ctx
}

// Close releases the context. It is idempotent and safe to defer
// unconditionally along every exit path (spec.md §5).
func (c *Context) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.z3ctx = nil
}
