// Package availability implements the debounced username availability
// check used by the signup and profile-edit forms. A checker holds at most
// one pending lookup: each new input supersedes the previous one, and a
// lookup result is discarded if newer input arrived while it was in
// flight, so a stale "taken"/"available" verdict is never surfaced.
package availability

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Status is the current availability verdict for the field.
type Status string

const (
	// StatusUnknown means no input, a check still in flight, or a failed
	// lookup. Lookups fail open: a store error never blocks typing.
	StatusUnknown Status = "unknown"
	// StatusAvailable means the last completed lookup found no user with
	// the candidate username.
	StatusAvailable Status = "available"
	// StatusTaken means the last completed lookup found an existing user.
	StatusTaken Status = "taken"
)

// DefaultDebounce is the quiet period before a lookup fires.
const DefaultDebounce = 500 * time.Millisecond

// LookupFunc reports whether a username already exists in the user store.
type LookupFunc func(ctx context.Context, username string) (exists bool, err error)

// Checker debounces username edits into single existence lookups.
type Checker struct {
	lookup LookupFunc
	window time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	status  Status
	onCheck func(username string, status Status)
}

// Option configures a Checker.
type Option func(*Checker)

// WithDebounce overrides the quiet period.
func WithDebounce(d time.Duration) Option {
	return func(c *Checker) { c.window = d }
}

// WithCallback registers a function invoked whenever a lookup result is
// accepted as current. Superseded results never reach the callback.
func WithCallback(fn func(username string, status Status)) Option {
	return func(c *Checker) { c.onCheck = fn }
}

// NewChecker creates a Checker around the given lookup.
func NewChecker(lookup LookupFunc, opts ...Option) *Checker {
	c := &Checker{
		lookup: lookup,
		window: DefaultDebounce,
		status: StatusUnknown,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Input records a new candidate username. Any pending lookup is canceled;
// after the quiet period elapses with no further edits, exactly one lookup
// fires for the latest value. Empty input short-circuits: no lookup, no
// error state.
func (c *Checker) Input(ctx context.Context, username string) {
	username = strings.TrimSpace(username)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.status = StatusUnknown

	if username == "" {
		return
	}

	gen := c.gen
	c.timer = time.AfterFunc(c.window, func() {
		c.fire(ctx, gen, username)
	})
}

// Status returns the current verdict for the latest input.
func (c *Checker) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Stop cancels any pending lookup. The checker remains usable.
func (c *Checker) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Checker) fire(ctx context.Context, gen uint64, username string) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	exists, err := c.lookup(ctx, username)

	status := StatusUnknown
	if err == nil {
		if exists {
			status = StatusTaken
		} else {
			status = StatusAvailable
		}
	}

	c.mu.Lock()
	if gen != c.gen {
		// Newer input arrived while the lookup was in flight; the result
		// is stale and must not be displayed.
		c.mu.Unlock()
		return
	}
	c.status = status
	cb := c.onCheck
	c.mu.Unlock()

	if cb != nil {
		cb(username, status)
	}
}
