package failure

import (
	"errors"
	"sync"
)

// Collector is a Reporter for soft assertions: it keeps every
// failure instead of stopping at the first one. Rendering is done
// by the wrapped Reporter. It is safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	inner  Reporter
	errors []*AssertionError
}

// NewCollector wraps inner. A nil inner uses NewFailures().
func NewCollector(inner Reporter) *Collector {
	if inner == nil {
		inner = NewFailures()
	}
	return &Collector{inner: inner}
}

// Failure delegates to the wrapped Reporter and records the
// resulting error.
func (c *Collector) Failure(info Info, d Descriptor) error {
	err := c.inner.Failure(info, d)

	ae, ok := AsAssertionError(err)
	if !ok {
		ae = &AssertionError{Info: info, Descriptor: d}
		if err != nil {
			ae.Message = err.Error()
		} else {
			ae.Message = d.Message(info.Repr(), false)
			err = ae
		}
	}

	c.mu.Lock()
	c.errors = append(c.errors, ae)
	c.mu.Unlock()

	return err
}

// Errors returns the collected failures in report order.
func (c *Collector) Errors() []*AssertionError {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*AssertionError, len(c.errors))
	copy(out, c.errors)
	return out
}

// Len returns the number of collected failures.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors)
}

// Err joins every collected failure, or returns nil when there
// are none.
func (c *Collector) Err() error {
	collected := c.Errors()
	errs := make([]error, len(collected))
	for i, e := range collected {
		errs[i] = e
	}
	return errors.Join(errs...)
}
