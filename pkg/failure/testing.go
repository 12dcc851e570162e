package failure

// TestingT is the subset of testing.TB used by TestingReporter.
type TestingT interface {
	Helper()
	Fatal(args ...any)
}

// TestingReporter stops the current test on the first failure, so
// from the caller's point of view a failing verb never returns.
type TestingReporter struct {
	t     TestingT
	inner Reporter
}

// ForTest builds a TestingReporter. A nil inner uses NewFailures().
func ForTest(t TestingT, inner Reporter) *TestingReporter {
	if inner == nil {
		inner = NewFailures()
	}
	return &TestingReporter{t: t, inner: inner}
}

// Failure renders the failure with the wrapped Reporter and calls
// t.Fatal with it.
func (r *TestingReporter) Failure(info Info, d Descriptor) error {
	r.t.Helper()
	err := r.inner.Failure(info, d)
	r.t.Fatal(err)
	return err
}
