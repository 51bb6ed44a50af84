package checkkit

// Scope applies the scoped-cleanup policy: failed checks latch a
// caller-chosen result value exactly once, and Close runs the
// registered cleanups exactly once regardless of how many checks
// failed. It replaces the one-unwind-target-per-function idiom with
// deferred release:
//
//	func copyInto(c *checkkit.Checker, dst string) int {
//		s := checkkit.NewScope(c, 0)
//		defer s.Close()
//
//		fd, err := open(dst)
//		if s.Check(fd, -1, err) {
//			return s.Result()
//		}
//		s.Defer(func() { closeFD(fd) })
//		// ...
//		return s.Result()
//	}
//
// A Scope belongs to a single function activation and is not safe for
// concurrent use.
type Scope[T any] struct {
	checker  *Checker
	result   T
	failed   bool
	closed   bool
	cleanups []func()
}

// NewScope creates a Scope whose result holder starts at success.
func NewScope[T any](c *Checker, success T) *Scope[T] {
	return &Scope[T]{checker: c, result: success}
}

// Defer registers a cleanup to run when the Scope closes. Cleanups
// run in reverse registration order.
func (s *Scope[T]) Defer(fn func()) {
	s.cleanups = append(s.cleanups, fn)
}

// Check reports the failure through the Checker and latches rval into
// the result holder when code is negative. Only the first failing
// check sets the holder; later failures are still reported but leave
// it untouched. Returns true when code denotes failure.
func (s *Scope[T]) Check(code int, rval T, cause error) bool {
	if code >= 0 {
		return false
	}
	s.checker.react(cause)
	if !s.failed {
		s.failed = true
		s.result = rval
	}
	return true
}

// Failed reports whether any check in this Scope failed.
func (s *Scope[T]) Failed() bool {
	return s.failed
}

// Result returns the result holder: the first failing check's rval,
// or the success value when nothing failed.
func (s *Scope[T]) Result() T {
	return s.result
}

// Close runs the registered cleanups in reverse order and returns the
// result holder. Subsequent calls return the holder without running
// cleanups again.
func (s *Scope[T]) Close() T {
	if s.closed {
		return s.result
	}
	s.closed = true
	for i := len(s.cleanups) - 1; i >= 0; i-- {
		s.cleanups[i]()
	}
	return s.result
}
