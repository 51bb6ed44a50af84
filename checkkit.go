// Package checkkit provides result-code checking helpers for code that
// follows the "negative means failure" convention.
//
// A result code is an int; any strictly negative value denotes failure
// and the magnitude carries no meaning to this layer. Callers pick one
// of three reaction policies per call site:
//
//   - Exit: terminate the process with a failure status. For
//     unrecoverable top-level failures with no meaningful caller.
//   - Return: hand back a caller-chosen sentinel value so the caller
//     can return it immediately.
//   - Scope: record a caller-chosen result value once and guarantee a
//     single cleanup pass before the function exits (see Scope).
//
// A Checker has one of two modes. The verbose mode writes a
// diagnostic line of the form "Error at line <N>" to its output before
// reacting, appending the failure cause when one is available. The
// quiet mode reacts silently and reads no shared state, which makes
// it safe for concurrent failure paths; verbose checkers serialize
// their pending-cause slot behind a mutex, but when several goroutines
// fail through the same Checker the cause attribution between them is
// still ambiguous.
package checkkit

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/checkkit-dev/checkkit/config"
	"github.com/checkkit-dev/checkkit/diag"
)

// ExitFailure is the process status used by the exit policy.
const ExitFailure = 1

// Failed reports whether code denotes a failed operation.
func Failed(code int) bool {
	return code < 0
}

// Checker applies a reaction policy to failed result codes.
// The zero value is not usable; construct with New.
type Checker struct {
	verbose bool
	exit    func(int)
	log     *slog.Logger

	mu      sync.Mutex
	pending error
}

// Option configures a Checker.
type Option func(*checkerConfig)

type checkerConfig struct {
	verbose bool
	out     io.Writer
	exit    func(int)
	log     *slog.Logger
}

// WithVerbose enables diagnostic logging when enabled is true.
func WithVerbose(enabled bool) Option {
	return func(c *checkerConfig) {
		c.verbose = enabled
	}
}

// WithConfig applies a loaded configuration object.
func WithConfig(opts config.Options) Option {
	return func(c *checkerConfig) {
		c.verbose = opts.Verbose()
	}
}

// WithOutput sets the stream verbose diagnostics are written to.
// Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(c *checkerConfig) {
		c.out = w
	}
}

// WithExitFunc sets the process-termination function used by the exit
// policy. Defaults to os.Exit.
func WithExitFunc(fn func(status int)) Option {
	return func(c *checkerConfig) {
		c.exit = fn
	}
}

// WithLogger routes verbose diagnostics through the given logger
// instead of the default diag handler.
func WithLogger(log *slog.Logger) Option {
	return func(c *checkerConfig) {
		c.log = log
	}
}

// New creates a Checker. Without options it is quiet,
// writes to os.Stderr, and terminates via os.Exit.
func New(opts ...Option) *Checker {
	cfg := checkerConfig{
		out:  os.Stderr,
		exit: os.Exit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = slog.New(diag.NewHandler(cfg.out))
	}
	return &Checker{
		verbose: cfg.verbose,
		exit:    cfg.exit,
		log:     cfg.log,
	}
}

// Verbose reports whether the Checker is verbose.
func (c *Checker) Verbose() bool {
	return c.verbose
}

// SetCause stores a pending failure cause on the Checker. The next
// verbose check whose explicit cause is nil consumes it; the slot is
// reset as soon as it is read. Quiet checkers never touch the slot.
//
// This mirrors errno-style call sequences where the failing call
// records its cause out of band. Prefer passing the cause explicitly
// to the check itself.
func (c *Checker) SetCause(cause error) {
	c.mu.Lock()
	c.pending = cause
	c.mu.Unlock()
}

// Exit terminates the process with ExitFailure when code is negative.
// For code >= 0 it does nothing. Under the default exit function this
// never returns on failure.
func (c *Checker) Exit(code int, cause error) {
	if code >= 0 {
		return
	}
	c.react(cause)
	c.exit(ExitFailure)
}

// Err converts a failed result code into a *CheckError carrying the
// code and, when verbose, the resolved cause. Returns nil
// for code >= 0.
func (c *Checker) Err(code int, cause error) error {
	if code >= 0 {
		return nil
	}
	cause = c.react(cause)
	return &CheckError{Code: code, Cause: cause}
}

// Return applies the immediate-return policy: when code is negative it
// reports the failure through c and returns (rval, true) so the caller
// can return rval directly. For code >= 0 it returns the zero value
// and false.
func Return[T any](c *Checker, code int, rval T, cause error) (T, bool) {
	if code >= 0 {
		var zero T
		return zero, false
	}
	c.react(cause)
	return rval, true
}

// react performs the configured reaction for a failed check and returns
// the cause that was reported. A quiet Checker reports nothing and
// leaves the pending-cause slot untouched.
//
// Must be called directly from an exported check entry point: the
// diagnostic line number is captured two frames up, at the caller of
// that entry point.
func (c *Checker) react(cause error) error {
	if !c.verbose {
		return cause
	}
	if cause == nil {
		c.mu.Lock()
		cause = c.pending
		c.pending = nil
		c.mu.Unlock()
	}
	_, _, line, ok := runtime.Caller(2)
	if !ok {
		line = 0
	}
	if cause != nil {
		c.log.Error("check failed", slog.Int(diag.LineKey, line), slog.Any(diag.CauseKey, cause))
	} else {
		c.log.Error("check failed", slog.Int(diag.LineKey, line))
	}
	return cause
}
