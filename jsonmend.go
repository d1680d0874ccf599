// Package jsonmend repairs near-JSON text — the kind produced by
// hand-editing, log truncation, LLM output, or copy-paste with broken
// escaping — into strictly valid JSON. Repair is a pure function: given
// the same input and the same options it always returns the same
// result, including the diagnostic trail.
package jsonmend

import (
	"jsonmend/internal/driver"
	"jsonmend/internal/telemetry"
)

// Outcome is the sum type a Result carries: either Parsed (strict
// parsing succeeded, Canonical holds the re-serialized JSON) or
// Unresolved (the pass budget was exhausted; Err holds the last strict
// parser diagnostic).
type Outcome interface {
	outcome()
}

// Parsed means the repaired text strictly parses; Canonical is its
// re-serialized form (two-space indent, insertion order, literal
// non-ASCII, duplicate keys collapsed to their last occurrence).
type Parsed struct {
	Canonical string
}

func (Parsed) outcome() {}

// Unresolved means the pass budget was exhausted without a successful
// strict parse. Repaired in the enclosing Result is still the
// best-effort text; the caller decides whether to use it.
type Unresolved struct {
	Err string
}

func (Unresolved) outcome() {}

// Result is everything Repair returns: the repaired text, its Outcome,
// and the append-only diagnostic trail, each entry prefixed by the pass
// tag ("pre", "pass1".."passN", "final", or "custom" for a
// CustomTransform's own diagnostics) that produced it.
type Result struct {
	Repaired    string
	Outcome     Outcome
	Diagnostics []string
}

// config holds the options a call to Repair is configured with. It is
// unexported: callers build it only through Option values, never by
// constructing the struct directly, so adding a field never breaks a
// caller's source.
type config struct {
	maxPasses int
	logger    *telemetry.Logger
	custom    []CustomTransform
}

// CustomTransform is a caller-supplied repair rule, run once per main
// pass immediately after the built-in catalogue, in registration order.
// It must be total and side-effect free, exactly like a built-in
// transform; a panicking CustomTransform is not recovered.
type CustomTransform func(text string) (string, []string)

// Option configures a single Repair call.
type Option func(*config)

// WithMaxPasses overrides the default bounded fix-point budget (6).
func WithMaxPasses(n int) Option {
	return func(c *config) { c.maxPasses = n }
}

// WithLogger attaches an opt-in operational logger. Repair logs one debug
// line when it starts (input size, pass budget) and one when it finishes
// (outcome, diagnostic count); individual transforms and passes are not
// logged. This is distinct from the returned diagnostic trail: the logger is for
// operators watching the process, the diagnostics are for the caller
// inspecting one Result.
func WithLogger(l *telemetry.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithCustomTransform registers an additional text->text repair rule
// beyond the built-in T1-T20 catalogue. See internal/script for a
// Starlark-scripted source of CustomTransform values.
func WithCustomTransform(t CustomTransform) Option {
	return func(c *config) { c.custom = append(c.custom, t) }
}

// Repair runs the full text-repair pipeline over text and returns the
// repaired text, its outcome, and the diagnostic trail. Repair never
// touches a file, a clock, or the network; concurrent calls on distinct
// inputs share no state and are trivially safe.
func Repair(text string, opts ...Option) Result {
	cfg := config{maxPasses: driver.DefaultMaxPasses}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.logger != nil {
		cfg.logger.Debugf("repair starting: %d bytes, max_passes=%d", len(text), cfg.maxPasses)
	}

	raw := driver.Run(text, cfg.maxPasses)

	for _, ct := range cfg.custom {
		fixed, diags := ct(raw.Repaired)
		if fixed == raw.Repaired {
			continue
		}
		priorDiagnostics := raw.Diagnostics
		for _, d := range diags {
			priorDiagnostics = append(priorDiagnostics, "custom: "+d)
		}
		raw = driver.Run(fixed, cfg.maxPasses)
		raw.Diagnostics = append(priorDiagnostics, raw.Diagnostics...)
	}

	var outcome Outcome
	if raw.Parsed {
		outcome = Parsed{Canonical: raw.Canonical}
	} else {
		outcome = Unresolved{Err: raw.Err}
	}

	if cfg.logger != nil {
		switch o := outcome.(type) {
		case Parsed:
			cfg.logger.Debugf("repair finished: parsed, %d diagnostics", len(raw.Diagnostics))
		case Unresolved:
			cfg.logger.Debugf("repair finished: unresolved (%s), %d diagnostics", o.Err, len(raw.Diagnostics))
		}
	}

	return Result{Repaired: raw.Repaired, Outcome: outcome, Diagnostics: raw.Diagnostics}
}
