// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package wait

import (
	"time"

	"github.com/Kornyshev/aqa-selenium-advanced/shared"
)

const (
	// DefaultTimeout is the deadline used when Options.Timeout is zero.
	DefaultTimeout = 30 * time.Second
	// DefaultInterval is the poll interval used when Options.Interval is
	// zero. It matches selenium.DefaultWaitInterval.
	DefaultInterval = 500 * time.Millisecond
	// ReadinessInterval is the poll interval for multi-condition checks.
	ReadinessInterval = time.Second
)

type clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// Options configure a polling session.
type Options struct {
	// Timeout bounds the whole session. Zero evaluates once and then times
	// out; a negative value means DefaultTimeout.
	Timeout time.Duration
	// Interval is the pause between attempts. Zero means DefaultInterval.
	Interval time.Duration
	// Tolerate lists the transient failure kinds that count as a NotMet
	// attempt. Any other error aborts the wait and is returned unmodified.
	Tolerate []ErrorKind
	// Log receives one record per evaluation and one for the outcome.
	Log *ObservationLog
	// Logger receives the same records when Log is nil, and transient
	// failures at debug level.
	Logger shared.Logger

	clock clock
}

// DefaultOptions returns the element-wait defaults: DefaultTimeout,
// DefaultInterval and StaleOrMissing tolerated.
func DefaultOptions() Options {
	return Options{
		Timeout:  DefaultTimeout,
		Interval: DefaultInterval,
		Tolerate: []ErrorKind{StaleOrMissing},
	}
}

// ReadinessOptions returns DefaultOptions polling every ReadinessInterval.
func ReadinessOptions() Options {
	o := DefaultOptions()
	o.Interval = ReadinessInterval
	return o
}

// With returns a copy of o with the additional tolerated kinds.
func (o Options) With(kinds ...ErrorKind) Options {
	o.Tolerate = append(append([]ErrorKind(nil), o.Tolerate...), kinds...)
	return o
}

func (o Options) tolerates(err error) (ErrorKind, bool) {
	for _, k := range o.Tolerate {
		if k.Matches(err) {
			return k, true
		}
	}
	return nil, false
}

// Waiter polls predicates until they are Met or time runs out. Attempts are
// strictly sequential and block the calling goroutine.
type Waiter struct {
	opts Options
}

// NewWaiter returns a Waiter using opts. A negative timeout and a
// non-positive interval are replaced by the defaults.
func NewWaiter(opts Options) *Waiter {
	if opts.Timeout < 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewNilLogger()
	}
	if opts.clock == nil {
		opts.clock = realClock{}
	}
	return &Waiter{opts: opts}
}

// Options returns the effective options.
func (w *Waiter) Options() Options {
	return w.opts
}

// WaitFor evaluates p immediately and then once per interval until it is
// Met (Success, nil) or the timeout elapses (TimedOut, *TimeoutError).
// Errors of a tolerated kind count as an Unreadable attempt; any other
// error ends the wait and is returned as is.
func (w *Waiter) WaitFor(p Predicate) (Outcome, error) {
	clk := w.opts.clock
	deadline := clk.Now().Add(w.opts.Timeout)

	var last Evaluation
	for attempt := 1; ; attempt++ {
		ev, err := p.Evaluate()
		if err != nil {
			kind, ok := w.opts.tolerates(err)
			if !ok {
				w.record(func(l *ObservationLog) { l.outcome(p, 0, "aborted: "+err.Error()) })
				w.opts.Logger.Errorf("Waiting for %s aborted: %v", p, err)
				return 0, err
			}
			w.opts.Logger.Debugf("Tolerating %s error on attempt %d: %v", kind, attempt, err)
			ev = Evaluation{Result: Unreadable, Observed: "<error>", Target: ev.Target, Detail: err.Error()}
		}
		last = ev
		w.record(func(l *ObservationLog) { l.evaluation(p, attempt, ev) })

		if ev.Result == Met {
			w.record(func(l *ObservationLog) { l.outcome(p, Success, ev.String()) })
			return Success, nil
		}

		remaining := deadline.Sub(clk.Now())
		if remaining <= 0 {
			terr := &TimeoutError{
				Predicate: p.String(),
				Timeout:   w.opts.Timeout,
				Attempts:  attempt,
				Last:      last,
			}
			w.record(func(l *ObservationLog) { l.outcome(p, TimedOut, terr.Error()) })
			w.opts.Logger.Warningf("%v", terr)
			return TimedOut, terr
		}
		if remaining > w.opts.Interval {
			remaining = w.opts.Interval
		}
		clk.Sleep(remaining)
	}
}

// record appends to the observation log, or mirrors the record to the
// logger when there is no log.
func (w *Waiter) record(fn func(l *ObservationLog)) {
	if w.opts.Log != nil {
		fn(w.opts.Log)
		return
	}
	tmp := &ObservationLog{logger: w.opts.Logger, now: w.opts.clock.Now}
	fn(tmp)
}

// WaitFor polls p every interval until it is Met or timeout elapses,
// tolerating the given kinds of transient errors.
func WaitFor(p Predicate, interval, timeout time.Duration, tolerate ...ErrorKind) (Outcome, error) {
	return NewWaiter(Options{Timeout: timeout, Interval: interval, Tolerate: tolerate}).WaitFor(p)
}
