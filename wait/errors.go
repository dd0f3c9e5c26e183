// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package wait

import (
	"errors"
	"fmt"
	"time"

	"github.com/gobwas/glob"
	"github.com/tebeka/selenium"
)

// ErrTimeout is matched by every *TimeoutError.
var ErrTimeout = errors.New("wait timed out")

// TimeoutError is returned when the deadline elapsed before the predicate
// was Met. It carries the last observed state to aid diagnosis.
type TimeoutError struct {
	Predicate string
	Timeout   time.Duration
	Attempts  int
	Last      Evaluation
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s (%d attempts) waiting for %s; last: %s",
		e.Timeout, e.Attempts, e.Predicate, e.Last)
}

// Is reports whether target is ErrTimeout.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// ErrorKind identifies a kind of transient observation failure. A waiter
// treats errors of a tolerated kind as a NotMet attempt.
type ErrorKind interface {
	Matches(err error) bool
	String() string
}

type codeKind struct {
	patterns []string
	globs    []glob.Glob
}

// MatchCode returns an ErrorKind matching WebDriver errors whose error code
// (e.g. "stale element reference") matches one of the glob patterns. Errors
// that carry no WebDriver code are matched on their message.
func MatchCode(patterns ...string) ErrorKind {
	k := codeKind{patterns: patterns}
	for _, p := range patterns {
		k.globs = append(k.globs, glob.MustCompile(p))
	}
	return k
}

func (k codeKind) Matches(err error) bool {
	subject := err.Error()
	var serr *selenium.Error
	if errors.As(err, &serr) {
		subject = serr.Err
	}
	for _, g := range k.globs {
		if g.Match(subject) {
			return true
		}
	}
	return false
}

func (k codeKind) String() string {
	return fmt.Sprintf("code%q", k.patterns)
}

type targetKind struct {
	target error
}

// MatchError returns an ErrorKind matching errors for which
// errors.Is(err, target) holds.
func MatchError(target error) ErrorKind {
	return targetKind{target: target}
}

func (k targetKind) Matches(err error) bool {
	return errors.Is(err, k.target)
}

func (k targetKind) String() string {
	return fmt.Sprintf("is(%v)", k.target)
}

// StaleOrMissing tolerates an element that has not been attached yet or has
// been replaced since it was found.
var StaleOrMissing = MatchCode("no such element*", "stale element reference*")
