// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package wait

import "fmt"

// PollResult is the outcome of a single predicate evaluation.
type PollResult int

const (
	// NotMet means the state was read and is not yet the target state.
	NotMet PollResult = iota
	// Met means the state was read and satisfies the target state.
	Met
	// Unreadable means the state was absent or could not be interpreted.
	// The waiter treats it as NotMet.
	Unreadable
)

func (r PollResult) String() string {
	switch r {
	case Met:
		return "Met"
	case NotMet:
		return "NotMet"
	case Unreadable:
		return "Unreadable"
	}
	return fmt.Sprintf("PollResult(%d)", int(r))
}

// Outcome is the terminal result of a polling session. The zero value means
// the session was aborted by an error outside the tolerated set and carries
// no outcome.
type Outcome int

const (
	// Success means the predicate was Met before the deadline.
	Success Outcome = iota + 1
	// TimedOut means the deadline elapsed and the predicate was never Met.
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case TimedOut:
		return "TimedOut"
	}
	return "Aborted"
}

// Evaluation is what a predicate saw on one attempt.
type Evaluation struct {
	Result PollResult
	// Observed is the raw observed state, formatted for diagnostics.
	Observed string
	// Target is the target state, formatted for diagnostics.
	Target string
	// Detail optionally explains the result, e.g. which values are missing.
	Detail string
}

func (e Evaluation) String() string {
	s := fmt.Sprintf("%s (observed %s, target %s)", e.Result, e.Observed, e.Target)
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	return s
}
