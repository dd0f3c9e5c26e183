// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package wait

import (
	"fmt"
	"strconv"
	"strings"
)

// Observable reads one piece of remote UI state, such as an attribute or a
// text value. ok is false when the value is absent. A non-nil error is
// subject to the waiter's tolerance policy.
type Observable func() (value string, ok bool, err error)

// Pool reads a set of remote UI values in one sampling instant.
type Pool func() ([]string, error)

// Predicate is a check of current against target state. The set of
// predicates is closed: Threshold, AllPresent and Interactable.
type Predicate interface {
	// Evaluate observes the state once. It must not mutate the observed
	// state.
	Evaluate() (Evaluation, error)
	// String describes the predicate; it is used as the title of
	// observation records.
	String() string

	predicate()
}

// ThresholdPredicate is Met once a numeric observation reaches a target.
type ThresholdPredicate struct {
	name   string
	obs    Observable
	target int
}

// Threshold returns a predicate that is Met when the value read from obs
// parses as an integer greater than or equal to target. Absent or
// unparsable values are Unreadable, never an error.
func Threshold(name string, obs Observable, target int) *ThresholdPredicate {
	return &ThresholdPredicate{name: name, obs: obs, target: target}
}

func (p *ThresholdPredicate) predicate() {}

func (p *ThresholdPredicate) String() string {
	return fmt.Sprintf("%s >= %d", p.name, p.target)
}

// Evaluate implements Predicate.
func (p *ThresholdPredicate) Evaluate() (Evaluation, error) {
	ev := Evaluation{Target: strconv.Itoa(p.target)}
	raw, ok, err := p.obs()
	if err != nil {
		return ev, err
	}
	if !ok {
		ev.Result = Unreadable
		ev.Observed = "<absent>"
		ev.Detail = "value is absent"
		return ev, nil
	}
	ev.Observed = strconv.Quote(raw)
	current, err := strconv.Atoi(raw)
	if err != nil {
		ev.Result = Unreadable
		ev.Detail = fmt.Sprintf("cannot parse %q as an integer", raw)
		return ev, nil
	}
	if current >= p.target {
		ev.Result = Met
	} else {
		ev.Result = NotMet
	}
	ev.Detail = fmt.Sprintf("parsed %d", current)
	return ev, nil
}

// AllPresentPredicate is Met when every expected value is in the observed
// pool at the same sampling instant.
type AllPresentPredicate struct {
	name     string
	pool     Pool
	expected []string
}

// AllPresent returns a predicate that is Met when pool contains every one of
// expected. Order does not matter; an expected value listed n times needs n
// occurrences in the pool.
func AllPresent(name string, pool Pool, expected ...string) *AllPresentPredicate {
	return &AllPresentPredicate{
		name:     name,
		pool:     pool,
		expected: append([]string(nil), expected...),
	}
}

func (p *AllPresentPredicate) predicate() {}

func (p *AllPresentPredicate) String() string {
	return fmt.Sprintf("%s contains %q", p.name, p.expected)
}

// Evaluate implements Predicate.
func (p *AllPresentPredicate) Evaluate() (Evaluation, error) {
	ev := Evaluation{Target: fmt.Sprintf("%q", p.expected)}
	observed, err := p.pool()
	if err != nil {
		return ev, err
	}
	ev.Observed = fmt.Sprintf("%q", observed)

	missing := Missing(p.expected, observed)
	if len(missing) == 0 {
		ev.Result = Met
		return ev, nil
	}
	ev.Result = NotMet
	ev.Detail = "missing " + strings.Join(quoteAll(missing), ", ")
	return ev, nil
}

// Missing returns the values of expected, in order, that observed cannot
// account for. Each observed value accounts for at most one expected value.
func Missing(expected, observed []string) []string {
	available := make(map[string]int, len(observed))
	for _, v := range observed {
		available[v]++
	}
	var missing []string
	for _, want := range expected {
		if available[want] > 0 {
			available[want]--
			continue
		}
		missing = append(missing, want)
	}
	return missing
}

func quoteAll(values []string) []string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return quoted
}

// Element is the part of a UI element that interactability depends on.
type Element interface {
	IsDisplayed() (bool, error)
	IsEnabled() (bool, error)
}

// InteractableMode selects how much an element must be ready.
type InteractableMode int

const (
	// Visible requires the element to be displayed.
	Visible InteractableMode = iota
	// Clickable requires the element to be displayed and enabled.
	Clickable
)

func (m InteractableMode) String() string {
	if m == Clickable {
		return "clickable"
	}
	return "visible"
}

// InteractablePredicate is Met once an element can be interacted with.
type InteractablePredicate[E Element] struct {
	name  string
	find  func() (E, error)
	mode  InteractableMode
	found E
}

// Interactable returns a predicate that looks the element up on every
// attempt and is Met when it is displayed (and, for Clickable, enabled).
// Lookup errors are subject to the waiter's tolerance policy.
func Interactable[E Element](name string, find func() (E, error), mode InteractableMode) *InteractablePredicate[E] {
	return &InteractablePredicate[E]{name: name, find: find, mode: mode}
}

func (p *InteractablePredicate[E]) predicate() {}

func (p *InteractablePredicate[E]) String() string {
	return fmt.Sprintf("%s is %s", p.name, p.mode)
}

// Element returns the element resolved by the last Met evaluation.
func (p *InteractablePredicate[E]) Element() E {
	return p.found
}

// Evaluate implements Predicate.
func (p *InteractablePredicate[E]) Evaluate() (Evaluation, error) {
	ev := Evaluation{Target: p.mode.String()}
	e, err := p.find()
	if err != nil {
		return ev, err
	}
	displayed, err := e.IsDisplayed()
	if err != nil {
		return ev, err
	}
	if !displayed {
		ev.Result = NotMet
		ev.Observed = "hidden"
		return ev, nil
	}
	ev.Observed = "displayed"
	if p.mode == Clickable {
		enabled, err := e.IsEnabled()
		if err != nil {
			return ev, err
		}
		if !enabled {
			ev.Result = NotMet
			ev.Observed = "displayed, disabled"
			return ev, nil
		}
		ev.Observed = "displayed, enabled"
	}
	ev.Result = Met
	p.found = e
	return ev, nil
}
