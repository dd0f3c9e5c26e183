// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package wait

import (
	"fmt"
	"sync"
	"time"

	"github.com/Kornyshev/aqa-selenium-advanced/shared"
)

// RecordKind classifies observation records.
type RecordKind int

const (
	// KindAction is an attempted driver action.
	KindAction RecordKind = iota
	// KindEvaluation is one predicate evaluation.
	KindEvaluation
	// KindOutcome is the terminal result of a wait.
	KindOutcome
)

func (k RecordKind) String() string {
	switch k {
	case KindAction:
		return "action"
	case KindEvaluation:
		return "evaluation"
	case KindOutcome:
		return "outcome"
	}
	return fmt.Sprintf("RecordKind(%d)", int(k))
}

// Record is one entry of an ObservationLog.
type Record struct {
	Seq   int
	Time  time.Time
	Kind  RecordKind
	Title string
	Body  string
	// Result is set for evaluation records.
	Result PollResult
}

// Attacher receives records for a report. report.Attacher satisfies it.
type Attacher interface {
	Attach(title, body string) error
}

// ObservationLog is an ordered, append-only record of actions and
// predicate evaluations. Every record is mirrored to the logger. A nil
// *ObservationLog discards records.
type ObservationLog struct {
	mu      sync.Mutex
	records []Record
	logger  shared.Logger
	now     func() time.Time
}

// NewObservationLog returns an empty log mirrored to logger, which may be
// nil.
func NewObservationLog(logger shared.Logger) *ObservationLog {
	if logger == nil {
		logger = shared.NewNilLogger()
	}
	return &ObservationLog{logger: logger, now: time.Now}
}

// Action records an attempted action.
func (l *ObservationLog) Action(title, format string, args ...interface{}) {
	l.append(Record{Kind: KindAction, Title: title, Body: fmt.Sprintf(format, args...)})
}

func (l *ObservationLog) evaluation(p Predicate, attempt int, ev Evaluation) {
	l.append(Record{
		Kind:   KindEvaluation,
		Title:  p.String(),
		Body:   fmt.Sprintf("attempt %d: %s", attempt, ev),
		Result: ev.Result,
	})
}

func (l *ObservationLog) outcome(p Predicate, o Outcome, body string) {
	l.append(Record{Kind: KindOutcome, Title: p.String(), Body: fmt.Sprintf("%s: %s", o, body)})
}

func (l *ObservationLog) append(r Record) {
	if l == nil {
		return
	}
	l.mu.Lock()
	r.Seq = len(l.records)
	r.Time = l.now()
	l.records = append(l.records, r)
	l.mu.Unlock()

	shared.LogTitled(l.logger, r.Title, "%s", r.Body)
}

// Records returns a copy of the records in the order they were appended.
func (l *ObservationLog) Records() []Record {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Record(nil), l.records...)
}

// Len returns the number of records.
func (l *ObservationLog) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// AttachTo forwards every record, in order, as one attachment. It stops at
// the first attachment error.
func (l *ObservationLog) AttachTo(a Attacher) error {
	for _, r := range l.Records() {
		body := fmt.Sprintf("#%d %s %s [%s]\n%s",
			r.Seq, r.Time.Format(time.RFC3339Nano), r.Kind, r.Title, r.Body)
		if err := a.Attach(r.Title, body); err != nil {
			return fmt.Errorf("attaching record %d: %w", r.Seq, err)
		}
	}
	return nil
}
