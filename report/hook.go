// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package report

import (
	"github.com/sirupsen/logrus"

	"github.com/Kornyshev/aqa-selenium-advanced/shared"
)

// DefaultTitle is the attachment title for entries without a title field.
const DefaultTitle = "Log"

// Hook is a logrus.Hook that attaches log entries to a report. The title
// comes from the shared.TitleField field of the entry; the message is never
// parsed for one.
type Hook struct {
	attacher Attacher
	levels   []logrus.Level
}

// NewHook returns a Hook firing on the given levels, or on all levels when
// none are given.
func NewHook(a Attacher, levels ...logrus.Level) *Hook {
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &Hook{attacher: a, levels: levels}
}

// Levels implements logrus.Hook.
func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

// Fire implements logrus.Hook.
func (h *Hook) Fire(e *logrus.Entry) error {
	title, _ := e.Data[shared.TitleField].(string)
	if title == "" {
		title = DefaultTitle
	}
	return h.attacher.Attach(title, e.Message)
}
