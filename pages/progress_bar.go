// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pages

import (
	"github.com/Kornyshev/aqa-selenium-advanced/wait"
	"github.com/Kornyshev/aqa-selenium-advanced/webdriver"
)

// ProgressBarPath is the path of the progress bar page.
const ProgressBarPath = "/progress-bar"

// ValueAttribute holds the current progress.
const ValueAttribute = "aria-valuenow"

var (
	progressBar     = webdriver.CSS("div#progressBar div")
	startStopButton = webdriver.CSS("button#startStopButton")
)

// ProgressBarPage has a progress bar driven by a start/stop button.
type ProgressBarPage struct {
	BasePage
}

// NewProgressBarPage returns the progress bar page of the site at baseURL.
func NewProgressBarPage(d *webdriver.Dispatcher, baseURL string) *ProgressBarPage {
	return &ProgressBarPage{BasePage: newBasePage(d, baseURL, ProgressBarPath)}
}

// ClickStartStopButton starts or stops the progress.
func (p *ProgressBarPage) ClickStartStopButton() error {
	p.step("Start/Stop", "clicking the start/stop button")
	return p.Click(startStopButton)
}

// StartStopButtonText returns the label of the start/stop button.
func (p *ProgressBarPage) StartStopButtonText() (string, error) {
	return p.Text(startStopButton)
}

// ProgressBarValue returns the raw progress value.
func (p *ProgressBarPage) ProgressBarValue() (string, error) {
	return p.Attribute(progressBar, ValueAttribute)
}

// WaitForProgressBarToReach waits until the progress is at least target.
func (p *ProgressBarPage) WaitForProgressBarToReach(target int) error {
	p.step("Progress", "waiting for the progress bar to reach %d%%", target)
	return p.WaitFor(wait.Threshold("progress", p.AttributeOf(progressBar, ValueAttribute), target))
}
