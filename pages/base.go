// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package pages holds page objects for the demo site: locators plus one
// method per user-level step.
package pages

import (
	"github.com/Kornyshev/aqa-selenium-advanced/wait"
	"github.com/Kornyshev/aqa-selenium-advanced/webdriver"
)

// BasePage holds what every page needs: a dispatcher bound to the session's
// driver and the page URL.
type BasePage struct {
	*webdriver.Dispatcher
	URL string
	log *wait.ObservationLog
}

func newBasePage(d *webdriver.Dispatcher, baseURL, path string) BasePage {
	return BasePage{Dispatcher: d, URL: baseURL + path, log: d.Options().Log}
}

// step records a user-level step in the observation log.
func (p *BasePage) step(title, format string, args ...interface{}) {
	p.log.Action(title, format, args...)
}

// Open navigates to the page and records where the browser landed, which
// differs from URL after a redirect.
func (p *BasePage) Open() error {
	p.step("Open", "opening %s", p.URL)
	if err := p.Navigate(p.URL); err != nil {
		return err
	}
	landed, err := p.Driver().CurrentURL()
	if err != nil {
		return err
	}
	p.step("Open", "landed on %s", landed)
	return nil
}
